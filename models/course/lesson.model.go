package course

import "gorm.io/gorm"

// Lesson represents a single piece of learnable content within a module
type Lesson struct {
	gorm.Model
	PublicID    string `json:"public_id" gorm:"uniqueIndex;size:36"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Slug        string `json:"slug" gorm:"index;size:120"` // unique within its module
	Title       string `json:"title"`
	Description string `json:"description"`
	LessonType  string `json:"lesson_type" gorm:"default:'lesson'"` // lesson, project, assignment
	ContentType string `json:"content_type" gorm:"default:'TEXT'"`  // TEXT, VIDEO, QUIZ
	TextContent string `json:"text_content" gorm:"type:text"`       // For TEXT type
	VideoURL    string `json:"video_url"`                           // For VIDEO type
	OrderIndex  int    `json:"order_index" gorm:"default:0"`        // Order within module
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
