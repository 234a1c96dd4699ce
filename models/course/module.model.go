package course

import "gorm.io/gorm"

// Module represents a section/module within a course
type Module struct {
	gorm.Model
	PublicID    string `json:"public_id" gorm:"uniqueIndex;size:36"`
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Slug        string `json:"slug" gorm:"index;size:120"` // unique within its course
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Module order in course
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
