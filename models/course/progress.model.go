package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProgress is the persisted progress record: one row per (user, course).
// CompletedLessons and CompletedProjects hold JSON arrays of lesson public ids
// with set semantics; the progress core guarantees duplicates never accumulate.
// TotalProgress is a cached percentage, recomputed on every mutation.
type UserProgress struct {
	gorm.Model
	UserID            uint           `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID          uint           `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CoursePublicID    string         `json:"course_public_id" gorm:"size:36;index"`
	ModulePublicID    string         `json:"module_public_id" gorm:"size:36"` // last visited module
	LessonPublicID    string         `json:"lesson_public_id" gorm:"size:36"` // last visited lesson
	CompletedLessons  datatypes.JSON `json:"completed_lessons" gorm:"type:json"`
	CompletedProjects datatypes.JSON `json:"completed_projects" gorm:"type:json"`
	TotalProgress     int            `json:"total_progress" gorm:"default:0"`
	CompletedAt       *time.Time     `json:"completed_at"`
	IsDeleted         bool           `gorm:"default:false"`
}
