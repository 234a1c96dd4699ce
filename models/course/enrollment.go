package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment ties a user to a course. Progress fields mirror the user's
// UserProgress record for cheap listing; the progress record stays authoritative.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"index;not null"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	Progress         int        `json:"progress" gorm:"default:0"` // cached percent
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `gorm:"default:false"`
}
