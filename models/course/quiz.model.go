package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizQuestion represents a question attached to a QUIZ lesson
type QuizQuestion struct {
	gorm.Model
	PublicID     string `json:"public_id" gorm:"uniqueIndex;size:36"`
	LessonID     uint   `json:"lesson_id" gorm:"index;not null"`
	QuestionText string `json:"question_text" gorm:"type:text"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	IsDeleted    bool   `gorm:"default:false"`
}

// QuizOption represents an option for a quiz question
type QuizOption struct {
	gorm.Model
	PublicID   string `json:"public_id" gorm:"uniqueIndex;size:36"`
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	OptionText string `json:"option_text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}

// QuizAttempt represents a student's graded attempt at a lesson quiz. Every
// attempt is kept, ordered by CompletedAt, regardless of score.
type QuizAttempt struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"index;not null"`
	LessonID       uint           `json:"lesson_id" gorm:"index;not null"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     int            `json:"percentage"`                  // round(100*score/total)
	Answers        datatypes.JSON `json:"answers" gorm:"type:json"`    // []progress.QuizAnswer
	AttemptNumber  int            `json:"attempt_number" gorm:"default:1"`
	CompletedAt    time.Time      `json:"completed_at"`
	IsDeleted      bool           `gorm:"default:false"`
}
