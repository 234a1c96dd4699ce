package models

import "gorm.io/gorm"

// DiscussionThread is a per-lesson discussion started by a learner
type DiscussionThread struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	LessonID  uint   `json:"lesson_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Body      string `json:"body" gorm:"type:text"`
	IsPinned  bool   `json:"is_pinned" gorm:"default:false"`
	IsLocked  bool   `json:"is_locked" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}

// DiscussionReply is a reply within a thread. ParentReplyID nests replies under
// each other; zero means a top-level reply to the thread.
type DiscussionReply struct {
	gorm.Model
	ThreadID      uint   `json:"thread_id" gorm:"index;not null"`
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	ParentReplyID uint   `json:"parent_reply_id" gorm:"index;default:0"`
	Body          string `json:"body" gorm:"type:text"`
	IsDeleted     bool   `gorm:"default:false"`
}
