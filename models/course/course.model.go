package course

import "gorm.io/gorm"

// Course represents a learning course
type Course struct {
	gorm.Model
	PublicID     string `json:"public_id" gorm:"uniqueIndex;size:36"` // stable opaque id, also used by the progress core
	Slug         string `json:"slug" gorm:"uniqueIndex;size:120"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Duration     int64  `json:"duration" gorm:"default:0"` // duration in hours
	Level        string `json:"level" gorm:"default:'BEGINNER'"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPremium    bool   `json:"is_premium" gorm:"default:false"` // requires an active subscription
	IsPublished  bool   `json:"is_published" gorm:"default:false"`
	IsDeleted    bool   `gorm:"default:false"`
}
