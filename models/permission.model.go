package models

import "gorm.io/gorm"

// Permission grants a single named capability to a user
type Permission struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	Role       string `json:"role"`
	Permission string `gorm:"index;not null" json:"permission"`
	IsDeleted  bool   `gorm:"default:false"`
}
