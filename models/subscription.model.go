package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription statuses
const (
	SubscriptionActive  = "ACTIVE"
	SubscriptionExpired = "EXPIRED"
	SubscriptionPending = "PENDING"
)

// SubscriptionPlan is a purchasable access plan for premium courses
type SubscriptionPlan struct {
	gorm.Model
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"duration_days" gorm:"default:30"`
	IsActive     bool    `json:"is_active" gorm:"default:true"`
	IsDeleted    bool    `gorm:"default:false"`
}

// Subscription is a user's purchased access window
type Subscription struct {
	gorm.Model
	UserID       uint       `json:"user_id" gorm:"index;not null"`
	PlanID       uint       `json:"plan_id" gorm:"index;not null"`
	Status       string     `json:"status" gorm:"default:'PENDING'"` // PENDING, ACTIVE, EXPIRED
	PaymentRef   string     `json:"payment_ref"`                     // gateway order id
	StartsAt     *time.Time `json:"starts_at"`
	ExpiresAt    *time.Time `json:"expires_at"`
	ReminderSent bool       `json:"reminder_sent" gorm:"default:false"`
	IsDeleted    bool       `gorm:"default:false"`
}
