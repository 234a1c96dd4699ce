package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"

	"github.com/robfig/cron/v3"
)

// InitializeSubscriptionScheduler sets up the daily subscription expiry job
func InitializeSubscriptionScheduler() {
	log.Println("[SUBSCRIPTION-SCHEDULER] Initializing subscription scheduler...")

	c := cron.New()

	// Run daily at 9 AM to check expiring subscriptions
	c.AddFunc("0 9 * * *", func() {
		log.Println("[SUBSCRIPTION-SCHEDULER] Running daily subscription check...")
		ProcessExpiringSubscriptions()
		ExpireSubscriptions()
	})

	c.Start()
	log.Println("[SUBSCRIPTION-SCHEDULER] Subscription scheduler started - runs daily at 9 AM")
}

// ProcessExpiringSubscriptions sends reminder emails for subscriptions
// expiring within the next 2 days
func ProcessExpiringSubscriptions() {
	db := database.Database.Db
	now := time.Now()
	twoDaysFromNow := now.AddDate(0, 0, 2)

	var expiring []models.Subscription
	if err := db.
		Where("status = ? AND reminder_sent = false AND expires_at IS NOT NULL", models.SubscriptionActive).
		Where("expires_at BETWEEN ? AND ?", now, twoDaysFromNow).
		Find(&expiring).Error; err != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching expiring subscriptions: %v", err)
		return
	}

	log.Printf("[SUBSCRIPTION-SCHEDULER] Found %d subscriptions expiring soon", len(expiring))

	for _, sub := range expiring {
		var user models.User
		if err := db.Where("id = ?", sub.UserID).First(&user).Error; err != nil {
			log.Printf("[SUBSCRIPTION-SCHEDULER] Error fetching user %d: %v", sub.UserID, err)
			continue
		}

		var plan models.SubscriptionPlan
		db.Where("id = ?", sub.PlanID).First(&plan)

		SendSubscriptionExpiryReminder(user.Email, user.Name, plan.Name, sub.ExpiresAt)

		db.Model(&sub).Update("reminder_sent", true)
		log.Printf("[SUBSCRIPTION-SCHEDULER] Sent expiry reminder for subscription %d to %s", sub.ID, user.Email)
	}
}

// ExpireSubscriptions marks lapsed subscriptions as EXPIRED and notifies
// their owners
func ExpireSubscriptions() {
	db := database.Database.Db
	now := time.Now()

	result := db.Model(&models.Subscription{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.SubscriptionActive, now).
		Updates(map[string]interface{}{"status": models.SubscriptionExpired})

	if result.Error != nil {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Error expiring subscriptions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SUBSCRIPTION-SCHEDULER] Expired %d subscriptions", result.RowsAffected)

		var expired []models.Subscription
		db.Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.SubscriptionExpired, now).
			Where("updated_at > ?", now.Add(-time.Hour)). // Only recently expired
			Find(&expired)

		for _, sub := range expired {
			var user models.User
			if err := db.Where("id = ?", sub.UserID).First(&user).Error; err == nil {
				var plan models.SubscriptionPlan
				db.Where("id = ?", sub.PlanID).First(&plan)
				SendSubscriptionExpiredEmail(user.Email, user.Name, plan.Name)
			}
		}
	}
}
