package controllers

import (
	"fmt"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPlans lists active subscription plans
func GetPlans(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var plans []models.SubscriptionPlan
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).Order("price asc").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched successfully!", fiber.Map{
		"plans": plans,
	})
}

// PurchasePlan creates a pending subscription and a payment order for it
func PurchasePlan(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPurchase").(*struct {
		PlanID uint `json:"plan_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var plan models.SubscriptionPlan
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.PlanID, true, false).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	// One active subscription at a time
	var active models.Subscription
	if err := database.Database.Db.Where("user_id = ? AND status = ? AND expires_at > ? AND is_deleted = ?",
		userID, models.SubscriptionActive, time.Now(), false).First(&active).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already have an active subscription!", nil)
	}

	receipt := fmt.Sprintf("sub-%d-%d", userID, time.Now().Unix())
	order, err := utils.CreatePaymentOrder(plan.Price, receipt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to create payment order!", nil)
	}

	subscription := models.Subscription{
		UserID:     userID,
		PlanID:     plan.ID,
		Status:     models.SubscriptionPending,
		PaymentRef: order.OrderID,
	}

	if err := database.Database.Db.Create(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subscription!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment order created. Complete the payment to activate.", fiber.Map{
		"subscription": subscription,
		"order_id":     order.OrderID,
		"amount":       plan.Price,
	})
}

// ConfirmPayment verifies the gateway order and activates the subscription
func ConfirmPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPaymentConfirm").(*struct {
		OrderID string `json:"order_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var subscription models.Subscription
	if err := database.Database.Db.Where("user_id = ? AND payment_ref = ? AND is_deleted = ?", userID, reqData.OrderID, false).First(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription not found!", nil)
	}

	if subscription.Status == models.SubscriptionActive {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Subscription is already active!", nil)
	}

	paid, err := utils.VerifyPayment(reqData.OrderID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to verify payment!", nil)
	}
	if !paid {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not completed yet!", nil)
	}

	var plan models.SubscriptionPlan
	if err := database.Database.Db.Where("id = ?", subscription.PlanID).First(&plan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Plan not found!", nil)
	}

	now := time.Now()
	expiresAt := now.AddDate(0, 0, plan.DurationDays)
	subscription.Status = models.SubscriptionActive
	subscription.StartsAt = &now
	subscription.ExpiresAt = &expiresAt

	if err := database.Database.Db.Save(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate subscription!", nil)
	}

	utils.SendPaymentConfirmationEmail(user.Email, user.Name, plan.Name, subscription.ExpiresAt)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription activated successfully!", subscription)
}

// GetMySubscription gets the user's current subscription status
func GetMySubscription(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var subscription models.Subscription
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").First(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No subscription found.", fiber.Map{
			"has_subscription": false,
		})
	}

	var plan models.SubscriptionPlan
	database.Database.Db.Where("id = ?", subscription.PlanID).First(&plan)

	isActive := subscription.Status == models.SubscriptionActive &&
		subscription.ExpiresAt != nil && subscription.ExpiresAt.After(time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription fetched successfully!", fiber.Map{
		"has_subscription": true,
		"is_active":        isActive,
		"subscription":     subscription,
		"plan":             plan,
	})
}
