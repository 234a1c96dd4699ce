package subscriptionRoutes

import (
	controllers "lms/controllers/subscription"
	"lms/middleware"
	validators "lms/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupSubscriptionRoutes sets up subscription plan and payment routes
func SetupSubscriptionRoutes(app *fiber.App) {
	subGroup := app.Group("/subscription")

	subGroup.Get("/plans", middleware.JWTMiddleware, controllers.GetPlans)
	subGroup.Post("/purchase", middleware.JWTMiddleware, validators.Purchase(), controllers.PurchasePlan)
	subGroup.Post("/confirm", middleware.JWTMiddleware, validators.PaymentConfirm(), controllers.ConfirmPayment)
	subGroup.Get("/me", middleware.JWTMiddleware, controllers.GetMySubscription)
}
