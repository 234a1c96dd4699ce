package subscriptionValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// Purchase validates a plan purchase request
func Purchase() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanID uint `json:"plan_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.PlanID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"plan_id": "Plan ID is required!",
			})
		}

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}

// PaymentConfirm validates a payment confirmation request
func PaymentConfirm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderID string `json:"order_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.OrderID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"order_id": "Order ID is required!",
			})
		}

		c.Locals("validatedPaymentConfirm", reqData)
		return c.Next()
	}
}
