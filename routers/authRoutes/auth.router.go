package authRoutes

import (
	authControllers "lms/controllers/auth"
	"lms/middleware"
	authValidators "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/login/history", middleware.JWTMiddleware, authValidators.LoginHistory(), authControllers.LoginHistoryList)
	authGroup.Post("/send/otp", authControllers.SendOTP)
	authGroup.Patch("/verify/otp", authControllers.VerifyOTP)
	authGroup.Post("/forgot/password/send/otp", authControllers.ForgotPasswordSendOTP)
	authGroup.Patch("/forgot/password/verify/otp", authControllers.ForgotPasswordVerifyOTP)
	authGroup.Patch("/reset/password", middleware.JWTMiddleware, authControllers.ResetPassword)
}
