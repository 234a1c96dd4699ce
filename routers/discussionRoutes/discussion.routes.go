package discussionRoutes

import (
	controllers "lms/controllers/discussion"
	"lms/middleware"
	validators "lms/validators/discussion"

	"github.com/gofiber/fiber/v2"
)

// SetupDiscussionRoutes sets up per-lesson discussion routes
func SetupDiscussionRoutes(app *fiber.App) {
	lessonGroup := app.Group("/course/:courseSlug/lesson/:lessonSlug/discussions")

	lessonGroup.Post("/", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("join-discussions"), validators.CreateThread(), controllers.CreateThread)
	lessonGroup.Get("/", middleware.JWTMiddleware, validators.ListThreads(), controllers.ListThreads)

	threadGroup := app.Group("/discussion")
	threadGroup.Get("/:threadId", middleware.JWTMiddleware, validators.ThreadID(), controllers.GetThread)
	threadGroup.Post("/:threadId/reply", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("join-discussions"), validators.Reply(), controllers.ReplyToThread)
}
