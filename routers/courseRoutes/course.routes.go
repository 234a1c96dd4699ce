package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing (published courses only)
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:slug", middleware.JWTMiddleware, validators.CourseSlug(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:slug/enroll", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("enroll"), validators.CourseSlug(), controllers.EnrollInCourse)

	// Progress tracking
	courseGroup.Get("/:slug/progress", middleware.JWTMiddleware, validators.CourseSlug(), controllers.GetCourseProgress)
	courseGroup.Post("/:courseSlug/lesson/:lessonSlug/complete", middleware.JWTMiddleware, validators.LessonSlugs(), controllers.MarkLessonComplete)
	courseGroup.Post("/:courseSlug/lesson/:lessonSlug/uncomplete", middleware.JWTMiddleware, validators.LessonSlugs(), controllers.UnmarkLessonComplete)

	// Quizzes
	courseGroup.Post("/:courseSlug/lesson/:lessonSlug/quiz/submit", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("submit-quiz"), validators.QuizSubmission(), controllers.SubmitQuizAttempt)
	courseGroup.Get("/:courseSlug/lesson/:lessonSlug/quiz/attempts", middleware.JWTMiddleware, validators.LessonSlugs(), controllers.GetQuizAttempts)

	// Lesson content and navigation
	courseGroup.Get("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug", middleware.JWTMiddleware, validators.ModuleLessonSlugs(), controllers.GetLesson)
	courseGroup.Get("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug/navigation", middleware.JWTMiddleware, validators.ModuleLessonSlugs(), controllers.GetLessonNavigation)

	// Certificates
	courseGroup.Post("/:slug/certificate/request", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("request-certificate"), validators.CourseSlug(), controllers.RequestCertificate)

	// Per-user listings
	userGroup := app.Group("/user")
	userGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetUserProgressList)
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
