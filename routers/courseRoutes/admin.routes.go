package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course")

	// Course CRUD
	adminGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", middleware.JWTMiddleware, validators.AdminList(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:slug", middleware.JWTMiddleware, validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:slug", middleware.JWTMiddleware, validators.CourseSlug(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:slug", middleware.JWTMiddleware, validators.CourseSlug(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:slug/publish", middleware.JWTMiddleware, validators.PublishCourseAdmin(), controllers.AdminPublishCourse)

	// Module management
	adminGroup.Post("/:slug/module", middleware.JWTMiddleware, validators.CreateModuleAdmin(), controllers.AdminCreateModule)
	adminGroup.Get("/:slug/modules", middleware.JWTMiddleware, validators.CourseSlug(), controllers.AdminListModules)
	adminGroup.Put("/:courseSlug/module/:moduleSlug", middleware.JWTMiddleware, validators.UpdateModuleAdmin(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:courseSlug/module/:moduleSlug", middleware.JWTMiddleware, validators.ModuleSlugsAdmin(), controllers.AdminDeleteModule)

	// Lesson management
	adminGroup.Post("/:courseSlug/module/:moduleSlug/lesson", middleware.JWTMiddleware, validators.CreateLessonAdmin(), controllers.AdminCreateLesson)
	adminGroup.Get("/:courseSlug/module/:moduleSlug/lessons", middleware.JWTMiddleware, validators.ModuleSlugsAdmin(), controllers.AdminGetModuleLessons)
	adminGroup.Put("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug", middleware.JWTMiddleware, validators.UpdateLessonAdmin(), controllers.AdminUpdateLesson)
	adminGroup.Delete("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug", middleware.JWTMiddleware, validators.LessonSlugsAdmin(), controllers.AdminDeleteLesson)

	// Quiz management
	adminGroup.Post("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug/quiz/question", middleware.JWTMiddleware, validators.QuizQuestionAdmin(), controllers.AdminAddQuizQuestion)
	adminGroup.Get("/:courseSlug/module/:moduleSlug/lesson/:lessonSlug/quiz/questions", middleware.JWTMiddleware, validators.LessonSlugsAdmin(), controllers.AdminGetQuizQuestions)

	questionGroup := app.Group("/admin/quiz/question")
	questionGroup.Put("/:questionId", middleware.JWTMiddleware, validators.QuizQuestionUpdateAdmin(), controllers.AdminUpdateQuizQuestion)
	questionGroup.Delete("/:questionId", middleware.JWTMiddleware, validators.QuizQuestionIDAdmin(), controllers.AdminDeleteQuizQuestion)
	questionGroup.Post("/:questionId/option", middleware.JWTMiddleware, validators.QuizOptionAdmin(), controllers.AdminAddQuizOption)

	optionGroup := app.Group("/admin/quiz/option")
	optionGroup.Put("/:optionId", middleware.JWTMiddleware, validators.QuizOptionUpdateAdmin(), controllers.AdminUpdateQuizOption)
	optionGroup.Delete("/:optionId", middleware.JWTMiddleware, validators.QuizOptionIDAdmin(), controllers.AdminDeleteQuizOption)

	// Enrollment & progress tracking
	adminGroup.Get("/:slug/enrollments", middleware.JWTMiddleware, validators.EnrollmentQueryAdmin(), controllers.AdminGetCourseEnrollments)
	adminGroup.Get("/:slug/completed", middleware.JWTMiddleware, validators.CourseSlug(), controllers.AdminGetCompletedStudents)

	studentGroup := app.Group("/admin/student")
	studentGroup.Get("/:userId/progress", middleware.JWTMiddleware, validators.StudentIDAdmin(), controllers.AdminGetStudentProgress)

	// Certificate management
	certGroup := app.Group("/admin/certificates")
	certGroup.Get("/pending", middleware.JWTMiddleware, validators.CertificateQueryAdmin(), controllers.AdminGetPendingCertificates)
	certGroup.Get("/issued", middleware.JWTMiddleware, validators.CertificateQueryAdmin(), controllers.AdminGetIssuedCertificates)

	certRequestGroup := app.Group("/admin/certificate")
	certRequestGroup.Post("/:requestId/approve", middleware.JWTMiddleware, validators.CertificateRequestIDAdmin(), controllers.AdminApproveCertificate)
	certRequestGroup.Post("/:requestId/reject", middleware.JWTMiddleware, validators.CertificateRejectAdmin(), controllers.AdminRejectCertificate)
}
