package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/store"

	"github.com/gofiber/fiber/v2"
)

// GetLesson returns lesson content with navigation and the linear-access gate.
// Quiz lessons include their questions with the correct flags stripped.
func GetLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)
	moduleSlug := c.Locals("moduleSlug").(string)
	lessonSlug := c.Locals("lessonSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("slug = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", moduleSlug, course.ID, false, true).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("slug = ? AND module_id = ? AND is_deleted = ? AND is_published = ?", lessonSlug, module.ID, false, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	catalog, err := store.LoadCatalog(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course catalog!", nil)
	}

	entry, found, err := store.GetEntry(database.Database.Db, userID, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	if !found {
		entry = progress.NewEntry(catalog.ID)
	}

	// Enforce linear progression: the lesson before this one must be complete
	flat := progress.Flatten(catalog)
	lessonIndex := -1
	for i, fl := range flat {
		if fl.ID == lesson.PublicID {
			lessonIndex = i
			break
		}
	}
	if lessonIndex < 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	if !progress.CanAccessLesson(entry, catalog, lessonIndex) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the previous lesson to unlock this one!", nil)
	}

	nav, err := progress.NavigationFor(catalog, lesson.PublicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	response := fiber.Map{
		"lesson":      lesson,
		"module":      module,
		"navigation":  nav,
		"is_complete": progress.IsLessonComplete(entry, lesson.PublicID),
	}

	// Attach quiz questions for QUIZ lessons, hiding the answers
	if lesson.ContentType == "QUIZ" {
		type QuestionWithOptions struct {
			courseModels.QuizQuestion
			Options []courseModels.QuizOption `json:"options"`
		}

		var questions []courseModels.QuizQuestion
		database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
			Order("order_index asc, id asc").Find(&questions)

		result := make([]QuestionWithOptions, len(questions))
		for i, q := range questions {
			result[i] = QuestionWithOptions{QuizQuestion: q}

			var options []courseModels.QuizOption
			database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).
				Order("order_index asc, id asc").Find(&options)
			// Remove IsCorrect from options for users (don't show answers)
			for j := range options {
				options[j].IsCorrect = false
			}
			result[i].Options = options
		}
		response["questions"] = result
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", response)
}

// GetLessonNavigation returns only the previous/next pointers around a lesson
func GetLessonNavigation(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)
	moduleSlug := c.Locals("moduleSlug").(string)
	lessonSlug := c.Locals("lessonSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("slug = ? AND course_id = ? AND is_deleted = ?", moduleSlug, course.ID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("slug = ? AND module_id = ? AND is_deleted = ?", lessonSlug, module.ID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	catalog, err := store.LoadCatalog(database.Database.Db, course.ID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course catalog!", nil)
	}

	nav, err := progress.NavigationFor(catalog, lesson.PublicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in course catalog!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Navigation fetched successfully!", nav)
}
