package controllers

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/store"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUserProgressList returns all of the user's progress entries across courses
func GetUserProgressList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	entries, err := store.GetProgress(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": entries,
		"total":    len(entries),
	})
}

// GetCourseProgress returns the user's progress for one course: the raw entry plus
// the derived views the UI renders (per-module rollup, next lesson, access gates)
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Check enrollment
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
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

	// Per-module rollup over published lessons
	type ModuleProgress struct {
		ModuleID         string `json:"module_id"`
		ModuleSlug       string `json:"module_slug"`
		ModuleTitle      string `json:"module_title"`
		TotalLessons     int    `json:"total_lessons"`
		CompletedLessons int    `json:"completed_lessons"`
		Progress         int    `json:"progress"`
	}

	var moduleProgress []ModuleProgress
	for _, mod := range catalog.Modules {
		if !mod.IsPublished {
			continue
		}
		mp := ModuleProgress{ModuleID: mod.ID, ModuleSlug: mod.Slug, ModuleTitle: mod.Title}
		for _, lesson := range mod.Lessons {
			if !lesson.IsPublished {
				continue
			}
			mp.TotalLessons++
			if progress.IsLessonComplete(entry, lesson.ID) {
				mp.CompletedLessons++
			}
		}
		if mp.TotalLessons > 0 {
			mp.Progress = 100 * mp.CompletedLessons / mp.TotalLessons
		}
		moduleProgress = append(moduleProgress, mp)
	}

	// Access gates over the flattened sequence
	type LessonGate struct {
		LessonID   string `json:"lesson_id"`
		LessonSlug string `json:"lesson_slug"`
		ModuleID   string `json:"module_id"`
		IsComplete bool   `json:"is_complete"`
		CanAccess  bool   `json:"can_access"`
	}

	flat := progress.Flatten(catalog)
	gates := make([]LessonGate, len(flat))
	for i, fl := range flat {
		gates[i] = LessonGate{
			LessonID:   fl.ID,
			LessonSlug: fl.Slug,
			ModuleID:   fl.ModuleID,
			IsComplete: progress.IsLessonComplete(entry, fl.ID),
			CanAccess:  progress.CanAccessLesson(entry, catalog, i),
		}
	}

	response := fiber.Map{
		"entry":           entry,
		"total_progress":  progress.EntryPercent(entry, catalog),
		"is_complete":     progress.IsCourseComplete(entry, catalog),
		"module_progress": moduleProgress,
		"lessons":         gates,
	}
	if next, ok := progress.NextIncompleteLesson(entry, catalog); ok {
		response["next_lesson"] = fiber.Map{
			"lesson_id":   next.ID,
			"lesson_slug": next.Slug,
			"module_id":   next.ModuleID,
			"module_slug": next.ModuleSlug,
			"title":       next.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", response)
}

// MarkLessonComplete marks a lesson as completed for the current user
func MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)
	lessonSlug := c.Locals("lessonSlug").(string)

	course, lesson, errResp := resolveCourseLesson(c, userID, courseSlug, lessonSlug)
	if errResp != nil {
		return errResp
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
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

	wasComplete := entry.CompletedAt != nil

	entry, err = progress.CompleteLesson(entry, catalog, module.PublicID, lesson.PublicID, time.Now())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in course catalog!", nil)
	}

	if err := store.UpsertProgress(database.Database.Db, userID, course.ID, entry); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	syncEnrollmentProgress(userID, course.ID, entry, catalog)

	// Congratulate once, on the transition to fully complete
	if !wasComplete && entry.CompletedAt != nil {
		go func(email, name, courseTitle string) {
			if err := utils.SendCourseCompletedEmail(email, name, courseTitle); err != nil {
				log.Printf("Error sending course completion email: %v", err)
			}
		}(user.Email, user.Name, course.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as complete!", entry)
}

// UnmarkLessonComplete is the explicit undo for a completed lesson
func UnmarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)
	lessonSlug := c.Locals("lessonSlug").(string)

	course, lesson, errResp := resolveCourseLesson(c, userID, courseSlug, lessonSlug)
	if errResp != nil {
		return errResp
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lesson.ModuleID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
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
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No progress recorded for this course!", nil)
	}

	entry, err = progress.UncompleteLesson(entry, catalog, module.PublicID, lesson.PublicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found in course catalog!", nil)
	}

	if err := store.UpsertProgress(database.Database.Db, userID, course.ID, entry); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	syncEnrollmentProgress(userID, course.ID, entry, catalog)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as incomplete!", entry)
}

// resolveCourseLesson loads the course and lesson for a mutation and enforces
// enrollment. Returns a ready error response when any check fails.
func resolveCourseLesson(c *fiber.Ctx, userID uint, courseSlug, lessonSlug string) (courseModels.Course, courseModels.Lesson, error) {
	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return course, courseModels.Lesson{}, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return course, courseModels.Lesson{}, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("slug = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", lessonSlug, course.ID, false, true).First(&lesson).Error; err != nil {
		return course, lesson, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return course, lesson, nil
}

// syncEnrollmentProgress mirrors the authoritative progress entry onto the
// enrollment row used by listing screens
func syncEnrollmentProgress(userID, courseID uint, entry progress.Entry, catalog progress.Course) {
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return
	}

	completed := 0
	total := 0
	for _, fl := range progress.Flatten(catalog) {
		total++
		if progress.IsLessonComplete(entry, fl.ID) {
			completed++
		}
	}

	enrollment.CompletedLessons = completed
	enrollment.TotalLessons = total
	enrollment.Progress = entry.TotalProgress
	enrollment.CompletedAt = entry.CompletedAt

	if entry.CompletedAt != nil {
		enrollment.Status = "COMPLETED"
	} else if enrollment.Progress > 0 {
		enrollment.Status = "IN_PROGRESS"
	} else {
		enrollment.Status = "ENROLLED"
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		log.Printf("Error updating enrollment progress: %v", err)
	}
}
