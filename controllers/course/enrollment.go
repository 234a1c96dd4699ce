package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseSlug := c.Locals("courseSlug").(string)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Premium courses need an active subscription
	if course.IsPremium {
		var subscription models.Subscription
		err := database.Database.Db.Where("user_id = ? AND status = ? AND expires_at > ? AND is_deleted = ?",
			userID, models.SubscriptionActive, time.Now(), false).First(&subscription).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "An active subscription is required for this course!", nil)
		}
	}

	// Check if user is already enrolled
	var existingEnrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&existingEnrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	// Count published lessons for the progress mirror
	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ? AND is_published = ?", course.ID, false, true).Count(&totalLessons)

	enrollment := courseModels.Enrollment{
		UserID:       userID,
		CourseID:     course.ID,
		Status:       "ENROLLED",
		TotalLessons: int(totalLessons),
	}

	// Save to database with transaction
	tx := database.Database.Db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetUserEnrollmentsList gets all enrollments for the current user
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle    string `json:"course_title"`
		CourseSlug     string `json:"course_slug"`
		CourseAuthor   string `json:"course_author"`
		CourseDuration int64  `json:"course_duration"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:     e,
			CourseTitle:    course.Title,
			CourseSlug:     course.Slug,
			CourseAuthor:   course.Author,
			CourseDuration: course.Duration,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
