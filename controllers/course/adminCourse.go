package controllers

import (
	"fmt"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// requireAdmin loads the current user and rejects non-admins. Returns the
// ready error response when access is denied.
func requireAdmin(c *fiber.Ctx) (models.User, error, bool) {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil), false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return models.User{}, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil), false
	}

	if user.Role != "ADMIN" {
		return models.User{}, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil), false
	}

	return user, nil, true
}

// uniqueCourseSlug derives a URL slug from the title, suffixing on collision.
func uniqueCourseSlug(title string) string {
	base := utils.Slugify(title)
	slug := base
	for i := 2; ; i++ {
		var count int64
		database.Database.Db.Model(&courseModels.Course{}).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// AdminCreateCourse creates a new course as an unpublished draft
func AdminCreateCourse(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Author       string `json:"author"`
		Duration     int64  `json:"duration"`
		Level        string `json:"level"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsPremium    bool   `json:"is_premium"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		PublicID:     uuid.NewString(),
		Slug:         uniqueCourseSlug(reqData.Title),
		Title:        reqData.Title,
		Description:  reqData.Description,
		Author:       reqData.Author,
		Duration:     reqData.Duration,
		Level:        reqData.Level,
		ThumbnailURL: reqData.ThumbnailURL,
		IsPremium:    reqData.IsPremium,
		IsPublished:  false,
	}
	if course.Level == "" {
		course.Level = "BEGINNER"
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Author       string `json:"author"`
		Duration     int64  `json:"duration"`
		Level        string `json:"level"`
		ThumbnailURL string `json:"thumbnail_url"`
		IsPremium    *bool  `json:"is_premium"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields. The slug and public id stay stable so
	// learner progress keyed on them survives renames.
	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Author != "" {
		course.Author = reqData.Author
	}
	if reqData.Duration > 0 {
		course.Duration = reqData.Duration
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.IsPremium != nil {
		course.IsPremium = *reqData.IsPremium
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course. Learner progress records keep
// pointing at the old lesson ids; the aggregator simply stops counting them.
func AdminDeleteCourse(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetAllCourses lists all courses for admin, drafts included
func AdminGetAllCourses(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var courses []courseModels.Course
	var total int64

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCourseDetails gets a single course with its modules and counts
func AdminGetCourseDetails(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.Module
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_index asc").Find(&modules)

	var lessonCount int64
	database.Database.Db.Model(&courseModels.Lesson{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&lessonCount)

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"modules":          modules,
		"lesson_count":     lessonCount,
		"enrollment_count": enrollmentCount,
	})
}

// AdminPublishCourse publishes or unpublishes a course
func AdminPublishCourse(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedPublish").(*struct {
		IsPublished *bool `json:"is_published"`
	})
	if !ok || reqData.IsPublished == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course.IsPublished = *reqData.IsPublished
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	msg := "Course unpublished successfully!"
	if course.IsPublished {
		msg = "Course published successfully!"
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, msg, course)
}
