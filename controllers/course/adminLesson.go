package controllers

import (
	"fmt"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// findAdminModule resolves courseSlug/moduleSlug Locals to their rows.
// Returns the ready error response when either is missing.
func findAdminModule(c *fiber.Ctx) (courseModels.Course, courseModels.Module, error, bool) {
	courseSlug := c.Locals("courseSlug").(string)
	moduleSlug := c.Locals("moduleSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return course, courseModels.Module{}, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil), false
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND slug = ? AND is_deleted = ?", course.ID, moduleSlug, false).First(&module).Error; err != nil {
		return course, module, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil), false
	}

	return course, module, nil, true
}

func uniqueLessonSlug(moduleID uint, title string) string {
	base := utils.Slugify(title)
	slug := base
	for i := 2; ; i++ {
		var count int64
		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND slug = ?", moduleID, slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// AdminCreateLesson adds a lesson at the end of a module
func AdminCreateLesson(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	course, module, resp, ok := findAdminModule(c)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		LessonType  string `json:"lesson_type"`
		ContentType string `json:"content_type"`
		TextContent string `json:"text_content"`
		VideoURL    string `json:"video_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var maxOrder int
	database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ?", module.ID, false).
		Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	lesson := courseModels.Lesson{
		PublicID:    uuid.NewString(),
		CourseID:    course.ID,
		ModuleID:    module.ID,
		Slug:        uniqueLessonSlug(module.ID, reqData.Title),
		Title:       reqData.Title,
		Description: reqData.Description,
		LessonType:  reqData.LessonType,
		ContentType: reqData.ContentType,
		TextContent: reqData.TextContent,
		VideoURL:    reqData.VideoURL,
		OrderIndex:  maxOrder + 1,
		IsPublished: false,
	}
	if lesson.LessonType == "" {
		lesson.LessonType = "lesson"
	}
	if lesson.ContentType == "" {
		lesson.ContentType = "TEXT"
	}

	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// AdminUpdateLesson updates lesson fields and ordering
func AdminUpdateLesson(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	_, module, resp, ok := findAdminModule(c)
	if !ok {
		return resp
	}

	lessonSlug := c.Locals("lessonSlug").(string)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND slug = ? AND is_deleted = ?", module.ID, lessonSlug, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		LessonType  string `json:"lesson_type"`
		ContentType string `json:"content_type"`
		TextContent string `json:"text_content"`
		VideoURL    string `json:"video_url"`
		OrderIndex  *int   `json:"order_index"`
		IsPublished *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.Description != "" {
		lesson.Description = reqData.Description
	}
	if reqData.LessonType != "" {
		lesson.LessonType = reqData.LessonType
	}
	if reqData.ContentType != "" {
		lesson.ContentType = reqData.ContentType
	}
	if reqData.TextContent != "" {
		lesson.TextContent = reqData.TextContent
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		lesson.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson soft deletes a lesson. Progress records holding the
// lesson's id are left untouched.
func AdminDeleteLesson(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	_, module, resp, ok := findAdminModule(c)
	if !ok {
		return resp
	}

	lessonSlug := c.Locals("lessonSlug").(string)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND slug = ? AND is_deleted = ?", module.ID, lessonSlug, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	lesson.IsDeleted = true
	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// AdminGetModuleLessons lists all lessons of a module
func AdminGetModuleLessons(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	_, module, resp, ok := findAdminModule(c)
	if !ok {
		return resp
	}

	var lessons []courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).Order("order_index asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
		"total":   len(lessons),
	})
}
