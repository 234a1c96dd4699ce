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

// uniqueModuleSlug derives a slug from the title, unique within the course.
func uniqueModuleSlug(courseID uint, title string) string {
	base := utils.Slugify(title)
	slug := base
	for i := 2; ; i++ {
		var count int64
		database.Database.Db.Model(&courseModels.Module{}).Where("course_id = ? AND slug = ?", courseID, slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// AdminCreateModule adds a module at the end of a course
func AdminCreateModule(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Place the new module after the current last one
	var maxOrder int
	database.Database.Db.Model(&courseModels.Module{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	module := courseModels.Module{
		PublicID:    uuid.NewString(),
		CourseID:    course.ID,
		Slug:        uniqueModuleSlug(course.ID, reqData.Title),
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  maxOrder + 1,
		IsPublished: false,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// AdminUpdateModule updates module fields and ordering
func AdminUpdateModule(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)
	moduleSlug := c.Locals("moduleSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND slug = ? AND is_deleted = ?", course.ID, moduleSlug, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
		IsPublished *bool  `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		module.Title = reqData.Title
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.OrderIndex != nil {
		module.OrderIndex = *reqData.OrderIndex
	}
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// AdminDeleteModule soft deletes a module and its lessons
func AdminDeleteModule(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)
	moduleSlug := c.Locals("moduleSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var module courseModels.Module
	if err := database.Database.Db.Where("course_id = ? AND slug = ? AND is_deleted = ?", course.ID, moduleSlug, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	tx := database.Database.Db.Begin()

	module.IsDeleted = true
	if err := tx.Save(&module).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	if err := tx.Model(&courseModels.Lesson{}).Where("module_id = ?", module.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module lessons!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}

// AdminListModules lists all modules of a course with lesson counts
func AdminListModules(c *fiber.Ctx) error {
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
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", course.ID, false).Order("order_index asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	type ModuleWithCount struct {
		courseModels.Module
		LessonCount int64 `json:"lesson_count"`
	}

	result := make([]ModuleWithCount, len(modules))
	for i, m := range modules {
		var count int64
		database.Database.Db.Model(&courseModels.Lesson{}).Where("module_id = ? AND is_deleted = ?", m.ID, false).Count(&count)
		result[i] = ModuleWithCount{Module: m, LessonCount: count}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": result,
		"total":   len(result),
	})
}
