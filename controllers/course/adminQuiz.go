package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// findQuizLesson resolves the lesson slugs from Locals and checks it is a
// QUIZ lesson. Returns the ready error response when not.
func findQuizLesson(c *fiber.Ctx) (courseModels.Lesson, error, bool) {
	_, module, resp, ok := findAdminModule(c)
	if !ok {
		return courseModels.Lesson{}, resp, false
	}

	lessonSlug := c.Locals("lessonSlug").(string)

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("module_id = ? AND slug = ? AND is_deleted = ?", module.ID, lessonSlug, false).First(&lesson).Error; err != nil {
		return lesson, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil), false
	}

	if lesson.ContentType != "QUIZ" {
		return lesson, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson is not a quiz!", nil), false
	}

	return lesson, nil, true
}

// AdminAddQuizQuestion adds a question to a quiz lesson
func AdminAddQuizQuestion(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	lesson, resp, ok := findQuizLesson(c)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedQuizQuestion").(*struct {
		QuestionText string `json:"question_text"`
		OrderIndex   int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.QuizQuestion{}).
			Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	question := courseModels.QuizQuestion{
		PublicID:     uuid.NewString(),
		LessonID:     lesson.ID,
		QuestionText: reqData.QuestionText,
		OrderIndex:   orderIndex,
	}

	if err := database.Database.Db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz question added successfully!", question)
}

// AdminUpdateQuizQuestion updates a quiz question
func AdminUpdateQuizQuestion(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	questionID := c.Locals("questionID").(string)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizQuestionUpdate").(*struct {
		QuestionText string `json:"question_text"`
		OrderIndex   int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.QuestionText != "" {
		question.QuestionText = reqData.QuestionText
	}
	if reqData.OrderIndex > 0 {
		question.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz question updated successfully!", question)
}

// AdminDeleteQuizQuestion soft deletes a question and its options
func AdminDeleteQuizQuestion(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	questionID := c.Locals("questionID").(string)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	tx := database.Database.Db.Begin()

	question.IsDeleted = true
	if err := tx.Save(&question).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz question!", nil)
	}

	if err := tx.Model(&courseModels.QuizOption{}).Where("question_id = ?", question.ID).Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz options!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz question deleted successfully!", nil)
}

// AdminAddQuizOption adds an option to a quiz question
func AdminAddQuizOption(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	questionID := c.Locals("questionID").(string)

	var question courseModels.QuizQuestion
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizOption").(*struct {
		OptionText string `json:"option_text"`
		IsCorrect  bool   `json:"is_correct"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		database.Database.Db.Model(&courseModels.QuizOption{}).
			Where("question_id = ? AND is_deleted = ?", question.ID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	option := courseModels.QuizOption{
		PublicID:   uuid.NewString(),
		QuestionID: question.ID,
		OptionText: reqData.OptionText,
		IsCorrect:  reqData.IsCorrect,
		OrderIndex: orderIndex,
	}

	if err := database.Database.Db.Create(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add quiz option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz option added successfully!", option)
}

// AdminUpdateQuizOption updates a quiz option
func AdminUpdateQuizOption(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	optionID := c.Locals("optionID").(string)

	var option courseModels.QuizOption
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", optionID, false).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz option not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizOptionUpdate").(*struct {
		OptionText string `json:"option_text"`
		IsCorrect  bool   `json:"is_correct"`
		OrderIndex int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.OptionText != "" {
		option.OptionText = reqData.OptionText
	}
	option.IsCorrect = reqData.IsCorrect
	if reqData.OrderIndex > 0 {
		option.OrderIndex = reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz option updated successfully!", option)
}

// AdminDeleteQuizOption soft deletes a quiz option
func AdminDeleteQuizOption(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	optionID := c.Locals("optionID").(string)

	var option courseModels.QuizOption
	if err := database.Database.Db.Where("public_id = ? AND is_deleted = ?", optionID, false).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz option not found!", nil)
	}

	option.IsDeleted = true
	if err := database.Database.Db.Save(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz option deleted successfully!", nil)
}

// AdminGetQuizQuestions lists a quiz lesson's questions with options,
// correct answers included
func AdminGetQuizQuestions(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	lesson, resp, ok := findQuizLesson(c)
	if !ok {
		return resp
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).Order("order_index asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}

	type QuestionWithOptions struct {
		courseModels.QuizQuestion
		Options []courseModels.QuizOption `json:"options"`
	}

	result := make([]QuestionWithOptions, len(questions))
	for i, q := range questions {
		var options []courseModels.QuizOption
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", q.ID, false).Order("order_index asc").Find(&options)
		result[i] = QuestionWithOptions{QuizQuestion: q, Options: options}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz questions fetched successfully!", fiber.Map{
		"questions": result,
		"total":     len(result),
	})
}
