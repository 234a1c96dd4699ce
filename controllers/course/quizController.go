package controllers

import (
	"encoding/json"
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitQuizAttempt grades and records a quiz submission. Every attempt is kept;
// the lesson is completed the first time an attempt reaches the pass threshold.
func SubmitQuizAttempt(c *fiber.Ctx) error {
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

	if lesson.ContentType != "QUIZ" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson has no quiz!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmission").(*struct {
		Answers []struct {
			QuestionID string `json:"question_id"`
			OptionID   string `json:"option_id"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []courseModels.QuizQuestion
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
		Order("order_index asc, id asc").Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz questions!", nil)
	}
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions yet!", nil)
	}

	// Index submitted option per question
	selected := make(map[string]string)
	for _, answer := range reqData.Answers {
		selected[answer.QuestionID] = answer.OptionID
	}

	// Grade each question against its correct option
	score := 0
	answers := make([]progress.QuizAnswer, 0, len(questions))
	for _, question := range questions {
		optionID := selected[question.PublicID]

		isCorrect := false
		if optionID != "" {
			var option courseModels.QuizOption
			err := database.Database.Db.Where("public_id = ? AND question_id = ? AND is_deleted = ?", optionID, question.ID, false).First(&option).Error
			if err == nil && option.IsCorrect {
				isCorrect = true
				score++
			}
		}

		answers = append(answers, progress.QuizAnswer{
			QuestionID:     question.PublicID,
			SelectedOption: optionID,
			IsCorrect:      isCorrect,
		})
	}

	now := time.Now()
	attempt := progress.QuizAttempt{
		Score:          score,
		TotalQuestions: len(questions),
		Percentage:     progress.ScorePercentage(score, len(questions)),
		Answers:        answers,
		CompletedAt:    now,
	}

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).Count(&attemptCount)

	answersJSON, _ := json.Marshal(answers)

	record := courseModels.QuizAttempt{
		UserID:         userID,
		LessonID:       lesson.ID,
		Score:          score,
		TotalQuestions: len(questions),
		Percentage:     attempt.Percentage,
		Answers:        datatypes.JSON(answersJSON),
		AttemptNumber:  int(attemptCount) + 1,
		CompletedAt:    now,
	}

	if err := database.Database.Db.Create(&record).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz attempt!", nil)
	}

	// Apply the attempt to the user's progress entry
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

	entry, completedLesson, err := progress.ApplyQuizAttempt(entry, catalog, lesson.PublicID, attempt, now)
	if err != nil {
		log.Printf("Error applying quiz attempt to progress: %v", err)
	} else if completedLesson {
		if err := store.UpsertProgress(database.Database.Db, userID, course.ID, entry); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
		}
		syncEnrollmentProgress(userID, course.ID, entry, catalog)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempt submitted!", fiber.Map{
		"attempt":          record,
		"score":            score,
		"total_questions":  len(questions),
		"percentage":       attempt.Percentage,
		"passed":           attempt.Percentage >= progress.PassThreshold,
		"completed_lesson": completedLesson,
	})
}

// GetQuizAttempts returns the user's attempt history for a lesson, oldest first
func GetQuizAttempts(c *fiber.Ctx) error {
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

	_, lesson, errResp := resolveCourseLesson(c, userID, courseSlug, lessonSlug)
	if errResp != nil {
		return errResp
	}

	var attempts []courseModels.QuizAttempt
	if err := database.Database.Db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lesson.ID, false).
		Order("completed_at asc, id asc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempts fetched successfully!", fiber.Map{
		"attempts": attempts,
		"total":    len(attempts),
	})
}
