package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// ============ Course Validators ============

// CreateCourseAdmin validates admin course creation request
func CreateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Author       string `json:"author"`
			Duration     int64  `json:"duration"`
			Level        string `json:"level"`
			ThumbnailURL string `json:"thumbnail_url"`
			IsPremium    bool   `json:"is_premium"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)
		reqData.Author = strings.TrimSpace(reqData.Author)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		} else if len(reqData.Description) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if reqData.Author == "" {
			errors["author"] = "Author is required!"
		}

		if reqData.Duration < 0 {
			errors["duration"] = "Duration must be a positive number!"
		}

		if reqData.Level != "" && reqData.Level != "BEGINNER" && reqData.Level != "INTERMEDIATE" && reqData.Level != "ADVANCED" {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseAdmin validates admin course update request
func UpdateCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			Author       string `json:"author"`
			Duration     int64  `json:"duration"`
			Level        string `json:"level"`
			ThumbnailURL string `json:"thumbnail_url"`
			IsPremium    *bool  `json:"is_premium"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.Level != "" && reqData.Level != "BEGINNER" && reqData.Level != "INTERMEDIATE" && reqData.Level != "ADVANCED" {
			errors["level"] = "Level must be BEGINNER, INTERMEDIATE or ADVANCED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// PublishCourseAdmin validates the publish toggle request
func PublishCourseAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		reqData := new(struct {
			IsPublished *bool `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.IsPublished == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"is_published": "is_published is required!",
			})
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedPublish", reqData)
		return c.Next()
	}
}

// AdminList validates admin pagination queries
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

// ============ Module Validators ============

// CreateModuleAdmin validates admin module creation request
func CreateModuleAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModuleAdmin validates admin module update request
func UpdateModuleAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		if courseSlug == "" || moduleSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and module slugs are required!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			OrderIndex  *int   `json:"order_index"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"order_index": "Order index must be greater than 0!",
			})
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

// ModuleSlugsAdmin validates :courseSlug and :moduleSlug path params
func ModuleSlugsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		if courseSlug == "" || moduleSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and module slugs are required!", nil)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		return c.Next()
	}
}

// ============ Lesson Validators ============

// CreateLessonAdmin validates admin lesson creation request
func CreateLessonAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		if courseSlug == "" || moduleSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and module slugs are required!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			LessonType  string `json:"lesson_type"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.LessonType != "" && reqData.LessonType != "lesson" && reqData.LessonType != "project" && reqData.LessonType != "assignment" {
			errors["lesson_type"] = "Lesson type must be lesson, project or assignment!"
		}

		if reqData.ContentType != "" && reqData.ContentType != "TEXT" && reqData.ContentType != "VIDEO" && reqData.ContentType != "QUIZ" {
			errors["content_type"] = "Content type must be TEXT, VIDEO or QUIZ!"
		}

		if reqData.ContentType == "VIDEO" && strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required for VIDEO lessons!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLessonAdmin validates admin lesson update request
func UpdateLessonAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || moduleSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course, module and lesson slugs are required!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			LessonType  string `json:"lesson_type"`
			ContentType string `json:"content_type"`
			TextContent string `json:"text_content"`
			VideoURL    string `json:"video_url"`
			OrderIndex  *int   `json:"order_index"`
			IsPublished *bool  `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LessonType != "" && reqData.LessonType != "lesson" && reqData.LessonType != "project" && reqData.LessonType != "assignment" {
			errors["lesson_type"] = "Lesson type must be lesson, project or assignment!"
		}
		if reqData.ContentType != "" && reqData.ContentType != "TEXT" && reqData.ContentType != "VIDEO" && reqData.ContentType != "QUIZ" {
			errors["content_type"] = "Content type must be TEXT, VIDEO or QUIZ!"
		}
		if reqData.OrderIndex != nil && *reqData.OrderIndex < 1 {
			errors["order_index"] = "Order index must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("lessonSlug", lessonSlug)
		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// LessonSlugsAdmin validates :courseSlug, :moduleSlug and :lessonSlug path params
func LessonSlugsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || moduleSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course, module and lesson slugs are required!", nil)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("lessonSlug", lessonSlug)
		return c.Next()
	}
}

// ============ Quiz Validators ============

// QuizQuestionAdmin validates quiz question creation request
func QuizQuestionAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || moduleSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course, module and lesson slugs are required!", nil)
		}

		reqData := new(struct {
			QuestionText string `json:"question_text"`
			OrderIndex   int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.QuestionText) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"question_text": "Question text is required!",
			})
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("lessonSlug", lessonSlug)
		c.Locals("validatedQuizQuestion", reqData)
		return c.Next()
	}
}

// QuizQuestionUpdateAdmin validates quiz question update request
func QuizQuestionUpdateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID := strings.TrimSpace(c.Params("questionId"))
		if questionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		reqData := new(struct {
			QuestionText string `json:"question_text"`
			OrderIndex   int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("questionID", questionID)
		c.Locals("validatedQuizQuestionUpdate", reqData)
		return c.Next()
	}
}

// QuizQuestionIDAdmin validates the :questionId path param
func QuizQuestionIDAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID := strings.TrimSpace(c.Params("questionId"))
		if questionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		c.Locals("questionID", questionID)
		return c.Next()
	}
}

// QuizOptionAdmin validates quiz option creation request
func QuizOptionAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID := strings.TrimSpace(c.Params("questionId"))
		if questionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question ID is required!", nil)
		}

		reqData := new(struct {
			OptionText string `json:"option_text"`
			IsCorrect  bool   `json:"is_correct"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.OptionText) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"option_text": "Option text is required!",
			})
		}

		c.Locals("questionID", questionID)
		c.Locals("validatedQuizOption", reqData)
		return c.Next()
	}
}

// QuizOptionUpdateAdmin validates quiz option update request
func QuizOptionUpdateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		optionID := strings.TrimSpace(c.Params("optionId"))
		if optionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Option ID is required!", nil)
		}

		reqData := new(struct {
			OptionText string `json:"option_text"`
			IsCorrect  bool   `json:"is_correct"`
			OrderIndex int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("optionID", optionID)
		c.Locals("validatedQuizOptionUpdate", reqData)
		return c.Next()
	}
}

// QuizOptionIDAdmin validates the :optionId path param
func QuizOptionIDAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		optionID := strings.TrimSpace(c.Params("optionId"))
		if optionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Option ID is required!", nil)
		}

		c.Locals("optionID", optionID)
		return c.Next()
	}
}

// ============ Dashboard Validators ============

// EnrollmentQueryAdmin validates the enrollment listing query
func EnrollmentQueryAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		reqData := new(struct {
			Page   *int   `json:"page"`
			Limit  *int   `json:"limit"`
			Status string `json:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status != "" && reqData.Status != "ENROLLED" && reqData.Status != "IN_PROGRESS" && reqData.Status != "COMPLETED" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be ENROLLED, IN_PROGRESS or COMPLETED!",
			})
		}

		c.Locals("courseSlug", slug)
		c.Locals("validatedEnrollmentQuery", reqData)
		return c.Next()
	}
}

// StudentIDAdmin validates the :userId path param
func StudentIDAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		c.Locals("targetUserID", id)
		return c.Next()
	}
}

// CertificateQueryAdmin validates certificate listing queries
func CertificateQueryAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedCertificateQuery", reqData)
		return c.Next()
	}
}

// CertificateRequestIDAdmin validates the :requestId path param
func CertificateRequestIDAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("requestId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
		}

		c.Locals("requestID", id)
		return c.Next()
	}
}

// CertificateRejectAdmin validates a certificate rejection request
func CertificateRejectAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("requestId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request ID!", nil)
		}

		reqData := new(struct {
			Reason string `json:"reason"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("requestID", id)
		c.Locals("validatedCertificateReject", reqData)
		return c.Next()
	}
}
