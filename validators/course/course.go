package courseValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseSlug validates the :slug path param
func CourseSlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course slug is required!", nil)
		}

		c.Locals("courseSlug", slug)
		return c.Next()
	}
}

// LessonSlugs validates :courseSlug and :lessonSlug path params
func LessonSlugs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))

		errors := make(map[string]string)
		if courseSlug == "" {
			errors["courseSlug"] = "Course slug is required!"
		}
		if lessonSlug == "" {
			errors["lessonSlug"] = "Lesson slug is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("lessonSlug", lessonSlug)
		return c.Next()
	}
}

// ModuleLessonSlugs validates :courseSlug, :moduleSlug and :lessonSlug path params
func ModuleLessonSlugs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		moduleSlug := strings.TrimSpace(c.Params("moduleSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))

		errors := make(map[string]string)
		if courseSlug == "" {
			errors["courseSlug"] = "Course slug is required!"
		}
		if moduleSlug == "" {
			errors["moduleSlug"] = "Module slug is required!"
		}
		if lessonSlug == "" {
			errors["lessonSlug"] = "Lesson slug is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("moduleSlug", moduleSlug)
		c.Locals("lessonSlug", lessonSlug)
		return c.Next()
	}
}

// QuizSubmission validates a quiz attempt body
func QuizSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and lesson slugs are required!", nil)
		}

		reqData := new(struct {
			Answers []struct {
				QuestionID string `json:"question_id"`
				OptionID   string `json:"option_id"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, a := range reqData.Answers {
			if strings.TrimSpace(a.QuestionID) == "" {
				errors["answers"] = "Every answer needs a question_id!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("lessonSlug", lessonSlug)
		c.Locals("validatedQuizSubmission", reqData)
		return c.Next()
	}
}
