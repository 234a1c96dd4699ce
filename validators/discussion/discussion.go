package discussionValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateThread validates a new discussion thread request
func CreateThread() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and lesson slugs are required!", nil)
		}

		reqData := new(struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Body = strings.TrimSpace(reqData.Body)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.Body == "" {
			errors["body"] = "Body is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("lessonSlug", lessonSlug)
		c.Locals("validatedThread", reqData)
		return c.Next()
	}
}

// ListThreads validates the lesson slugs for thread listing
func ListThreads() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseSlug := strings.TrimSpace(c.Params("courseSlug"))
		lessonSlug := strings.TrimSpace(c.Params("lessonSlug"))
		if courseSlug == "" || lessonSlug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course and lesson slugs are required!", nil)
		}

		c.Locals("courseSlug", courseSlug)
		c.Locals("lessonSlug", lessonSlug)
		return c.Next()
	}
}

// ThreadID validates the :threadId path param
func ThreadID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("threadId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid thread ID!", nil)
		}

		c.Locals("threadID", id)
		return c.Next()
	}
}

// Reply validates a thread reply request
func Reply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("threadId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid thread ID!", nil)
		}

		reqData := new(struct {
			Body          string `json:"body"`
			ParentReplyID uint   `json:"parent_reply_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Body) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"body": "Body is required!",
			})
		}

		c.Locals("threadID", id)
		c.Locals("validatedReply", reqData)
		return c.Next()
	}
}
