package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// findDiscussionLesson resolves the courseSlug/lessonSlug Locals to their
// rows and checks the user is enrolled. Returns the ready error response
// when access is denied.
func findDiscussionLesson(c *fiber.Ctx, userID uint) (courseModels.Course, courseModels.Lesson, error, bool) {
	courseSlug := c.Locals("courseSlug").(string)
	lessonSlug := c.Locals("lessonSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ? AND is_published = ?", courseSlug, false, true).First(&course).Error; err != nil {
		return course, courseModels.Lesson{}, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil), false
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).First(&enrollment).Error; err != nil {
		return course, courseModels.Lesson{}, middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil), false
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("course_id = ? AND slug = ? AND is_deleted = ?", course.ID, lessonSlug, false).First(&lesson).Error; err != nil {
		return course, lesson, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil), false
	}

	return course, lesson, nil, true
}

// CreateThread starts a discussion thread on a lesson
func CreateThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	course, lesson, resp, ok := findDiscussionLesson(c, userID)
	if !ok {
		return resp
	}

	reqData, ok := c.Locals("validatedThread").(*struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	thread := models.DiscussionThread{
		UserID:   userID,
		CourseID: course.ID,
		LessonID: lesson.ID,
		Title:    reqData.Title,
		Body:     reqData.Body,
	}

	if err := database.Database.Db.Create(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create thread!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thread created successfully!", thread)
}

// ListThreads lists discussion threads on a lesson, pinned first
func ListThreads(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	_, lesson, resp, ok := findDiscussionLesson(c, userID)
	if !ok {
		return resp
	}

	type ThreadWithMeta struct {
		models.DiscussionThread
		AuthorName string `json:"author_name"`
		ReplyCount int64  `json:"reply_count"`
	}

	var threads []models.DiscussionThread
	if err := database.Database.Db.Where("lesson_id = ? AND is_deleted = ?", lesson.ID, false).
		Order("is_pinned desc, created_at desc").Find(&threads).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch threads!", nil)
	}

	result := make([]ThreadWithMeta, len(threads))
	for i, t := range threads {
		var author models.User
		database.Database.Db.Select("name").Where("id = ?", t.UserID).First(&author)
		var replyCount int64
		database.Database.Db.Model(&models.DiscussionReply{}).Where("thread_id = ? AND is_deleted = ?", t.ID, false).Count(&replyCount)
		result[i] = ThreadWithMeta{
			DiscussionThread: t,
			AuthorName:       author.Name,
			ReplyCount:       replyCount,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Threads fetched successfully!", fiber.Map{
		"threads": result,
		"total":   len(result),
	})
}

// GetThread gets a thread with its replies nested under their parents
func GetThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	threadID := c.Locals("threadID").(int)

	var thread models.DiscussionThread
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, thread.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var replies []models.DiscussionReply
	if err := database.Database.Db.Where("thread_id = ? AND is_deleted = ?", thread.ID, false).
		Order("created_at asc").Find(&replies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch replies!", nil)
	}

	type ReplyNode struct {
		models.DiscussionReply
		AuthorName string       `json:"author_name"`
		Children   []*ReplyNode `json:"children"`
	}

	nodes := make(map[uint]*ReplyNode, len(replies))
	var roots []*ReplyNode
	for _, r := range replies {
		var author models.User
		database.Database.Db.Select("name").Where("id = ?", r.UserID).First(&author)
		nodes[r.ID] = &ReplyNode{
			DiscussionReply: r,
			AuthorName:      author.Name,
			Children:        []*ReplyNode{},
		}
	}
	// Replies are ordered by creation time so parents always precede children
	for _, r := range replies {
		node := nodes[r.ID]
		if r.ParentReplyID != 0 {
			if parent, ok := nodes[r.ParentReplyID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var author models.User
	database.Database.Db.Select("name").Where("id = ?", thread.UserID).First(&author)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thread fetched successfully!", fiber.Map{
		"thread":      thread,
		"author_name": author.Name,
		"replies":     roots,
		"reply_count": len(replies),
	})
}

// ReplyToThread posts a reply, optionally nested under another reply
func ReplyToThread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	threadID := c.Locals("threadID").(int)

	var thread models.DiscussionThread
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", threadID, false).First(&thread).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Thread not found!", nil)
	}

	if thread.IsLocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Thread is locked!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, thread.CourseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	reqData, ok := c.Locals("validatedReply").(*struct {
		Body          string `json:"body"`
		ParentReplyID uint   `json:"parent_reply_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.ParentReplyID != 0 {
		var parent models.DiscussionReply
		if err := database.Database.Db.Where("id = ? AND thread_id = ? AND is_deleted = ?", reqData.ParentReplyID, thread.ID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent reply not found!", nil)
		}
	}

	reply := models.DiscussionReply{
		ThreadID:      thread.ID,
		UserID:        userID,
		ParentReplyID: reqData.ParentReplyID,
		Body:          reqData.Body,
	}

	if err := database.Database.Db.Create(&reply).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reply posted successfully!", reply)
}
