package controllers

import (
	"fmt"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/store"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminGetCourseEnrollments gets all enrolled students for a course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, _ := c.Locals("validatedEnrollmentQuery").(*struct {
		Page   *int   `json:"page"`
		Limit  *int   `json:"limit"`
		Status string `json:"status"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Enrollment{}).Where("course_id = ? AND is_deleted = ?", course.ID, false)

	if reqData != nil && reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	type EnrollmentWithUser struct {
		courseModels.Enrollment
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	var enrollments []courseModels.Enrollment
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithUser, len(enrollments))
	for i, e := range enrollments {
		var enrolledUser models.User
		database.Database.Db.Where("id = ?", e.UserID).First(&enrolledUser)
		result[i] = EnrollmentWithUser{
			Enrollment: e,
			UserName:   enrolledUser.Name,
			UserEmail:  enrolledUser.Email,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetCompletedStudents gets students who completed a course
func AdminGetCompletedStudents(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	courseSlug := c.Locals("courseSlug").(string)

	var course courseModels.Course
	if err := database.Database.Db.Where("slug = ? AND is_deleted = ?", courseSlug, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	type CompletedStudent struct {
		UserID      uint       `json:"user_id"`
		UserName    string     `json:"user_name"`
		UserEmail   string     `json:"user_email"`
		Progress    int        `json:"progress"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND status = ? AND is_deleted = ?", course.ID, "COMPLETED", false).
		Order("completed_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch completed students!", nil)
	}

	result := make([]CompletedStudent, len(enrollments))
	for i, e := range enrollments {
		var enrolledUser models.User
		database.Database.Db.Where("id = ?", e.UserID).First(&enrolledUser)
		result[i] = CompletedStudent{
			UserID:      e.UserID,
			UserName:    enrolledUser.Name,
			UserEmail:   enrolledUser.Email,
			Progress:    e.Progress,
			CompletedAt: e.CompletedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completed students fetched successfully!", fiber.Map{
		"completed_students": result,
		"total":              len(result),
	})
}

// AdminGetStudentProgress gets detailed progress for a student across all
// their courses, recomputed from the progress records
func AdminGetStudentProgress(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	targetUserID := c.Locals("targetUserID").(int)

	var targetUser models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetUserID, false).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	entries, err := store.GetProgress(database.Database.Db, uint(targetUserID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	type CourseProgress struct {
		CourseID         string     `json:"course_id"`
		CourseName       string     `json:"course_name"`
		CourseSlug       string     `json:"course_slug"`
		Percent          int        `json:"percent"`
		CompletedLessons int        `json:"completed_lessons"`
		TotalLessons     int        `json:"total_lessons"`
		IsComplete       bool       `json:"is_complete"`
		CompletedAt      *time.Time `json:"completed_at"`
	}

	courseProgress := make([]CourseProgress, 0, len(entries))
	for _, entry := range entries {
		var courseRow courseModels.Course
		if err := database.Database.Db.Where("public_id = ?", entry.CourseID).First(&courseRow).Error; err != nil {
			continue
		}
		catalog, err := store.LoadCatalog(database.Database.Db, courseRow.ID)
		if err != nil {
			continue
		}
		published := progress.PublishedLessonIDs(catalog)
		completed := 0
		for id := range published {
			if entry.HasLesson(id) {
				completed++
			}
		}
		courseProgress = append(courseProgress, CourseProgress{
			CourseID:         entry.CourseID,
			CourseName:       courseRow.Title,
			CourseSlug:       courseRow.Slug,
			Percent:          progress.EntryPercent(entry, catalog),
			CompletedLessons: completed,
			TotalLessons:     len(published),
			IsComplete:       progress.IsCourseComplete(entry, catalog),
			CompletedAt:      entry.CompletedAt,
		})
	}

	// Quiz attempt summary
	var attempts []courseModels.QuizAttempt
	database.Database.Db.Where("user_id = ? AND is_deleted = ?", targetUserID, false).Find(&attempts)

	passedAttempts := 0
	for _, a := range attempts {
		if a.Percentage >= progress.PassThreshold {
			passedAttempts++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student progress fetched successfully!", fiber.Map{
		"student": fiber.Map{
			"id":    targetUser.ID,
			"name":  targetUser.Name,
			"email": targetUser.Email,
		},
		"course_progress": courseProgress,
		"quiz_summary": fiber.Map{
			"total_attempts":  len(attempts),
			"passed_attempts": passedAttempts,
		},
	})
}

// AdminGetPendingCertificates gets pending certificate requests
func AdminGetPendingCertificates(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	reqData, _ := c.Locals("validatedCertificateQuery").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var total int64
	database.Database.Db.Model(&courseModels.CertificateRequest{}).Where("status = ? AND is_deleted = ?", "PENDING", false).Count(&total)

	type RequestWithDetails struct {
		courseModels.CertificateRequest
		UserName   string `json:"user_name"`
		UserEmail  string `json:"user_email"`
		CourseName string `json:"course_name"`
	}

	var requests []courseModels.CertificateRequest
	if err := database.Database.Db.Where("status = ? AND is_deleted = ?", "PENDING", false).
		Offset(offset).Limit(limit).Order("requested_at asc").Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	result := make([]RequestWithDetails, len(requests))
	for i, r := range requests {
		var reqUser models.User
		var course courseModels.Course
		database.Database.Db.Where("id = ?", r.UserID).First(&reqUser)
		database.Database.Db.Where("id = ?", r.CourseID).First(&course)
		result[i] = RequestWithDetails{
			CertificateRequest: r,
			UserName:           reqUser.Name,
			UserEmail:          reqUser.Email,
			CourseName:         course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending certificate requests fetched successfully!", fiber.Map{
		"requests": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminGetIssuedCertificates gets all issued certificates
func AdminGetIssuedCertificates(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	reqData, _ := c.Locals("validatedCertificateQuery").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 10
	if reqData != nil && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	var total int64
	database.Database.Db.Model(&courseModels.Certificate{}).Where("is_deleted = ?", false).Count(&total)

	type CertificateWithDetails struct {
		courseModels.Certificate
		UserName   string `json:"user_name"`
		UserEmail  string `json:"user_email"`
		CourseName string `json:"course_name"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Offset(offset).Limit(limit).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithDetails, len(certificates))
	for i, cert := range certificates {
		var certUser models.User
		var course courseModels.Course
		database.Database.Db.Select("name, email").Where("id = ?", cert.UserID).First(&certUser)
		database.Database.Db.Select("title").Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithDetails{
			Certificate: cert,
			UserName:    certUser.Name,
			UserEmail:   certUser.Email,
			CourseName:  course.Title,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Issued certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AdminApproveCertificate approves a certificate request and issues the
// certificate in one transaction
func AdminApproveCertificate(c *fiber.Ctx) error {
	user, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request is not pending!", nil)
	}

	tx := database.Database.Db.Begin()

	now := time.Now()
	adminID := user.ID
	request.Status = "APPROVED"
	request.ApprovedAt = &now
	request.ApprovedBy = &adminID

	if err := tx.Save(&request).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve request!", nil)
	}

	certNumber := fmt.Sprintf("CERT-%s", uuid.NewString())

	certificate := courseModels.Certificate{
		UserID:            request.UserID,
		CourseID:          request.CourseID,
		CertificateNumber: certNumber,
		IssuedAt:          now,
	}

	if err := tx.Create(&certificate).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	tx.Commit()

	var reqUser models.User
	var course courseModels.Course
	database.Database.Db.Where("id = ?", request.UserID).First(&reqUser)
	database.Database.Db.Where("id = ?", request.CourseID).First(&course)

	go utils.SendCertificateEmail(reqUser.Email, reqUser.Name, course.Title, certNumber)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate approved and generated successfully!", certificate)
}

// AdminRejectCertificate rejects a certificate request
func AdminRejectCertificate(c *fiber.Ctx) error {
	_, resp, ok := requireAdmin(c)
	if !ok {
		return resp
	}

	requestID := c.Locals("requestID").(int)

	var request courseModels.CertificateRequest
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", requestID, false).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate request not found!", nil)
	}

	if request.Status != "PENDING" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Request is not pending!", nil)
	}

	reqData, _ := c.Locals("validatedCertificateReject").(*struct {
		Reason string `json:"reason"`
	})

	request.Status = "REJECTED"
	if reqData != nil {
		request.RejectionReason = reqData.Reason
	}

	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reject request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate request rejected!", request)
}
