package store

import (
	courseModels "lms/models/course"
	"lms/progress"

	"gorm.io/gorm"
)

// LoadCatalog builds the read-only catalog snapshot the progress core works on:
// the course with all of its modules and lessons (published or not, the core
// filters), ordered by order_index with ids breaking ties.
func LoadCatalog(db *gorm.DB, courseID uint) (progress.Course, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return progress.Course{}, err
	}

	var modules []courseModels.Module
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").Find(&modules).Error; err != nil {
		return progress.Course{}, err
	}

	var lessons []courseModels.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc, id asc").Find(&lessons).Error; err != nil {
		return progress.Course{}, err
	}

	lessonsByModule := make(map[uint][]progress.Lesson)
	for _, lesson := range lessons {
		lessonsByModule[lesson.ModuleID] = append(lessonsByModule[lesson.ModuleID], progress.Lesson{
			ID:          lesson.PublicID,
			Slug:        lesson.Slug,
			Title:       lesson.Title,
			Order:       lesson.OrderIndex,
			Type:        lesson.LessonType,
			IsPublished: lesson.IsPublished,
		})
	}

	snapshot := progress.Course{
		ID:          course.PublicID,
		Slug:        course.Slug,
		Title:       course.Title,
		IsPublished: course.IsPublished,
	}
	for _, mod := range modules {
		snapshot.Modules = append(snapshot.Modules, progress.Module{
			ID:          mod.PublicID,
			Slug:        mod.Slug,
			Title:       mod.Title,
			Order:       mod.OrderIndex,
			IsPublished: mod.IsPublished,
			Lessons:     lessonsByModule[mod.ID],
		})
	}
	return snapshot, nil
}
