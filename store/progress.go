package store

import (
	"encoding/json"
	"fmt"

	courseModels "lms/models/course"
	"lms/progress"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Progress Record Store: one UserProgress row per (user, course). GetProgress
// returns entries ordered by row creation so positions are stable; UpsertProgress
// replaces the course's row in place or appends a new one. Last writer wins:
// concurrent updates for the same (user, course) are not serialized.

// GetProgress returns all of a user's progress entries
func GetProgress(db *gorm.DB, userID uint) ([]progress.Entry, error) {
	var rows []courseModels.UserProgress
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]progress.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := entryFromRow(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetEntry returns the user's entry for one course, reporting whether it exists
func GetEntry(db *gorm.DB, userID, courseID uint) (progress.Entry, bool, error) {
	var row courseModels.UserProgress
	err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return progress.Entry{}, false, nil
	}
	if err != nil {
		return progress.Entry{}, false, err
	}
	entry, err := entryFromRow(row)
	if err != nil {
		return progress.Entry{}, false, err
	}
	return entry, true, nil
}

// UpsertProgress writes the entry back: the existing row for the course is
// updated in place (other rows keep their positions), otherwise a new row is
// appended.
func UpsertProgress(db *gorm.DB, userID, courseID uint, entry progress.Entry) error {
	completedLessons, err := json.Marshal(entry.CompletedLessons)
	if err != nil {
		return fmt.Errorf("failed to encode completed lessons: %v", err)
	}
	completedProjects, err := json.Marshal(entry.CompletedProjects)
	if err != nil {
		return fmt.Errorf("failed to encode completed projects: %v", err)
	}

	var row courseModels.UserProgress
	err = db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&row).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}

	row.UserID = userID
	row.CourseID = courseID
	row.CoursePublicID = entry.CourseID
	row.ModulePublicID = entry.ModuleID
	row.LessonPublicID = entry.LessonID
	row.CompletedLessons = datatypes.JSON(completedLessons)
	row.CompletedProjects = datatypes.JSON(completedProjects)
	row.TotalProgress = entry.TotalProgress
	row.CompletedAt = entry.CompletedAt

	return db.Save(&row).Error
}

func entryFromRow(row courseModels.UserProgress) (progress.Entry, error) {
	entry := progress.Entry{
		CourseID:          row.CoursePublicID,
		ModuleID:          row.ModulePublicID,
		LessonID:          row.LessonPublicID,
		CompletedLessons:  []string{},
		CompletedProjects: []string{},
		TotalProgress:     row.TotalProgress,
		CompletedAt:       row.CompletedAt,
	}
	if len(row.CompletedLessons) > 0 {
		if err := json.Unmarshal(row.CompletedLessons, &entry.CompletedLessons); err != nil {
			return entry, fmt.Errorf("failed to decode completed lessons: %v", err)
		}
	}
	if len(row.CompletedProjects) > 0 {
		if err := json.Unmarshal(row.CompletedProjects, &entry.CompletedProjects); err != nil {
			return entry, fmt.Errorf("failed to decode completed projects: %v", err)
		}
	}
	return entry, nil
}
