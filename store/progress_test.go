package store

import (
	"testing"
	"time"

	courseModels "lms/models/course"
	"lms/progress"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Lesson{},
		&courseModels.UserProgress{},
	)
	require.NoError(t, err)
	return db
}

func TestUpsertProgress_RoundTrip(t *testing.T) {
	db := setupDb(t)

	completedAt := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	entry := progress.Entry{
		CourseID:          "course-pub-1",
		ModuleID:          "module-pub-1",
		LessonID:          "lesson-pub-2",
		CompletedLessons:  []string{"lesson-pub-1", "lesson-pub-2"},
		CompletedProjects: []string{"lesson-pub-2"},
		TotalProgress:     66,
		CompletedAt:       &completedAt,
	}

	require.NoError(t, UpsertProgress(db, 1, 10, entry))

	got, found, err := GetEntry(db, 1, 10)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry.CourseID, got.CourseID)
	assert.Equal(t, entry.ModuleID, got.ModuleID)
	assert.Equal(t, entry.LessonID, got.LessonID)
	assert.Equal(t, entry.CompletedLessons, got.CompletedLessons)
	assert.Equal(t, entry.CompletedProjects, got.CompletedProjects)
	assert.Equal(t, 66, got.TotalProgress)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, completedAt.Equal(*got.CompletedAt))
}

func TestUpsertProgress_ReplacesInPlace(t *testing.T) {
	db := setupDb(t)

	first := progress.NewEntry("course-a")
	first.CompletedLessons = []string{"a1"}
	require.NoError(t, UpsertProgress(db, 1, 10, first))

	second := progress.NewEntry("course-b")
	second.CompletedLessons = []string{"b1"}
	require.NoError(t, UpsertProgress(db, 1, 20, second))

	// updating the first course must not move it behind the second
	first.CompletedLessons = []string{"a1", "a2"}
	first.TotalProgress = 50
	require.NoError(t, UpsertProgress(db, 1, 10, first))

	entries, err := GetProgress(db, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "course-a", entries[0].CourseID)
	assert.Equal(t, []string{"a1", "a2"}, entries[0].CompletedLessons)
	assert.Equal(t, 50, entries[0].TotalProgress)
	assert.Equal(t, "course-b", entries[1].CourseID)

	// still exactly one row per (user, course)
	var count int64
	db.Model(&courseModels.UserProgress{}).Where("user_id = ?", 1).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestGetEntry_Missing(t *testing.T) {
	db := setupDb(t)

	_, found, err := GetEntry(db, 1, 99)
	require.NoError(t, err)
	assert.False(t, found)

	entries, err := GetProgress(db, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetProgress_ScopedToUser(t *testing.T) {
	db := setupDb(t)

	require.NoError(t, UpsertProgress(db, 1, 10, progress.NewEntry("course-a")))
	require.NoError(t, UpsertProgress(db, 2, 10, progress.NewEntry("course-a")))

	entries, err := GetProgress(db, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLoadCatalog(t *testing.T) {
	db := setupDb(t)

	course := courseModels.Course{PublicID: "c-pub", Slug: "go-basics", Title: "Go Basics", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	// modules inserted out of order; snapshot must come back sorted by order_index
	m2 := courseModels.Module{PublicID: "m2-pub", CourseID: course.ID, Slug: "part-two", Title: "Part Two", OrderIndex: 2, IsPublished: true}
	m1 := courseModels.Module{PublicID: "m1-pub", CourseID: course.ID, Slug: "part-one", Title: "Part One", OrderIndex: 1, IsPublished: true}
	require.NoError(t, db.Create(&m2).Error)
	require.NoError(t, db.Create(&m1).Error)

	l1 := courseModels.Lesson{PublicID: "l1-pub", CourseID: course.ID, ModuleID: m1.ID, Slug: "hello", Title: "Hello", OrderIndex: 1, LessonType: "lesson", IsPublished: true}
	l2 := courseModels.Lesson{PublicID: "l2-pub", CourseID: course.ID, ModuleID: m2.ID, Slug: "project", Title: "Project", OrderIndex: 1, LessonType: "project", IsPublished: false}
	require.NoError(t, db.Create(&l1).Error)
	require.NoError(t, db.Create(&l2).Error)

	snapshot, err := LoadCatalog(db, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "c-pub", snapshot.ID)
	assert.Equal(t, "go-basics", snapshot.Slug)
	require.Len(t, snapshot.Modules, 2)
	assert.Equal(t, "m1-pub", snapshot.Modules[0].ID)
	assert.Equal(t, "m2-pub", snapshot.Modules[1].ID)
	require.Len(t, snapshot.Modules[0].Lessons, 1)
	assert.Equal(t, "l1-pub", snapshot.Modules[0].Lessons[0].ID)
	assert.Equal(t, "project", snapshot.Modules[1].Lessons[0].Type)
	assert.False(t, snapshot.Modules[1].Lessons[0].IsPublished)

	// deleted course is not a catalog
	_, err = LoadCatalog(db, 9999)
	assert.Error(t, err)
}
