package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testCourse builds a published 2-module course: M1 [L1 lesson, L2 project], M2 [L3 lesson]
func testCourse() Course {
	return Course{
		ID:          "c1",
		Slug:        "go-basics",
		Title:       "Go Basics",
		IsPublished: true,
		Modules: []Module{
			{
				ID: "m1", Slug: "getting-started", Title: "Getting Started", Order: 1, IsPublished: true,
				Lessons: []Lesson{
					{ID: "l1", Slug: "hello", Title: "Hello", Order: 1, Type: TypeLesson, IsPublished: true},
					{ID: "l2", Slug: "first-project", Title: "First Project", Order: 2, Type: TypeProject, IsPublished: true},
				},
			},
			{
				ID: "m2", Slug: "going-further", Title: "Going Further", Order: 2, IsPublished: true,
				Lessons: []Lesson{
					{ID: "l3", Slug: "interfaces", Title: "Interfaces", Order: 1, Type: TypeLesson, IsPublished: true},
				},
			},
		},
	}
}

func entryWith(courseID string, lessons ...string) Entry {
	e := NewEntry(courseID)
	e.CompletedLessons = append(e.CompletedLessons, lessons...)
	return e
}

func TestCoursePercent(t *testing.T) {
	course := testCourse()

	t.Run("no entry for course", func(t *testing.T) {
		assert.Equal(t, 0, CoursePercent(nil, "c1", course))
		assert.Equal(t, 0, CoursePercent([]Entry{entryWith("other")}, "c1", course))
	})

	t.Run("partial completion", func(t *testing.T) {
		entries := []Entry{entryWith("c1", "l1")}
		assert.Equal(t, 33, CoursePercent(entries, "c1", course))

		entries = []Entry{entryWith("c1", "l1", "l2")}
		assert.Equal(t, 66, CoursePercent(entries, "c1", course))
	})

	t.Run("full completion", func(t *testing.T) {
		entries := []Entry{entryWith("c1", "l1", "l2", "l3")}
		assert.Equal(t, 100, CoursePercent(entries, "c1", course))
		assert.True(t, IsCourseComplete(entries[0], course))
	})

	t.Run("zero published lessons", func(t *testing.T) {
		empty := Course{ID: "c2", IsPublished: true}
		entry := entryWith("c2", "ghost")
		assert.Equal(t, 0, EntryPercent(entry, empty))
		assert.False(t, IsCourseComplete(entry, empty))
	})
}

func TestCoursePercent_OrphanLessonIDs(t *testing.T) {
	course := testCourse()

	// ids of lessons deleted from the catalog stay in the set but count toward nothing
	entry := entryWith("c1", "l1", "l2", "l3", "deleted-1", "deleted-2")
	assert.Equal(t, 100, EntryPercent(entry, course))
	assert.True(t, IsCourseComplete(entry, course))
	assert.Contains(t, entry.CompletedLessons, "deleted-1")
}

func TestCoursePercent_UnpublishedLessonsExcluded(t *testing.T) {
	course := testCourse()
	course.Modules[1].Lessons[0].IsPublished = false

	entry := entryWith("c1", "l1", "l2")
	assert.Equal(t, 100, EntryPercent(entry, course))
	assert.True(t, IsCourseComplete(entry, course))
}

func TestIsLessonComplete(t *testing.T) {
	entry := entryWith("c1", "l1")
	assert.True(t, IsLessonComplete(entry, "l1"))
	assert.False(t, IsLessonComplete(entry, "l2"))
}

func TestCanAccessLesson(t *testing.T) {
	course := testCourse()
	flat := Flatten(course)

	entry := entryWith("c1", "l1")

	// index 0 is always accessible, even with no progress at all
	assert.True(t, CanAccessLesson(NewEntry("c1"), course, 0))

	// index i is accessible iff flat[i-1] is complete
	for i := 1; i < len(flat); i++ {
		assert.Equal(t, entry.HasLesson(flat[i-1].ID), CanAccessLesson(entry, course, i), "index %d", i)
	}

	assert.False(t, CanAccessLesson(entry, course, len(flat)))
	assert.False(t, CanAccessLesson(entry, course, -1))
}

func TestNextIncompleteLesson(t *testing.T) {
	course := testCourse()

	next, ok := NextIncompleteLesson(NewEntry("c1"), course)
	assert.True(t, ok)
	assert.Equal(t, "l1", next.ID)

	next, ok = NextIncompleteLesson(entryWith("c1", "l1"), course)
	assert.True(t, ok)
	assert.Equal(t, "l2", next.ID)

	// skips ahead over completed lessons, module boundary included
	next, ok = NextIncompleteLesson(entryWith("c1", "l1", "l2"), course)
	assert.True(t, ok)
	assert.Equal(t, "l3", next.ID)
	assert.Equal(t, "m2", next.ModuleID)

	_, ok = NextIncompleteLesson(entryWith("c1", "l1", "l2", "l3"), course)
	assert.False(t, ok)
}
