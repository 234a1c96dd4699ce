package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func TestCompleteLesson(t *testing.T) {
	course := testCourse()

	t.Run("creates entry lazily", func(t *testing.T) {
		entry, err := CompleteLesson(Entry{}, course, "m1", "l1", now)
		require.NoError(t, err)
		assert.Equal(t, "c1", entry.CourseID)
		assert.Equal(t, []string{"l1"}, entry.CompletedLessons)
		assert.Equal(t, "m1", entry.ModuleID)
		assert.Equal(t, "l1", entry.LessonID)
		assert.Equal(t, 33, entry.TotalProgress)
		assert.Nil(t, entry.CompletedAt)
	})

	t.Run("idempotent", func(t *testing.T) {
		entry, err := CompleteLesson(NewEntry("c1"), course, "m1", "l1", now)
		require.NoError(t, err)
		entry, err = CompleteLesson(entry, course, "m1", "l1", now)
		require.NoError(t, err)
		assert.Len(t, entry.CompletedLessons, 1)
	})

	t.Run("project lands in both sets", func(t *testing.T) {
		entry, err := CompleteLesson(NewEntry("c1"), course, "m1", "l2", now)
		require.NoError(t, err)
		assert.Contains(t, entry.CompletedLessons, "l2")
		assert.Contains(t, entry.CompletedProjects, "l2")
	})

	t.Run("plain lesson stays out of projects", func(t *testing.T) {
		entry, err := CompleteLesson(NewEntry("c1"), course, "m1", "l1", now)
		require.NoError(t, err)
		assert.Empty(t, entry.CompletedProjects)
	})

	t.Run("rejects unknown module", func(t *testing.T) {
		_, err := CompleteLesson(NewEntry("c1"), course, "nope", "l1", now)
		assert.ErrorIs(t, err, ErrModuleNotFound)
	})

	t.Run("rejects lesson outside module", func(t *testing.T) {
		_, err := CompleteLesson(NewEntry("c1"), course, "m1", "l3", now)
		assert.ErrorIs(t, err, ErrLessonNotFound)
	})

	t.Run("rejects entry for another course", func(t *testing.T) {
		_, err := CompleteLesson(NewEntry("other"), course, "m1", "l1", now)
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestCompleteLesson_ProgressScenario(t *testing.T) {
	course := testCourse()

	entry, err := CompleteLesson(NewEntry("c1"), course, "m1", "l1", now)
	require.NoError(t, err)
	assert.Equal(t, 33, entry.TotalProgress)
	assert.Nil(t, entry.CompletedAt)

	entry, err = CompleteLesson(entry, course, "m1", "l2", now)
	require.NoError(t, err)
	assert.Equal(t, 66, entry.TotalProgress)
	assert.Nil(t, entry.CompletedAt)

	// CompletedAt is set on this exact transition, not earlier
	entry, err = CompleteLesson(entry, course, "m2", "l3", now)
	require.NoError(t, err)
	assert.Equal(t, 100, entry.TotalProgress)
	require.NotNil(t, entry.CompletedAt)
	assert.Equal(t, now, *entry.CompletedAt)
}

func TestCompleteLesson_CompletedAtNeverRegresses(t *testing.T) {
	course := testCourse()

	entry := entryWith("c1", "l1", "l2")
	entry, err := CompleteLesson(entry, course, "m2", "l3", now)
	require.NoError(t, err)
	require.NotNil(t, entry.CompletedAt)
	first := *entry.CompletedAt

	later := now.Add(48 * time.Hour)
	entry, err = CompleteLesson(entry, course, "m1", "l1", later)
	require.NoError(t, err)
	assert.Equal(t, first, *entry.CompletedAt)
}

func TestUncompleteLesson(t *testing.T) {
	course := testCourse()

	entry := entryWith("c1", "l1", "l2", "l3")
	entry.CompletedProjects = []string{"l2"}
	entry, err := CompleteLesson(entry, course, "m2", "l3", now)
	require.NoError(t, err)
	require.NotNil(t, entry.CompletedAt)

	entry, err = UncompleteLesson(entry, course, "m1", "l2")
	require.NoError(t, err)
	assert.NotContains(t, entry.CompletedLessons, "l2")
	assert.NotContains(t, entry.CompletedProjects, "l2")
	assert.Equal(t, 66, entry.TotalProgress)
	assert.Equal(t, "m1", entry.ModuleID)
	assert.Equal(t, "l2", entry.LessonID)

	// CompletedAt stays set even below 100%
	assert.NotNil(t, entry.CompletedAt)

	// repeated undo never clears it either
	entry, err = UncompleteLesson(entry, course, "m1", "l1")
	require.NoError(t, err)
	entry, err = UncompleteLesson(entry, course, "m2", "l3")
	require.NoError(t, err)
	assert.Equal(t, 0, entry.TotalProgress)
	assert.NotNil(t, entry.CompletedAt)
}

func TestUncompleteLesson_LeavesInputEntryIntact(t *testing.T) {
	course := testCourse()

	before := entryWith("c1", "l1", "l2", "l3")
	before.CompletedProjects = []string{"l2"}

	after, err := UncompleteLesson(before, course, "m1", "l1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l2", "l3"}, after.CompletedLessons)

	// the caller's pre-undo view must survive the mutation untouched
	assert.Equal(t, []string{"l1", "l2", "l3"}, before.CompletedLessons)
	assert.Equal(t, []string{"l2"}, before.CompletedProjects)

	_, err = UncompleteLesson(before, course, "m1", "l2")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2", "l3"}, before.CompletedLessons)
	assert.Equal(t, []string{"l2"}, before.CompletedProjects)
}

func TestUncompleteLesson_RejectsUnknownContent(t *testing.T) {
	course := testCourse()
	entry := entryWith("c1", "l1")

	_, err := UncompleteLesson(entry, course, "nope", "l1")
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = UncompleteLesson(entry, course, "m1", "nope")
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestScorePercentage(t *testing.T) {
	assert.Equal(t, 70, ScorePercentage(7, 10))
	assert.Equal(t, 69, ScorePercentage(69, 100))
	assert.Equal(t, 67, ScorePercentage(2, 3))
	assert.Equal(t, 100, ScorePercentage(5, 5))
	assert.Equal(t, 0, ScorePercentage(0, 10))
	assert.Equal(t, 0, ScorePercentage(3, 0))
}

func TestApplyQuizAttempt(t *testing.T) {
	course := testCourse()

	attempt := func(pct int) QuizAttempt {
		return QuizAttempt{Score: pct, TotalQuestions: 100, Percentage: pct, CompletedAt: now}
	}

	t.Run("below threshold does not complete", func(t *testing.T) {
		entry, completed, err := ApplyQuizAttempt(NewEntry("c1"), course, "l1", attempt(69), now)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Empty(t, entry.CompletedLessons)
	})

	t.Run("threshold completes the lesson", func(t *testing.T) {
		entry, completed, err := ApplyQuizAttempt(NewEntry("c1"), course, "l1", attempt(70), now)
		require.NoError(t, err)
		assert.True(t, completed)
		assert.Contains(t, entry.CompletedLessons, "l1")
		assert.Equal(t, "m1", entry.ModuleID)
	})

	t.Run("later low score never un-completes", func(t *testing.T) {
		entry, _, err := ApplyQuizAttempt(NewEntry("c1"), course, "l1", attempt(70), now)
		require.NoError(t, err)

		entry, completed, err := ApplyQuizAttempt(entry, course, "l1", attempt(10), now)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Contains(t, entry.CompletedLessons, "l1")
	})

	t.Run("pass on an already complete lesson reports false", func(t *testing.T) {
		entry := entryWith("c1", "l1")
		entry, completed, err := ApplyQuizAttempt(entry, course, "l1", attempt(90), now)
		require.NoError(t, err)
		assert.False(t, completed)
		assert.Len(t, entry.CompletedLessons, 1)
	})

	t.Run("unknown lesson rejected", func(t *testing.T) {
		_, _, err := ApplyQuizAttempt(NewEntry("c1"), course, "nope", attempt(90), now)
		assert.ErrorIs(t, err, ErrLessonNotFound)
	})
}
