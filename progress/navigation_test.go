package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	course := testCourse()

	flat := Flatten(course)
	require.Len(t, flat, 3)
	assert.Equal(t, "l1", flat[0].ID)
	assert.Equal(t, "l2", flat[1].ID)
	assert.Equal(t, "l3", flat[2].ID)
	assert.Equal(t, "m2", flat[2].ModuleID)

	// restartable: same snapshot, same sequence
	again := Flatten(course)
	assert.Equal(t, flat, again)
}

func TestFlatten_SkipsUnpublished(t *testing.T) {
	course := testCourse()
	course.Modules[0].Lessons[1].IsPublished = false

	flat := Flatten(course)
	require.Len(t, flat, 2)
	assert.Equal(t, "l1", flat[0].ID)
	assert.Equal(t, "l3", flat[1].ID)

	course.Modules[1].IsPublished = false
	flat = Flatten(course)
	require.Len(t, flat, 1)
	assert.Equal(t, "l1", flat[0].ID)
}

func TestFlatten_StableOrderTies(t *testing.T) {
	course := Course{
		ID: "c1", IsPublished: true,
		Modules: []Module{
			{
				ID: "m1", Order: 1, IsPublished: true,
				Lessons: []Lesson{
					{ID: "a", Order: 5, IsPublished: true},
					{ID: "b", Order: 5, IsPublished: true},
					{ID: "c", Order: 1, IsPublished: true},
				},
			},
		},
	}

	flat := Flatten(course)
	require.Len(t, flat, 3)
	assert.Equal(t, "c", flat[0].ID)
	// equal order keeps insertion order
	assert.Equal(t, "a", flat[1].ID)
	assert.Equal(t, "b", flat[2].ID)
}

func TestNavigationFor(t *testing.T) {
	course := testCourse() // M1: l1, l2 / M2: l3

	t.Run("global first lesson", func(t *testing.T) {
		nav, err := NavigationFor(course, "l1")
		require.NoError(t, err)
		assert.Nil(t, nav.Previous)
		require.NotNil(t, nav.Next)
		assert.Equal(t, "l2", nav.Next.LessonID)
	})

	t.Run("middle lesson crosses module boundary forward", func(t *testing.T) {
		nav, err := NavigationFor(course, "l2")
		require.NoError(t, err)
		require.NotNil(t, nav.Previous)
		assert.Equal(t, "l1", nav.Previous.LessonID)
		require.NotNil(t, nav.Next)
		assert.Equal(t, "l3", nav.Next.LessonID)
		assert.Equal(t, "m2", nav.Next.ModuleID)
	})

	t.Run("global last lesson crosses module boundary backward", func(t *testing.T) {
		nav, err := NavigationFor(course, "l3")
		require.NoError(t, err)
		require.NotNil(t, nav.Previous)
		assert.Equal(t, "l2", nav.Previous.LessonID)
		assert.Equal(t, "m1", nav.Previous.ModuleID)
		assert.Nil(t, nav.Next)
	})

	t.Run("unknown lesson", func(t *testing.T) {
		_, err := NavigationFor(course, "nope")
		assert.ErrorIs(t, err, ErrLessonNotFound)
	})

	t.Run("ref carries slugs and title", func(t *testing.T) {
		nav, err := NavigationFor(course, "l1")
		require.NoError(t, err)
		assert.Equal(t, "go-basics", nav.Next.CourseSlug)
		assert.Equal(t, "getting-started", nav.Next.ModuleSlug)
		assert.Equal(t, "first-project", nav.Next.LessonSlug)
		assert.Equal(t, "First Project", nav.Next.Title)
	})
}
