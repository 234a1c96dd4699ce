package progress

// LessonRef identifies a lesson for navigation links
type LessonRef struct {
	CourseID   string `json:"course_id"`
	CourseSlug string `json:"course_slug"`
	ModuleID   string `json:"module_id"`
	ModuleSlug string `json:"module_slug"`
	LessonID   string `json:"lesson_id"`
	LessonSlug string `json:"lesson_slug"`
	Title      string `json:"title"`
}

// Navigation holds the previous/next pointers around a lesson. Either side is nil
// at the edges of the course.
type Navigation struct {
	Previous *LessonRef `json:"previous,omitempty"`
	Next     *LessonRef `json:"next,omitempty"`
}

// NavigationFor computes previous/next lessons around currentLessonID in the
// flattened sequence, crossing module boundaries transparently. Completion state
// plays no part here.
func NavigationFor(course Course, currentLessonID string) (Navigation, error) {
	flat := Flatten(course)

	index := -1
	for i, fl := range flat {
		if fl.ID == currentLessonID {
			index = i
			break
		}
	}
	if index < 0 {
		return Navigation{}, ErrLessonNotFound
	}

	var nav Navigation
	if index > 0 {
		nav.Previous = lessonRef(course, flat[index-1])
	}
	if index < len(flat)-1 {
		nav.Next = lessonRef(course, flat[index+1])
	}
	return nav, nil
}

func lessonRef(course Course, fl FlatLesson) *LessonRef {
	return &LessonRef{
		CourseID:   course.ID,
		CourseSlug: course.Slug,
		ModuleID:   fl.ModuleID,
		ModuleSlug: fl.ModuleSlug,
		LessonID:   fl.ID,
		LessonSlug: fl.Slug,
		Title:      fl.Title,
	}
}
