package progress

import "time"

// Entry is one user's progress record for one course. CompletedLessons and
// CompletedProjects are stored as lists but carry set semantics: inserts are
// idempotent and duplicates never accumulate. A completed lesson of type project
// appears in both lists.
type Entry struct {
	CourseID          string     `json:"course_id"`
	ModuleID          string     `json:"module_id"` // last visited, not a completion marker
	LessonID          string     `json:"lesson_id"` // last visited, not a completion marker
	CompletedLessons  []string   `json:"completed_lessons"`
	CompletedProjects []string   `json:"completed_projects"`
	TotalProgress     int        `json:"total_progress"` // cached percent, 0-100
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// NewEntry returns an empty progress entry for a course
func NewEntry(courseID string) Entry {
	return Entry{
		CourseID:          courseID,
		CompletedLessons:  []string{},
		CompletedProjects: []string{},
	}
}

// HasLesson reports whether the lesson is marked complete
func (e Entry) HasLesson(lessonID string) bool {
	return contains(e.CompletedLessons, lessonID)
}

// EntryForCourse finds the entry for a course in a user's progress list
func EntryForCourse(entries []Entry, courseID string) (Entry, bool) {
	for _, e := range entries {
		if e.CourseID == courseID {
			return e, true
		}
	}
	return Entry{}, false
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// addToSet appends id only if absent
func addToSet(list []string, id string) []string {
	if contains(list, id) {
		return list
	}
	return append(list, id)
}

// removeFromSet drops id, preserving the order of the rest. The result is a
// fresh slice so the input list is left intact for callers still holding it.
func removeFromSet(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
