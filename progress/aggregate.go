package progress

// Pure aggregation over a progress entry and a catalog snapshot. Lesson ids in the
// entry that no longer exist in the catalog are ignored: they count toward nothing
// and are never purged here.

// CoursePercent computes the completion percentage for a course from a user's
// progress entries. Returns 0 when no entry exists for the course or when the
// course has no published lessons.
func CoursePercent(entries []Entry, courseID string, course Course) int {
	entry, ok := EntryForCourse(entries, courseID)
	if !ok {
		return 0
	}
	return EntryPercent(entry, course)
}

// EntryPercent computes the completion percentage for a single entry
func EntryPercent(entry Entry, course Course) int {
	catalog := PublishedLessonIDs(course)
	if len(catalog) == 0 {
		return 0
	}
	completed := 0
	for id := range catalog {
		if entry.HasLesson(id) {
			completed++
		}
	}
	return 100 * completed / len(catalog)
}

// IsLessonComplete checks whether a lesson is in the entry's completed set
func IsLessonComplete(entry Entry, lessonID string) bool {
	return entry.HasLesson(lessonID)
}

// IsCourseComplete reports whether every published lesson of the course is
// complete. A course with zero published lessons is never complete.
func IsCourseComplete(entry Entry, course Course) bool {
	catalog := PublishedLessonIDs(course)
	if len(catalog) == 0 {
		return false
	}
	for id := range catalog {
		if !entry.HasLesson(id) {
			return false
		}
	}
	return true
}

// CanAccessLesson gates linear progression through the flattened sequence: index 0
// is always accessible, index i is accessible only once lesson i-1 is complete.
// Out-of-range indexes are not accessible.
func CanAccessLesson(entry Entry, course Course, index int) bool {
	if index == 0 {
		return true
	}
	flat := Flatten(course)
	if index < 0 || index >= len(flat) {
		return false
	}
	return entry.HasLesson(flat[index-1].ID)
}

// NextIncompleteLesson returns the first lesson in the flattened sequence not yet
// completed, or false when the course is fully complete.
func NextIncompleteLesson(entry Entry, course Course) (FlatLesson, bool) {
	for _, fl := range Flatten(course) {
		if !entry.HasLesson(fl.ID) {
			return fl, true
		}
	}
	return FlatLesson{}, false
}
