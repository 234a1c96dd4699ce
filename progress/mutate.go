package progress

import (
	"errors"
	"math"
	"time"
)

// PassThreshold is the minimum quiz percentage that completes a lesson
const PassThreshold = 70

var (
	ErrCourseNotFound = errors.New("course not found in catalog")
	ErrModuleNotFound = errors.New("module not found in catalog")
	ErrLessonNotFound = errors.New("lesson not found in catalog")
)

// CompleteLesson marks a lesson complete on the entry and recomputes derived
// fields. The write is rejected when the module or lesson is missing from the
// catalog. Completing an already-complete lesson is a no-op on the sets.
// CompletedAt is set the first time the course reaches full completion and is
// never cleared afterwards.
func CompleteLesson(entry Entry, course Course, moduleID, lessonID string, now time.Time) (Entry, error) {
	if entry.CourseID == "" {
		entry = NewEntry(course.ID)
	}
	if entry.CourseID != course.ID {
		return entry, ErrCourseNotFound
	}

	mod, ok := FindModule(course, moduleID)
	if !ok {
		return entry, ErrModuleNotFound
	}
	lesson, ok := findLessonInModule(mod, lessonID)
	if !ok {
		return entry, ErrLessonNotFound
	}

	entry.ModuleID = moduleID
	entry.LessonID = lessonID
	entry.CompletedLessons = addToSet(entry.CompletedLessons, lessonID)
	if lesson.Type == TypeProject {
		entry.CompletedProjects = addToSet(entry.CompletedProjects, lessonID)
	}

	entry.TotalProgress = EntryPercent(entry, course)
	if entry.CompletedAt == nil && IsCourseComplete(entry, course) {
		completedAt := now
		entry.CompletedAt = &completedAt
	}
	return entry, nil
}

// UncompleteLesson is the explicit undo: it removes the lesson from both completed
// sets, updates the last-visited pointers and recomputes the percentage.
// CompletedAt deliberately stays set even when the entry drops below 100%.
func UncompleteLesson(entry Entry, course Course, moduleID, lessonID string) (Entry, error) {
	if entry.CourseID != course.ID {
		return entry, ErrCourseNotFound
	}

	mod, ok := FindModule(course, moduleID)
	if !ok {
		return entry, ErrModuleNotFound
	}
	if _, ok := findLessonInModule(mod, lessonID); !ok {
		return entry, ErrLessonNotFound
	}

	entry.ModuleID = moduleID
	entry.LessonID = lessonID
	entry.CompletedLessons = removeFromSet(entry.CompletedLessons, lessonID)
	entry.CompletedProjects = removeFromSet(entry.CompletedProjects, lessonID)
	entry.TotalProgress = EntryPercent(entry, course)
	return entry, nil
}

// QuizAnswer is a single graded answer within an attempt
type QuizAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedOption string `json:"selected_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// QuizAttempt is one graded quiz submission for a lesson
type QuizAttempt struct {
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	Percentage     int          `json:"percentage"`
	Answers        []QuizAnswer `json:"answers"`
	CompletedAt    time.Time    `json:"completed_at"`
}

// ScorePercentage derives the attempt percentage: round(100*score/total)
func ScorePercentage(score, totalQuestions int) int {
	if totalQuestions <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(totalQuestions)))
}

// ApplyQuizAttempt applies a graded attempt to the entry. The lesson is marked
// complete the first time any attempt reaches the pass threshold; attempts below
// the threshold never un-complete it. Returns whether this attempt completed the
// lesson. Persisting the attempt itself is the caller's job; every attempt is
// retained regardless of score.
func ApplyQuizAttempt(entry Entry, course Course, lessonID string, attempt QuizAttempt, now time.Time) (Entry, bool, error) {
	mod, _, ok := FindLesson(course, lessonID)
	if !ok {
		return entry, false, ErrLessonNotFound
	}

	if attempt.Percentage < PassThreshold || entry.HasLesson(lessonID) {
		return entry, false, nil
	}

	entry, err := CompleteLesson(entry, course, mod.ID, lessonID, now)
	if err != nil {
		return entry, false, err
	}
	return entry, true, nil
}

func findLessonInModule(mod Module, lessonID string) (Lesson, bool) {
	for _, lesson := range mod.Lessons {
		if lesson.ID == lessonID {
			return lesson, true
		}
	}
	return Lesson{}, false
}
