package progress

import "sort"

// Lesson content types
const (
	TypeLesson     = "lesson"
	TypeProject    = "project"
	TypeAssignment = "assignment"
)

// Lesson is a single catalog lesson node
type Lesson struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Order       int    `json:"order"`
	Type        string `json:"type"` // lesson, project, assignment
	IsPublished bool   `json:"is_published"`
}

// Module is an ordered group of lessons within a course
type Module struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Order       int      `json:"order"`
	IsPublished bool     `json:"is_published"`
	Lessons     []Lesson `json:"lessons"`
}

// Course is a read-only catalog snapshot of a course and its module/lesson tree.
// The progress package never loads this itself; callers pass it in explicitly.
type Course struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	IsPublished bool     `json:"is_published"`
	Modules     []Module `json:"modules"`
}

// FlatLesson is a lesson plus the module it belongs to, as produced by Flatten
type FlatLesson struct {
	Lesson
	ModuleID   string `json:"module_id"`
	ModuleSlug string `json:"module_slug"`
}

// Flatten returns the full ordered sequence of published lessons across all
// published modules: modules sorted by Order, then lessons by Order within each
// module. Sorting is stable, so ties keep their input order. Recomputing from the
// same snapshot always yields the same sequence.
func Flatten(course Course) []FlatLesson {
	modules := make([]Module, len(course.Modules))
	copy(modules, course.Modules)
	sort.SliceStable(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })

	var flat []FlatLesson
	for _, mod := range modules {
		if !mod.IsPublished {
			continue
		}
		lessons := make([]Lesson, len(mod.Lessons))
		copy(lessons, mod.Lessons)
		sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })

		for _, lesson := range lessons {
			if !lesson.IsPublished {
				continue
			}
			flat = append(flat, FlatLesson{
				Lesson:     lesson,
				ModuleID:   mod.ID,
				ModuleSlug: mod.Slug,
			})
		}
	}
	return flat
}

// PublishedLessonIDs returns the set of lesson ids that count toward progress
func PublishedLessonIDs(course Course) map[string]bool {
	ids := make(map[string]bool)
	for _, fl := range Flatten(course) {
		ids[fl.ID] = true
	}
	return ids
}

// FindModule looks up a module by id
func FindModule(course Course, moduleID string) (Module, bool) {
	for _, mod := range course.Modules {
		if mod.ID == moduleID {
			return mod, true
		}
	}
	return Module{}, false
}

// FindLesson looks up a lesson anywhere in the course and returns its module too
func FindLesson(course Course, lessonID string) (Module, Lesson, bool) {
	for _, mod := range course.Modules {
		for _, lesson := range mod.Lessons {
			if lesson.ID == lessonID {
				return mod, lesson, true
			}
		}
	}
	return Module{}, Lesson{}, false
}
