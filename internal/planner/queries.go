package planner

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
)

// HomeworkFilter selects homework by completion state.
type HomeworkFilter string

const (
	FilterAll       HomeworkFilter = "all"
	FilterPending   HomeworkFilter = "pending"
	FilterCompleted HomeworkFilter = "completed"
)

// HomeworkFilters lists the filters in the order the homework page cycles them.
var HomeworkFilters = []HomeworkFilter{FilterAll, FilterPending, FilterCompleted}

// ParseHomeworkFilter accepts "all", "pending" or "completed". Empty means all.
func ParseHomeworkFilter(s string) (HomeworkFilter, error) {
	switch f := HomeworkFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	}
	return "", fmt.Errorf("invalid homework filter %q (use all, pending or completed)", s)
}

// Next returns the filter after f in cycle order.
func (f HomeworkFilter) Next() HomeworkFilter {
	for i, v := range HomeworkFilters {
		if v == f {
			return HomeworkFilters[(i+1)%len(HomeworkFilters)]
		}
	}
	return FilterAll
}

func (f HomeworkFilter) match(h models.Homework) bool {
	switch f {
	case FilterPending:
		return !h.Completed
	case FilterCompleted:
		return h.Completed
	}
	return true
}

// Classes returns every class in stored order.
func (p *Planner) Classes() []models.Class {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.classes)
}

// Homework returns every homework item in stored order.
func (p *Planner) Homework() []models.Homework {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.homework)
}

// Notes returns every note in stored order.
func (p *Planner) Notes() []models.Note {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return clone(p.notes)
}

// GetClassByID returns the class with the given id.
func (p *Planner) GetClassByID(id string) (models.Class, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i := indexOf(p.classes, func(c models.Class) bool { return c.ID == id }); i >= 0 {
		return p.classes[i], true
	}
	return models.Class{}, false
}

// ClassName returns the name of the class, or "Unknown Class" when it is gone.
func (p *Planner) ClassName(id string) string {
	if c, ok := p.GetClassByID(id); ok {
		return c.Name
	}
	return constants.MsgUnknownClass
}

// GetHomework returns the homework item with the given id.
func (p *Planner) GetHomework(id string) (models.Homework, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i := indexOf(p.homework, func(h models.Homework) bool { return h.ID == id }); i >= 0 {
		return p.homework[i], true
	}
	return models.Homework{}, false
}

// GetNote returns the note with the given id.
func (p *Planner) GetNote(id string) (models.Note, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i := indexOf(p.notes, func(n models.Note) bool { return n.ID == id }); i >= 0 {
		return p.notes[i], true
	}
	return models.Note{}, false
}

// GetHomeworkByClass returns the class's homework in stored order.
func (p *Planner) GetHomeworkByClass(classID string) []models.Homework {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return without(p.homework, func(h models.Homework) bool { return h.ClassID != classID })
}

// GetNotesByClass returns the class's notes in stored order.
func (p *Planner) GetNotesByClass(classID string) []models.Note {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return without(p.notes, func(n models.Note) bool { return n.ClassID != classID })
}

// ClassesForDay returns the classes meeting on day, earliest start first.
func (p *Planner) ClassesForDay(day time.Weekday) []models.Class {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := without(p.classes, func(c models.Class) bool { return c.DayOfWeek != day })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// GetTodayClasses returns the classes meeting on the clock's weekday, earliest start first.
func (p *Planner) GetTodayClasses() []models.Class {
	return p.ClassesForDay(p.clock().Weekday())
}

// FilterHomework returns the homework matching f, soonest due first.
func (p *Planner) FilterHomework(f HomeworkFilter) []models.Homework {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := without(p.homework, func(h models.Homework) bool { return !f.match(h) })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// GetPendingHomework returns incomplete homework, soonest due first.
func (p *Planner) GetPendingHomework() []models.Homework {
	return p.FilterHomework(FilterPending)
}

// FilterNotes returns the notes of classID ("" or "all" for every note),
// most recently updated first.
func (p *Planner) FilterNotes(classID string) []models.Note {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := clone(p.notes)
	if classID != "" && classID != string(FilterAll) {
		out = without(out, func(n models.Note) bool { return n.ClassID != classID })
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}
