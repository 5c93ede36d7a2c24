package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/studydash/internal/models"
)

// ConflictType represents the type of integrity conflict
type ConflictType string

const (
	ConflictOverlappingClasses ConflictType = "overlapping_classes"
	ConflictInvalidTimeRange   ConflictType = "invalid_time_range"
	ConflictInvalidTime        ConflictType = "invalid_time"
	ConflictOrphanHomework     ConflictType = "orphan_homework"
	ConflictOrphanNote         ConflictType = "orphan_note"
	ConflictDuplicateID        ConflictType = "duplicate_id"
)

// Conflict is one problem found in the stored collections.
type Conflict struct {
	Type        ConflictType
	Description string
	Day         *time.Weekday // set for class conflicts
	IDs         []string
}

// Report contains all detected conflicts
type Report struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Count returns how many conflicts of type t were found.
func (r Report) Count(t ConflictType) int {
	n := 0
	for _, c := range r.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (r Report) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// CheckIntegrity inspects the three collections for data the UI cannot
// render sensibly. It never modifies its inputs.
func CheckIntegrity(classes []models.Class, homework []models.Homework, notes []models.Note) Report {
	report := Report{Conflicts: []Conflict{}}

	report.Conflicts = append(report.Conflicts, duplicateIDs("class", classIDs(classes))...)
	report.Conflicts = append(report.Conflicts, duplicateIDs("homework", homeworkIDs(homework))...)
	report.Conflicts = append(report.Conflicts, duplicateIDs("note", noteIDs(notes))...)

	var timed []models.Class
	for _, c := range classes {
		day := c.DayOfWeek
		startOK, endOK := ValidTime(c.StartTime), ValidTime(c.EndTime)
		if !startOK || !endOK {
			bad := c.StartTime
			if startOK {
				bad = c.EndTime
			}
			report.Conflicts = append(report.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Class \"%s\" has invalid time: %s", c.Name, bad),
				Day:         &day,
				IDs:         []string{c.ID},
			})
			continue
		}
		// HH:MM strings order the same as the times they name.
		if c.EndTime <= c.StartTime {
			report.Conflicts = append(report.Conflicts, Conflict{
				Type:        ConflictInvalidTimeRange,
				Description: fmt.Sprintf("Class \"%s\" ends (%s) before it starts (%s)", c.Name, c.EndTime, c.StartTime),
				Day:         &day,
				IDs:         []string{c.ID},
			})
			continue
		}
		timed = append(timed, c)
	}

	sort.SliceStable(timed, func(i, j int) bool {
		if timed[i].DayOfWeek != timed[j].DayOfWeek {
			return timed[i].DayOfWeek < timed[j].DayOfWeek
		}
		return timed[i].StartTime < timed[j].StartTime
	})

	// O(n²) per day; a week of classes is small.
	for i := 0; i < len(timed); i++ {
		for j := i + 1; j < len(timed) && timed[j].DayOfWeek == timed[i].DayOfWeek; j++ {
			a, b := timed[i], timed[j]
			if b.StartTime < a.EndTime {
				day := a.DayOfWeek
				report.Conflicts = append(report.Conflicts, Conflict{
					Type: ConflictOverlappingClasses,
					Description: fmt.Sprintf("%s: \"%s\" (%s-%s) overlaps \"%s\" (%s-%s)",
						day, a.Name, a.StartTime, a.EndTime, b.Name, b.StartTime, b.EndTime),
					Day: &day,
					IDs: []string{a.ID, b.ID},
				})
			}
		}
	}

	known := make(map[string]bool, len(classes))
	for _, c := range classes {
		known[c.ID] = true
	}
	for _, h := range homework {
		if !known[h.ClassID] {
			report.Conflicts = append(report.Conflicts, Conflict{
				Type:        ConflictOrphanHomework,
				Description: fmt.Sprintf("Homework \"%s\" references missing class ID: %s", h.Title, h.ClassID),
				IDs:         []string{h.ID},
			})
		}
	}
	for _, n := range notes {
		if !known[n.ClassID] {
			report.Conflicts = append(report.Conflicts, Conflict{
				Type:        ConflictOrphanNote,
				Description: fmt.Sprintf("Note \"%s\" references missing class ID: %s", n.Title, n.ClassID),
				IDs:         []string{n.ID},
			})
		}
	}

	return report
}

func duplicateIDs(kind string, ids []string) []Conflict {
	seen := make(map[string]int, len(ids))
	var order []string
	for _, id := range ids {
		if seen[id] == 0 {
			order = append(order, id)
		}
		seen[id]++
	}

	var out []Conflict
	for _, id := range order {
		if seen[id] > 1 {
			out = append(out, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate %s ID: %s (%d records)", kind, id, seen[id]),
				IDs:         []string{id},
			})
		}
	}
	return out
}

func classIDs(cs []models.Class) []string {
	ids := make([]string, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}
	return ids
}

func homeworkIDs(hs []models.Homework) []string {
	ids := make([]string, len(hs))
	for i, h := range hs {
		ids[i] = h.ID
	}
	return ids
}

func noteIDs(ns []models.Note) []string {
	ids := make([]string, len(ns))
	for i, n := range ns {
		ids[i] = n.ID
	}
	return ids
}
