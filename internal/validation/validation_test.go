package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/studydash/internal/models"
)

func TestStructClassInput(t *testing.T) {
	valid := models.ClassInput{
		Name:       "Calculus",
		Subject:    models.SubjectMath,
		Instructor: "Dr. Smith",
		Room:       "M101",
		DayOfWeek:  time.Monday,
		StartTime:  "09:00",
		EndTime:    "10:30",
	}

	tests := []struct {
		name         string
		mutate       func(*models.ClassInput)
		wantField    string
		wantRequired bool
	}{
		{name: "valid", mutate: func(*models.ClassInput) {}},
		{name: "empty subject allowed", mutate: func(c *models.ClassInput) { c.Subject = "" }},
		{name: "blank name", mutate: func(c *models.ClassInput) { c.Name = "   " }, wantField: "name", wantRequired: true},
		{name: "missing room", mutate: func(c *models.ClassInput) { c.Room = "" }, wantField: "room", wantRequired: true},
		{name: "missing instructor", mutate: func(c *models.ClassInput) { c.Instructor = "" }, wantField: "instructor", wantRequired: true},
		{name: "bad start", mutate: func(c *models.ClassInput) { c.StartTime = "9:00" }, wantField: "startTime"},
		{name: "bad end", mutate: func(c *models.ClassInput) { c.EndTime = "24:00" }, wantField: "endTime"},
		{name: "bad weekday", mutate: func(c *models.ClassInput) { c.DayOfWeek = 7 }, wantField: "dayOfWeek"},
		{name: "unknown subject", mutate: func(c *models.ClassInput) { c.Subject = "alchemy" }, wantField: "subject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := Struct(in)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}

			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors, got %T: %v", err, err)
			}
			if fe.Field(tt.wantField) == "" {
				t.Errorf("expected error on %s, got %v", tt.wantField, fe)
			}
			if got := errors.Is(err, ErrRequiredFields); got != tt.wantRequired {
				t.Errorf("errors.Is(ErrRequiredFields) = %v, want %v", got, tt.wantRequired)
			}
		})
	}
}

func TestStructNoteInput(t *testing.T) {
	err := Struct(models.NoteInput{ClassID: "1", Content: "body"})
	if !errors.Is(err, ErrRequiredFields) {
		t.Fatalf("expected ErrRequiredFields for empty title, got %v", err)
	}
	if msg := err.(FieldErrors).Field("title"); msg != "title is required" {
		t.Errorf("title message = %q", msg)
	}

	if err := Struct(models.NoteInput{ClassID: "1", Title: "T", Content: "C"}); err != nil {
		t.Errorf("expected valid note, got %v", err)
	}
}

func TestStructHomeworkInput(t *testing.T) {
	err := Struct(models.HomeworkInput{ClassID: "1", Title: "Essay"})
	if !errors.Is(err, ErrRequiredFields) {
		t.Fatalf("expected ErrRequiredFields for zero due date, got %v", err)
	}
	if err.(FieldErrors).Field("dueDate") == "" {
		t.Errorf("expected dueDate error, got %v", err)
	}

	ok := models.HomeworkInput{ClassID: "1", Title: "Essay", DueDate: time.Now()}
	if err := Struct(ok); err != nil {
		t.Errorf("expected valid homework, got %v", err)
	}
}

func TestValidTime(t *testing.T) {
	tests := map[string]bool{
		"00:00": true,
		"09:30": true,
		"23:59": true,
		"24:00": false,
		"12:60": false,
		"9:30":  false,
		"":      false,
		"ab:cd": false,
	}
	for in, want := range tests {
		if got := ValidTime(in); got != want {
			t.Errorf("ValidTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)

	got, err := ParseDueDate(" 2026-10-21 ", loc)
	if err != nil {
		t.Fatalf("ParseDueDate failed: %v", err)
	}
	want := time.Date(2026, 10, 21, 23, 59, 59, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseDueDate = %v, want %v", got, want)
	}

	if _, err := ParseDueDate("10/21/2026", loc); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestCheckIntegrity(t *testing.T) {
	classes := []models.Class{
		{ID: "1", Name: "Calculus", DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "10:30"},
		{ID: "2", Name: "Biology", DayOfWeek: time.Monday, StartTime: "10:00", EndTime: "11:00"},
		{ID: "3", Name: "History", DayOfWeek: time.Tuesday, StartTime: "10:00", EndTime: "11:00"},
		{ID: "4", Name: "Art", DayOfWeek: time.Wednesday, StartTime: "14:00", EndTime: "13:00"},
		{ID: "5", Name: "Music", DayOfWeek: time.Thursday, StartTime: "25:00", EndTime: "26:00"},
		{ID: "3", Name: "Dup", DayOfWeek: time.Friday, StartTime: "08:00", EndTime: "09:00"},
	}
	homework := []models.Homework{
		{ID: "h1", ClassID: "1", Title: "Problems"},
		{ID: "h2", ClassID: "gone", Title: "Orphan"},
	}
	notes := []models.Note{
		{ID: "n1", ClassID: "missing", Title: "Lost"},
	}

	report := CheckIntegrity(classes, homework, notes)

	expect := map[ConflictType]int{
		ConflictOverlappingClasses: 1,
		ConflictInvalidTimeRange:   1,
		ConflictInvalidTime:        1,
		ConflictOrphanHomework:     1,
		ConflictOrphanNote:         1,
		ConflictDuplicateID:        1,
	}
	for typ, want := range expect {
		if got := report.Count(typ); got != want {
			t.Errorf("Count(%s) = %d, want %d", typ, got, want)
		}
	}

	out := report.FormatReport()
	if !strings.Contains(out, `"Calculus" (09:00-10:30) overlaps "Biology" (10:00-11:00)`) {
		t.Errorf("report missing overlap description:\n%s", out)
	}
}

func TestCheckIntegrityAdjacentClassesDoNotOverlap(t *testing.T) {
	classes := []models.Class{
		{ID: "1", Name: "A", DayOfWeek: time.Monday, StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", Name: "B", DayOfWeek: time.Monday, StartTime: "10:00", EndTime: "11:00"},
		{ID: "3", Name: "C", DayOfWeek: time.Tuesday, StartTime: "09:30", EndTime: "10:30"},
	}
	report := CheckIntegrity(classes, nil, nil)
	if report.HasConflicts() {
		t.Errorf("expected no conflicts, got:\n%s", report.FormatReport())
	}
	if report.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected clean report %q", report.FormatReport())
	}
}

func TestCheckIntegritySeedDataIsClean(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	report := CheckIntegrity(models.SeedClasses(now), models.SeedHomework(now), models.SeedNotes(now))
	if report.HasConflicts() {
		t.Errorf("seed data has conflicts:\n%s", report.FormatReport())
	}
}
