package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/storage"
	"github.com/julianstephens/studydash/internal/validation"
)

// 2026-10-19 is a Monday.
var testNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

// flakyStore fails every write while failWrites is set.
type flakyStore struct {
	storage.Provider
	failWrites bool
	writes     int
}

func (s *flakyStore) SetItems(items map[string]string) error {
	if s.failWrites {
		return errors.New("disk full")
	}
	s.writes++
	return s.Provider.SetItems(items)
}

func newStore(t *testing.T) *flakyStore {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "studydash.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &flakyStore{Provider: store}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newEmptyPlanner returns a loaded planner with no records.
func newEmptyPlanner(t *testing.T) (*Planner, *flakyStore) {
	t.Helper()
	store := newStore(t)
	p := New(store, WithClock(func() time.Time { return testNow }), WithIDGenerator(sequentialIDs()))
	if err := p.Reset(false); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	store.writes = 0
	return p, store
}

func mustAddClass(t *testing.T, p *Planner, name string, day time.Weekday, start, end string) models.Class {
	t.Helper()
	c, err := p.AddClass(models.ClassInput{
		Name: name, Instructor: "Dr. X", Room: "R1",
		DayOfWeek: day, StartTime: start, EndTime: end,
	})
	if err != nil {
		t.Fatalf("AddClass(%s) failed: %v", name, err)
	}
	return c
}

func mustAddHomework(t *testing.T, p *Planner, classID, title string, due time.Time) models.Homework {
	t.Helper()
	h, err := p.AddHomework(models.HomeworkInput{ClassID: classID, Title: title, DueDate: due})
	if err != nil {
		t.Fatalf("AddHomework(%s) failed: %v", title, err)
	}
	return h
}

func mustAddNote(t *testing.T, p *Planner, classID, title string) models.Note {
	t.Helper()
	n, err := p.AddNote(models.NoteInput{ClassID: classID, Title: title, Content: "body"})
	if err != nil {
		t.Fatalf("AddNote(%s) failed: %v", title, err)
	}
	return n
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = id(v)
	}
	return out
}

func classID(c models.Class) string       { return c.ID }
func homeworkID(h models.Homework) string { return h.ID }
func noteID(n models.Note) string         { return n.ID }

func TestLoadFallsBackToSeedData(t *testing.T) {
	store := newStore(t)
	p := New(store, WithClock(func() time.Time { return testNow }))
	if err := p.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	snap := p.Snapshot()
	if len(snap.Classes) != 3 || len(snap.Homework) != 2 || len(snap.Notes) != 1 {
		t.Fatalf("expected seed data, got %d classes, %d homework, %d notes",
			len(snap.Classes), len(snap.Homework), len(snap.Notes))
	}
	if store.writes != 0 {
		t.Errorf("Load wrote to storage %d times", store.writes)
	}
}

func TestLoadMalformedCollection(t *testing.T) {
	store := newStore(t)
	saved := `[{"id":"c9","name":"Saved","dayOfWeek":1,"startTime":"08:00","endTime":"09:00"}]`
	if err := store.SetItems(map[string]string{
		constants.KeyClasses:  saved,
		constants.KeyHomework: "{not json",
		constants.KeyNotes:    "[]",
	}); err != nil {
		t.Fatal(err)
	}

	p := New(store, WithClock(func() time.Time { return testNow }))
	if err := p.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := ids(p.Classes(), classID); !reflect.DeepEqual(got, []string{"c9"}) {
		t.Errorf("classes = %v, want saved collection", got)
	}
	if got := len(p.Homework()); got != 2 {
		t.Errorf("malformed homework should fall back to 2 seed items, got %d", got)
	}
	if got := len(p.Notes()); got != 0 {
		t.Errorf("empty saved notes should stay empty, got %d", got)
	}
}

func TestGetTodayClasses(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	late := mustAddClass(t, p, "Late", time.Monday, "14:00", "15:00")
	early := mustAddClass(t, p, "Early", time.Monday, "08:00", "09:00")
	mustAddClass(t, p, "Tuesday", time.Tuesday, "07:00", "08:00")
	mid := mustAddClass(t, p, "Mid", time.Monday, "10:15", "11:00")

	got := ids(p.GetTodayClasses(), classID)
	want := []string{early.ID, mid.ID, late.ID}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetTodayClasses() = %v, want %v", got, want)
	}

	if got := p.ClassesForDay(time.Sunday); len(got) != 0 {
		t.Errorf("ClassesForDay(Sunday) = %v, want none", got)
	}
}

func TestDashboardExample(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Calculus", testNow.Weekday(), "09:00", "10:30")
	later := mustAddHomework(t, p, c.ID, "Later", testNow.Add(5*24*time.Hour))
	h1 := mustAddHomework(t, p, c.ID, "Tomorrow", testNow.Add(24*time.Hour))

	if got := ids(p.GetTodayClasses(), classID); !reflect.DeepEqual(got, []string{c.ID}) {
		t.Errorf("today = %v, want [%s]", got, c.ID)
	}
	if got := ids(p.GetPendingHomework(), homeworkID); !reflect.DeepEqual(got, []string{h1.ID, later.ID}) {
		t.Errorf("pending = %v, want [%s %s]", got, h1.ID, later.ID)
	}
}

func TestFilterHomework(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Biology", time.Monday, "09:00", "10:00")
	a := mustAddHomework(t, p, c.ID, "A", testNow.Add(72*time.Hour))
	b := mustAddHomework(t, p, c.ID, "B", testNow.Add(24*time.Hour))
	done := mustAddHomework(t, p, c.ID, "Done", testNow.Add(48*time.Hour))
	if _, err := p.ToggleHomeworkStatus(done.ID); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		filter HomeworkFilter
		want   []string
	}{
		{FilterAll, []string{b.ID, done.ID, a.ID}},
		{FilterPending, []string{b.ID, a.ID}},
		{FilterCompleted, []string{done.ID}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			if got := ids(p.FilterHomework(tt.filter), homeworkID); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterHomework(%s) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestParseHomeworkFilter(t *testing.T) {
	if f, err := ParseHomeworkFilter(""); err != nil || f != FilterAll {
		t.Errorf("empty filter = %q, %v", f, err)
	}
	if f, err := ParseHomeworkFilter("Pending"); err != nil || f != FilterPending {
		t.Errorf("Pending filter = %q, %v", f, err)
	}
	if _, err := ParseHomeworkFilter("overdue"); err == nil {
		t.Error("expected error for unknown filter")
	}
	if FilterCompleted.Next() != FilterAll || FilterAll.Next() != FilterPending {
		t.Error("filter cycle order is wrong")
	}
}

func TestToggleHomeworkStatusTwiceRestores(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Art", time.Friday, "09:00", "10:00")
	h := mustAddHomework(t, p, c.ID, "Sketch", testNow.Add(time.Hour))

	completed, err := p.ToggleHomeworkStatus(h.ID)
	if err != nil || !completed {
		t.Fatalf("first toggle = %v, %v", completed, err)
	}
	completed, err = p.ToggleHomeworkStatus(h.ID)
	if err != nil || completed {
		t.Fatalf("second toggle = %v, %v", completed, err)
	}

	got, _ := p.GetHomework(h.ID)
	if !reflect.DeepEqual(got, h) {
		t.Errorf("after two toggles %+v, want %+v", got, h)
	}
}

func TestDeleteClassCascades(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	keep := mustAddClass(t, p, "Keep", time.Monday, "09:00", "10:00")
	drop := mustAddClass(t, p, "Drop", time.Tuesday, "09:00", "10:00")
	hKeep := mustAddHomework(t, p, keep.ID, "k", testNow)
	mustAddHomework(t, p, drop.ID, "d1", testNow)
	mustAddHomework(t, p, drop.ID, "d2", testNow)
	nKeep := mustAddNote(t, p, keep.ID, "nk")
	mustAddNote(t, p, drop.ID, "nd")

	if err := p.DeleteClass(drop.ID); err != nil {
		t.Fatalf("DeleteClass failed: %v", err)
	}

	if got := ids(p.Classes(), classID); !reflect.DeepEqual(got, []string{keep.ID}) {
		t.Errorf("classes = %v", got)
	}
	if got := ids(p.Homework(), homeworkID); !reflect.DeepEqual(got, []string{hKeep.ID}) {
		t.Errorf("homework = %v", got)
	}
	if got := ids(p.Notes(), noteID); !reflect.DeepEqual(got, []string{nKeep.ID}) {
		t.Errorf("notes = %v", got)
	}
	if _, ok := p.GetClassByID(drop.ID); ok {
		t.Error("deleted class still found")
	}
	if p.ClassName(drop.ID) != constants.MsgUnknownClass {
		t.Errorf("ClassName of deleted class = %q", p.ClassName(drop.ID))
	}
}

func TestAbsentIDIsNoOp(t *testing.T) {
	p, store := newEmptyPlanner(t)
	mustAddClass(t, p, "Only", time.Monday, "09:00", "10:00")
	before := p.Snapshot()
	writes := store.writes

	name := "renamed"
	title := "t"
	ops := map[string]error{
		"UpdateClass":    p.UpdateClass("missing", models.ClassPatch{Name: &name}),
		"DeleteClass":    p.DeleteClass("missing"),
		"UpdateHomework": p.UpdateHomework("missing", models.HomeworkPatch{Title: &title}),
		"DeleteHomework": p.DeleteHomework("missing"),
		"UpdateNote":     p.UpdateNote("missing", models.NotePatch{Title: &title}),
		"DeleteNote":     p.DeleteNote("missing"),
	}
	_, toggleErr := p.ToggleHomeworkStatus("missing")
	ops["ToggleHomeworkStatus"] = toggleErr

	for op, err := range ops {
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", op, err)
		}
	}
	if !reflect.DeepEqual(p.Snapshot(), before) {
		t.Error("state changed after operations on absent ids")
	}
	if store.writes != writes {
		t.Errorf("absent-id operations wrote %d times", store.writes-writes)
	}
}

func TestAddNote(t *testing.T) {
	p, store := newEmptyPlanner(t)
	c := mustAddClass(t, p, "History", time.Monday, "09:00", "10:00")
	writes := store.writes

	_, err := p.AddNote(models.NoteInput{ClassID: c.ID, Title: "", Content: "text"})
	if !errors.Is(err, validation.ErrRequiredFields) {
		t.Fatalf("expected ErrRequiredFields for empty title, got %v", err)
	}
	if len(p.Notes()) != 0 || store.writes != writes {
		t.Fatal("rejected note changed state")
	}

	n, err := p.AddNote(models.NoteInput{ClassID: c.ID, Title: "Rome", Content: "text"})
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if len(p.Notes()) != 1 {
		t.Fatalf("expected exactly one note, got %d", len(p.Notes()))
	}
	if n.ID == "" || n.ID == c.ID {
		t.Errorf("note id %q is not new", n.ID)
	}
	if !n.CreatedAt.Equal(n.UpdatedAt) {
		t.Errorf("createdAt %v != updatedAt %v", n.CreatedAt, n.UpdatedAt)
	}
	if !n.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt = %v, want %v", n.CreatedAt, testNow)
	}
}

func TestAddRequiresExistingClass(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	_, err := p.AddHomework(models.HomeworkInput{ClassID: "ghost", Title: "x", DueDate: testNow})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddHomework with unknown class: expected ErrNotFound, got %v", err)
	}
	_, err = p.AddNote(models.NoteInput{ClassID: "ghost", Title: "x", Content: "y"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddNote with unknown class: expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMergesAndValidates(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Music", time.Monday, "09:00", "10:00")

	room := "Hall B"
	if err := p.UpdateClass(c.ID, models.ClassPatch{Room: &room}); err != nil {
		t.Fatalf("UpdateClass failed: %v", err)
	}
	got, _ := p.GetClassByID(c.ID)
	if got.Room != "Hall B" || got.Name != "Music" || got.StartTime != "09:00" {
		t.Errorf("merged class = %+v", got)
	}

	blank := " "
	if err := p.UpdateClass(c.ID, models.ClassPatch{Name: &blank}); !errors.Is(err, validation.ErrRequiredFields) {
		t.Errorf("blanking name: expected ErrRequiredFields, got %v", err)
	}
	got, _ = p.GetClassByID(c.ID)
	if got.Name != "Music" {
		t.Errorf("rejected update changed name to %q", got.Name)
	}
}

func TestUpdateNoteRefreshesUpdatedAt(t *testing.T) {
	store := newStore(t)
	now := testNow
	p := New(store, WithClock(func() time.Time { return now }), WithIDGenerator(sequentialIDs()))
	if err := p.Reset(false); err != nil {
		t.Fatal(err)
	}
	c := mustAddClass(t, p, "CS", time.Monday, "09:00", "10:00")
	n := mustAddNote(t, p, c.ID, "Graphs")

	now = now.Add(90 * time.Minute)
	if err := p.UpdateNote(n.ID, models.NotePatch{}); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	got, _ := p.GetNote(n.ID)
	if !got.UpdatedAt.Equal(now) || !got.CreatedAt.Equal(testNow) {
		t.Errorf("timestamps = created %v updated %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestFilterNotes(t *testing.T) {
	store := newStore(t)
	now := testNow
	p := New(store, WithClock(func() time.Time { return now }), WithIDGenerator(sequentialIDs()))
	if err := p.Reset(false); err != nil {
		t.Fatal(err)
	}
	a := mustAddClass(t, p, "A", time.Monday, "09:00", "10:00")
	b := mustAddClass(t, p, "B", time.Monday, "11:00", "12:00")

	n1 := mustAddNote(t, p, a.ID, "first")
	now = now.Add(time.Minute)
	n2 := mustAddNote(t, p, b.ID, "second")
	now = now.Add(time.Minute)
	n3 := mustAddNote(t, p, a.ID, "third")
	now = now.Add(time.Minute)
	if err := p.UpdateNote(n1.ID, models.NotePatch{}); err != nil {
		t.Fatal(err)
	}

	if got := ids(p.FilterNotes(""), noteID); !reflect.DeepEqual(got, []string{n1.ID, n3.ID, n2.ID}) {
		t.Errorf("FilterNotes(all) = %v", got)
	}
	if got := ids(p.FilterNotes("all"), noteID); len(got) != 3 {
		t.Errorf("FilterNotes(\"all\") = %v", got)
	}
	if got := ids(p.FilterNotes(a.ID), noteID); !reflect.DeepEqual(got, []string{n1.ID, n3.ID}) {
		t.Errorf("FilterNotes(a) = %v", got)
	}
	if got := ids(p.GetNotesByClass(b.ID), noteID); !reflect.DeepEqual(got, []string{n2.ID}) {
		t.Errorf("GetNotesByClass(b) = %v", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	p, store := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Physics", time.Wednesday, "13:00", "14:30")
	mustAddHomework(t, p, c.ID, "Lab", time.Date(2026, 10, 21, 23, 59, 59, 0, time.UTC))
	mustAddNote(t, p, c.ID, "Forces")

	reloaded := New(store)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want, got := p.Snapshot(), reloaded.Snapshot()
	if !reflect.DeepEqual(ids(got.Classes, classID), ids(want.Classes, classID)) {
		t.Fatalf("classes differ after reload")
	}
	for i := range want.Homework {
		if !want.Homework[i].DueDate.Equal(got.Homework[i].DueDate) ||
			!want.Homework[i].CreatedAt.Equal(got.Homework[i].CreatedAt) {
			t.Errorf("homework timestamps differ: %+v vs %+v", want.Homework[i], got.Homework[i])
		}
	}
	wantJSON, _ := json.Marshal(want)
	gotJSON, _ := json.Marshal(got)
	if string(wantJSON) != string(gotJSON) {
		t.Errorf("reloaded snapshot differs:\nwant %s\ngot  %s", wantJSON, gotJSON)
	}
}

func TestEveryMutationWritesAllCollections(t *testing.T) {
	p, store := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Chem", time.Monday, "09:00", "10:00")

	for _, key := range []string{constants.KeyClasses, constants.KeyHomework, constants.KeyNotes} {
		raw, ok, err := store.GetItem(key)
		if err != nil || !ok {
			t.Fatalf("key %s missing after AddClass: %v", key, err)
		}
		var v []json.RawMessage
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Errorf("key %s is not a JSON array: %q", key, raw)
		}
	}

	raw, _, _ := store.GetItem(constants.KeyClasses)
	var saved []models.Class
	if err := json.Unmarshal([]byte(raw), &saved); err != nil || len(saved) != 1 || saved[0].ID != c.ID {
		t.Errorf("saved classes = %s", raw)
	}
}

func TestWriteFailureRollsBack(t *testing.T) {
	p, store := newEmptyPlanner(t)
	c := mustAddClass(t, p, "Econ", time.Monday, "09:00", "10:00")
	h := mustAddHomework(t, p, c.ID, "Essay", testNow)
	before := p.Snapshot()

	store.failWrites = true
	if _, err := p.AddClass(models.ClassInput{Name: "N", Instructor: "I", Room: "R", StartTime: "08:00", EndTime: "09:00"}); err == nil {
		t.Error("AddClass should surface the write failure")
	}
	if _, err := p.ToggleHomeworkStatus(h.ID); err == nil {
		t.Error("ToggleHomeworkStatus should surface the write failure")
	}
	if err := p.DeleteClass(c.ID); err == nil {
		t.Error("DeleteClass should surface the write failure")
	}

	if !reflect.DeepEqual(p.Snapshot(), before) {
		t.Error("in-memory state diverged from storage after failed writes")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	mustAddClass(t, p, "Orig", time.Monday, "09:00", "10:00")

	classes := p.Classes()
	classes[0].Name = "Mutated"
	if got := p.Classes()[0].Name; got != "Orig" {
		t.Errorf("caller mutation leaked into planner: %q", got)
	}
}

func TestResetAndClassLookups(t *testing.T) {
	p, _ := newEmptyPlanner(t)
	if len(p.Classes()) != 0 || len(p.Homework()) != 0 || len(p.Notes()) != 0 {
		t.Fatal("Reset(false) should leave empty collections")
	}

	if err := p.Reset(true); err != nil {
		t.Fatalf("Reset(true) failed: %v", err)
	}
	if got := len(p.Classes()); got != 3 {
		t.Errorf("seeded classes = %d, want 3", got)
	}
	if got := ids(p.GetHomeworkByClass("1"), homeworkID); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("GetHomeworkByClass(1) = %v", got)
	}
	if got := ids(p.GetNotesByClass("1"), noteID); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("GetNotesByClass(1) = %v", got)
	}
	if got := p.GetNotesByClass("3"); len(got) != 0 {
		t.Errorf("GetNotesByClass(3) = %v, want none", got)
	}
	if c, ok := p.GetClassByID("2"); !ok || c.Name != "Biology" {
		t.Errorf("GetClassByID(2) = %+v, %v", c, ok)
	}
}

func TestAddAndUpdateTrimWhitespace(t *testing.T) {
	p, _ := newEmptyPlanner(t)

	c, err := p.AddClass(models.ClassInput{
		Name: "  Chemistry ", Instructor: " Dr. Curie", Room: "C12 ",
		DayOfWeek: time.Monday, StartTime: " 09:00", EndTime: "10:00 ",
	})
	if err != nil {
		t.Fatalf("AddClass failed: %v", err)
	}
	if c.Name != "Chemistry" || c.Instructor != "Dr. Curie" || c.Room != "C12" ||
		c.StartTime != "09:00" || c.EndTime != "10:00" {
		t.Errorf("class not trimmed: %+v", c)
	}

	h, err := p.AddHomework(models.HomeworkInput{ClassID: " " + c.ID + " ", Title: " Lab ", Description: " pages 1-3\n", DueDate: testNow})
	if err != nil {
		t.Fatalf("AddHomework failed: %v", err)
	}
	if h.ClassID != c.ID || h.Title != "Lab" || h.Description != "pages 1-3" {
		t.Errorf("homework not trimmed: %+v", h)
	}

	n, err := p.AddNote(models.NoteInput{ClassID: c.ID, Title: " Moles ", Content: "\n6.022e23\n"})
	if err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if n.Title != "Moles" || n.Content != "6.022e23" {
		t.Errorf("note not trimmed: %+v", n)
	}

	title := "  Stoichiometry  "
	if err := p.UpdateNote(n.ID, models.NotePatch{Title: &title}); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}
	if got, _ := p.GetNote(n.ID); got.Title != "Stoichiometry" {
		t.Errorf("updated title = %q", got.Title)
	}
}
