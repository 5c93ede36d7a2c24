package models

import (
	"strings"
	"time"
)

// Note is free-text content associated with a class.
type Note struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"classId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteInput holds the user supplied fields of a new note.
type NoteInput struct {
	ClassID string `json:"classId" validate:"notblank"`
	Title   string `json:"title" validate:"notblank"`
	Content string `json:"content" validate:"notblank"`
}

// NotePatch is a partial update. Nil fields are left untouched.
type NotePatch struct {
	ClassID *string
	Title   *string
	Content *string
}

// Trimmed returns in with surrounding whitespace removed from its text fields.
func (in NoteInput) Trimmed() NoteInput {
	in.ClassID = strings.TrimSpace(in.ClassID)
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	return in
}

// NewNote builds a note from validated input. Both timestamps are set to now.
func NewNote(id string, in NoteInput, now time.Time) Note {
	return Note{
		ID:        id,
		ClassID:   in.ClassID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply merges the patch into n and stamps UpdatedAt.
func (p NotePatch) Apply(n Note, now time.Time) Note {
	if p.ClassID != nil {
		n.ClassID = strings.TrimSpace(*p.ClassID)
	}
	if p.Title != nil {
		n.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		n.Content = strings.TrimSpace(*p.Content)
	}
	n.UpdatedAt = now
	return n
}

// IsEmpty reports whether the patch changes no user field.
func (p NotePatch) IsEmpty() bool {
	return p == NotePatch{}
}

// Input returns the note fields in input form.
func (n Note) Input() NoteInput {
	return NoteInput{
		ClassID: n.ClassID,
		Title:   n.Title,
		Content: n.Content,
	}
}
