package models

import (
	"strings"
	"time"
)

// Homework is a task associated with a class, with a due date and completion flag.
type Homework struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"classId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HomeworkInput holds the user supplied fields of a new homework item.
type HomeworkInput struct {
	ClassID     string    `json:"classId" validate:"notblank"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Completed   bool      `json:"completed"`
}

// HomeworkPatch is a partial update. Nil fields are left untouched.
type HomeworkPatch struct {
	ClassID     *string
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
}

// Trimmed returns in with surrounding whitespace removed from its text fields.
func (in HomeworkInput) Trimmed() HomeworkInput {
	in.ClassID = strings.TrimSpace(in.ClassID)
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// NewHomework builds a homework item from validated input.
func NewHomework(id string, in HomeworkInput, createdAt time.Time) Homework {
	return Homework{
		ID:          id,
		ClassID:     in.ClassID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Completed:   in.Completed,
		CreatedAt:   createdAt,
	}
}

// Apply merges the patch into h and returns the result.
func (p HomeworkPatch) Apply(h Homework) Homework {
	if p.ClassID != nil {
		h.ClassID = strings.TrimSpace(*p.ClassID)
	}
	if p.Title != nil {
		h.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		h.Description = strings.TrimSpace(*p.Description)
	}
	if p.DueDate != nil {
		h.DueDate = *p.DueDate
	}
	if p.Completed != nil {
		h.Completed = *p.Completed
	}
	return h
}

// IsEmpty reports whether the patch changes nothing.
func (p HomeworkPatch) IsEmpty() bool {
	return p == HomeworkPatch{}
}

// Input returns the homework fields in input form.
func (h Homework) Input() HomeworkInput {
	return HomeworkInput{
		ClassID:     h.ClassID,
		Title:       h.Title,
		Description: h.Description,
		DueDate:     h.DueDate,
		Completed:   h.Completed,
	}
}
