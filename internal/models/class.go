package models

import (
	"strings"
	"time"
)

// Class is a recurring scheduled course meeting, defined by weekday and time range.
type Class struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Subject    Subject      `json:"subject"`
	Instructor string       `json:"instructor"`
	Room       string       `json:"room"`
	DayOfWeek  time.Weekday `json:"dayOfWeek"` // 0-6, where 0 is Sunday
	StartTime  string       `json:"startTime"` // HH:MM
	EndTime    string       `json:"endTime"`   // HH:MM
}

// ClassInput holds the user supplied fields of a new class.
type ClassInput struct {
	Name       string       `json:"name" validate:"notblank"`
	Subject    Subject      `json:"subject" validate:"subject"`
	Instructor string       `json:"instructor" validate:"notblank"`
	Room       string       `json:"room" validate:"notblank"`
	DayOfWeek  time.Weekday `json:"dayOfWeek" validate:"min=0,max=6"`
	StartTime  string       `json:"startTime" validate:"hhmm"`
	EndTime    string       `json:"endTime" validate:"hhmm"`
}

// ClassPatch is a partial update. Nil fields are left untouched.
type ClassPatch struct {
	Name       *string
	Subject    *Subject
	Instructor *string
	Room       *string
	DayOfWeek  *time.Weekday
	StartTime  *string
	EndTime    *string
}

// Trimmed returns in with surrounding whitespace removed from its text fields.
func (in ClassInput) Trimmed() ClassInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Instructor = strings.TrimSpace(in.Instructor)
	in.Room = strings.TrimSpace(in.Room)
	in.StartTime = strings.TrimSpace(in.StartTime)
	in.EndTime = strings.TrimSpace(in.EndTime)
	return in
}

// NewClass builds a class from validated input.
func NewClass(id string, in ClassInput) Class {
	subject := in.Subject
	if subject == "" {
		subject = SubjectDefault
	}
	return Class{
		ID:         id,
		Name:       in.Name,
		Subject:    subject,
		Instructor: in.Instructor,
		Room:       in.Room,
		DayOfWeek:  in.DayOfWeek,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	}
}

// Apply merges the patch into c and returns the result.
func (p ClassPatch) Apply(c Class) Class {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Instructor != nil {
		c.Instructor = strings.TrimSpace(*p.Instructor)
	}
	if p.Room != nil {
		c.Room = strings.TrimSpace(*p.Room)
	}
	if p.DayOfWeek != nil {
		c.DayOfWeek = *p.DayOfWeek
	}
	if p.StartTime != nil {
		c.StartTime = strings.TrimSpace(*p.StartTime)
	}
	if p.EndTime != nil {
		c.EndTime = strings.TrimSpace(*p.EndTime)
	}
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p ClassPatch) IsEmpty() bool {
	return p == ClassPatch{}
}

// Input returns the class fields in input form, used to validate a merged record.
func (c Class) Input() ClassInput {
	return ClassInput{
		Name:       c.Name,
		Subject:    c.Subject,
		Instructor: c.Instructor,
		Room:       c.Room,
		DayOfWeek:  c.DayOfWeek,
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
	}
}
