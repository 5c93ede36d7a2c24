package models

import (
	"fmt"
	"strings"
)

// Subject is the category of a class. It drives the accent color of class cards.
type Subject string

const (
	SubjectMath      Subject = "math"
	SubjectScience   Subject = "science"
	SubjectHistory   Subject = "history"
	SubjectEnglish   Subject = "english"
	SubjectArt       Subject = "art"
	SubjectMusic     Subject = "music"
	SubjectPE        Subject = "pe"
	SubjectLanguages Subject = "languages"
	SubjectCS        Subject = "cs"
	SubjectDefault   Subject = "default"
)

// Subjects lists every subject in the order they are offered in forms.
var Subjects = []Subject{
	SubjectMath,
	SubjectScience,
	SubjectHistory,
	SubjectEnglish,
	SubjectArt,
	SubjectMusic,
	SubjectPE,
	SubjectLanguages,
	SubjectCS,
	SubjectDefault,
}

var subjectLabels = map[Subject]string{
	SubjectMath:      "Math",
	SubjectScience:   "Science",
	SubjectHistory:   "History",
	SubjectEnglish:   "English",
	SubjectArt:       "Art",
	SubjectMusic:     "Music",
	SubjectPE:        "Physical Education",
	SubjectLanguages: "Languages",
	SubjectCS:        "Computer Science",
	SubjectDefault:   "Other",
}

// Valid reports whether s is one of the known subjects.
func (s Subject) Valid() bool {
	_, ok := subjectLabels[s]
	return ok
}

// Label returns the human readable subject name.
func (s Subject) Label() string {
	if label, ok := subjectLabels[s]; ok {
		return label
	}
	return subjectLabels[SubjectDefault]
}

// ParseSubject converts user input into a Subject. An empty string maps to SubjectDefault.
func ParseSubject(s string) (Subject, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "other" {
		return SubjectDefault, nil
	}
	subject := Subject(s)
	if !subject.Valid() {
		return "", fmt.Errorf("invalid subject: %s", s)
	}
	return subject, nil
}
