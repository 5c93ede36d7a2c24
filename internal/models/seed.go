package models

import "time"

const day = 24 * time.Hour

// SeedClasses returns the sample classes shown on first launch. Two classes meet
// today and one tomorrow, relative to now.
func SeedClasses(now time.Time) []Class {
	today := now.Weekday()
	return []Class{
		{
			ID:         "1",
			Name:       "Calculus",
			Subject:    SubjectMath,
			Instructor: "Dr. Smith",
			Room:       "M101",
			DayOfWeek:  today,
			StartTime:  "09:00",
			EndTime:    "10:30",
		},
		{
			ID:         "2",
			Name:       "Biology",
			Subject:    SubjectScience,
			Instructor: "Prof. Johnson",
			Room:       "S202",
			DayOfWeek:  today,
			StartTime:  "11:00",
			EndTime:    "12:30",
		},
		{
			ID:         "3",
			Name:       "World History",
			Subject:    SubjectHistory,
			Instructor: "Dr. Williams",
			Room:       "H305",
			DayOfWeek:  (today + 1) % 7,
			StartTime:  "14:00",
			EndTime:    "15:30",
		},
	}
}

// SeedHomework returns the sample homework items shown on first launch.
func SeedHomework(now time.Time) []Homework {
	return []Homework{
		{
			ID:          "1",
			ClassID:     "1",
			Title:       "Calculus Assignment 3",
			Description: "Complete problems 15-30 on page 157",
			DueDate:     now.Add(3 * day),
			CreatedAt:   now,
		},
		{
			ID:          "2",
			ClassID:     "2",
			Title:       "Biology Lab Report",
			Description: "Write up the results from the cell division experiment",
			DueDate:     now.Add(2 * day),
			CreatedAt:   now,
		},
	}
}

// SeedNotes returns the sample notes shown on first launch.
func SeedNotes(now time.Time) []Note {
	return []Note{
		{
			ID:        "1",
			ClassID:   "1",
			Title:     "Derivatives",
			Content:   "A derivative measures the sensitivity to change of a function...",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
