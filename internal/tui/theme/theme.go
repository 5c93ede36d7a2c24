package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studydash/internal/models"
)

var subjectColors = map[models.Subject]lipgloss.Color{
	models.SubjectMath:      lipgloss.Color("33"),
	models.SubjectScience:   lipgloss.Color("35"),
	models.SubjectHistory:   lipgloss.Color("178"),
	models.SubjectEnglish:   lipgloss.Color("167"),
	models.SubjectArt:       lipgloss.Color("170"),
	models.SubjectMusic:     lipgloss.Color("99"),
	models.SubjectPE:        lipgloss.Color("208"),
	models.SubjectLanguages: lipgloss.Color("37"),
	models.SubjectCS:        lipgloss.Color("63"),
	models.SubjectDefault:   lipgloss.Color("245"),
}

// SubjectColor returns the accent color for a subject.
func SubjectColor(s models.Subject) lipgloss.Color {
	if c, ok := subjectColors[s]; ok {
		return c
	}
	return subjectColors[models.SubjectDefault]
}

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	Section = lipgloss.NewStyle().
		Bold(true).
		MarginTop(1)

	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	Overdue = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	Done = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Strikethrough(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)
)

// ClassCard renders a bordered card with a subject colored left edge.
func ClassCard(s models.Subject, body string, width int) string {
	style := Card.BorderLeftForeground(SubjectColor(s)).BorderLeft(true)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(body)
}
