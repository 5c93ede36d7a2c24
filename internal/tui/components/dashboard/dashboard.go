package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/tui/theme"
	"github.com/julianstephens/studydash/internal/utils"
)

type AddClassMsg struct{}

type AddHomeworkMsg struct{}

// HomeworkItem is a pending homework entry with its resolved class name.
type HomeworkItem struct {
	Homework  models.Homework
	ClassName string
}

type KeyMap struct {
	AddClass    key.Binding
	AddHomework key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddClass: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add class"),
		),
		AddHomework: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add homework"),
		),
	}
}

type Model struct {
	keys     KeyMap
	now      time.Time
	classes  []models.Class
	homework []HomeworkItem
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{keys: DefaultKeyMap(), width: width, height: height}
}

// SetData replaces today's classes and the pending homework shown.
func (m *Model) SetData(now time.Time, classes []models.Class, homework []HomeworkItem) {
	m.now = now
	m.classes = classes
	m.homework = homework
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.AddClass):
			return m, func() tea.Msg { return AddClassMsg{} }
		case key.Matches(msg, m.keys.AddHomework):
			return m, func() tea.Msg { return AddHomeworkMsg{} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Welcome Back!"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Here's your schedule for %s", utils.DayName(m.now.Weekday()))))
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("Today's Classes"))
	b.WriteString("\n")
	if len(m.classes) == 0 {
		b.WriteString(theme.Muted.Render("No classes scheduled for today"))
		b.WriteString("\n")
	}
	for _, c := range m.classes {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(c.Name),
			utils.FormatTimeRange(c.StartTime, c.EndTime),
			fmt.Sprintf("%s · %s", c.Instructor, c.Room),
		)
		b.WriteString(theme.ClassCard(c.Subject, body, m.cardWidth()))
		b.WriteString("\n")
	}

	b.WriteString(theme.Section.Render("Upcoming Homework"))
	b.WriteString("\n")
	if len(m.homework) == 0 {
		b.WriteString(theme.Muted.Render("No pending homework"))
		b.WriteString("\n")
	}
	for _, item := range m.homework {
		h := item.Homework
		due := utils.RelativeTimeString(h.DueDate, m.now)
		if due == "Overdue" {
			due = theme.Overdue.Render(due)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(h.Title),
			fmt.Sprintf("%s · %s", item.ClassName, due),
		)
		b.WriteString(theme.Card.Render(body))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) cardWidth() int {
	if m.width <= 0 || m.width > 60 {
		return 60
	}
	return m.width
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
