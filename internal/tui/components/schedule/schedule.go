package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/tui/theme"
	"github.com/julianstephens/studydash/internal/utils"
)

// DayChangedMsg asks the parent to load the classes of Day.
type DayChangedMsg struct {
	Day time.Weekday
}

type AddClassMsg struct {
	Day time.Weekday
}

type EditClassMsg struct {
	Class models.Class
}

type DeleteClassMsg struct {
	Class models.Class
}

type Item struct {
	Class models.Class
}

func (i Item) Title() string {
	return lipgloss.NewStyle().Foreground(theme.SubjectColor(i.Class.Subject)).Render("▌") + " " + i.Class.Name
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %s · %s",
		utils.FormatTimeRange(i.Class.StartTime, i.Class.EndTime), i.Class.Instructor, i.Class.Room, i.Class.Subject.Label())
}

func (i Item) FilterValue() string { return i.Class.Name }

type KeyMap struct {
	PrevDay key.Binding
	NextDay key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevDay: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next day"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add class"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	day  time.Weekday
}

func New(day time.Weekday, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.PrevDay, keys.NextDay, keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys, day: day}
}

// Day returns the selected weekday.
func (m Model) Day() time.Weekday {
	return m.day
}

// SetClasses replaces the classes shown for the selected day.
func (m *Model) SetClasses(classes []models.Class) {
	items := make([]list.Item, len(classes))
	for i, c := range classes {
		items[i] = Item{Class: c}
	}
	m.list.SetItems(items)
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.PrevDay):
			m.day = (m.day + 6) % 7
			day := m.day
			return m, func() tea.Msg { return DayChangedMsg{Day: day} }
		case key.Matches(msg, m.keys.NextDay):
			m.day = (m.day + 1) % 7
			day := m.day
			return m, func() tea.Msg { return DayChangedMsg{Day: day} }
		case key.Matches(msg, m.keys.Add):
			day := m.day
			return m, func() tea.Msg { return AddClassMsg{Day: day} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditClassMsg{Class: i.Class} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteClassMsg{Class: i.Class} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := m.viewDays()
	if len(m.list.Items()) == 0 {
		return header + "\n\n" + theme.Muted.Render(fmt.Sprintf("  No classes on %s.\n  Press 'a' to add one.", m.day))
	}
	return header + "\n" + m.list.View()
}

func (m Model) viewDays() string {
	days := make([]string, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		label := utils.ShortDayName(d)
		if d == m.day {
			days[d] = theme.Title.Render("[" + label + "]")
		} else {
			days[d] = theme.Subtitle.Render(" " + label + " ")
		}
	}
	return strings.Join(days, " ")
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
