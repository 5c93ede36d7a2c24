package homework

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/tui/theme"
	"github.com/julianstephens/studydash/internal/utils"
)

// FilterChangedMsg asks the parent to reload the list with Filter.
type FilterChangedMsg struct {
	Filter planner.HomeworkFilter
}

type AddHomeworkMsg struct{}

type EditHomeworkMsg struct {
	Homework models.Homework
}

type DeleteHomeworkMsg struct {
	Homework models.Homework
}

type ToggleHomeworkMsg struct {
	ID string
}

type Item struct {
	Homework  models.Homework
	ClassName string
	Now       time.Time
}

func (i Item) Title() string {
	if i.Homework.Completed {
		return "✓ " + theme.Done.Render(i.Homework.Title)
	}
	return "○ " + i.Homework.Title
}

func (i Item) Description() string {
	due := utils.RelativeTimeString(i.Homework.DueDate, i.Now)
	if due == "Overdue" && !i.Homework.Completed {
		due = theme.Overdue.Render(due)
	}
	return fmt.Sprintf("%s · due %s · %s", i.ClassName, utils.FormatShortDate(i.Homework.DueDate), due)
}

func (i Item) FilterValue() string { return i.Homework.Title }

type KeyMap struct {
	Toggle key.Binding
	Filter key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle done"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
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
	list   list.Model
	keys   KeyMap
	filter planner.HomeworkFilter
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Filter, keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys, filter: planner.FilterAll}
}

// Filter returns the active completion filter.
func (m Model) Filter() planner.HomeworkFilter {
	return m.filter
}

// SetHomework replaces the listed items, keeping the cursor where possible.
func (m *Model) SetHomework(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	idx := m.list.Index()
	m.list.SetItems(listItems)
	if idx >= len(listItems) {
		idx = len(listItems) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
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
		case key.Matches(msg, m.keys.Filter):
			m.filter = m.filter.Next()
			f := m.filter
			return m, func() tea.Msg { return FilterChangedMsg{Filter: f} }
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHomeworkMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHomeworkMsg{ID: i.Homework.ID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditHomeworkMsg{Homework: i.Homework} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHomeworkMsg{Homework: i.Homework} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Subtitle.Render(fmt.Sprintf("Showing: %s", m.filter))
	if len(m.list.Items()) == 0 {
		return header + "\n\n" + theme.Muted.Render("  No homework here.\n  Press 'a' to add some.")
	}
	return header + "\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
