package notes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/tui/theme"
	"github.com/julianstephens/studydash/internal/utils"
)

// AllClasses is the class filter that shows every note.
const AllClasses = "all"

// FilterChangedMsg asks the parent to reload notes for ClassID.
type FilterChangedMsg struct {
	ClassID string
}

type AddNoteMsg struct {
	ClassID string
}

type EditNoteMsg struct {
	Note models.Note
}

type DeleteNoteMsg struct {
	Note models.Note
}

type ViewNoteMsg struct {
	Note models.Note
}

type Item struct {
	Note      models.Note
	ClassName string
}

func (i Item) Title() string { return i.Note.Title }

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.ClassName, utils.FormatShortDate(i.Note.UpdatedAt),
		utils.Preview(i.Note.Content, constants.NotePreviewLength))
}

func (i Item) FilterValue() string { return i.Note.Title }

type KeyMap struct {
	View   key.Binding
	Filter key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		View: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle class"),
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
	list    list.Model
	keys    KeyMap
	classes []models.Class
	classID string
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.View, keys.Filter, keys.Add, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys, classID: AllClasses}
}

// ClassFilter returns the selected class ID, or AllClasses.
func (m Model) ClassFilter() string {
	return m.classID
}

// SetClasses updates the classes the filter cycles through. A filter on a
// class that no longer exists falls back to AllClasses.
func (m *Model) SetClasses(classes []models.Class) {
	m.classes = classes
	if m.classID == AllClasses {
		return
	}
	for _, c := range classes {
		if c.ID == m.classID {
			return
		}
	}
	m.classID = AllClasses
}

// SetNotes replaces the listed notes.
func (m *Model) SetNotes(items []Item) {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
}

// nextClass returns the filter after the current one: "all", then each class in order.
func (m Model) nextClass() string {
	if len(m.classes) == 0 {
		return AllClasses
	}
	if m.classID == AllClasses {
		return m.classes[0].ID
	}
	for i, c := range m.classes {
		if c.ID == m.classID && i+1 < len(m.classes) {
			return m.classes[i+1].ID
		}
	}
	return AllClasses
}

func (m Model) className(id string) string {
	for _, c := range m.classes {
		if c.ID == id {
			return c.Name
		}
	}
	return constants.MsgUnknownClass
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
			m.classID = m.nextClass()
			id := m.classID
			return m, func() tea.Msg { return FilterChangedMsg{ClassID: id} }
		case key.Matches(msg, m.keys.Add):
			id := m.classID
			return m, func() tea.Msg { return AddNoteMsg{ClassID: id} }
		case key.Matches(msg, m.keys.View):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ViewNoteMsg{Note: i.Note} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditNoteMsg{Note: i.Note} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteNoteMsg{Note: i.Note} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	label := "All classes"
	if m.classID != AllClasses {
		label = m.className(m.classID)
	}
	header := theme.Subtitle.Render(fmt.Sprintf("Class: %s", label))
	if len(m.list.Items()) == 0 {
		return header + "\n\n" + theme.Muted.Render("  No notes yet.\n  Press 'a' to write one.")
	}
	return header + "\n" + m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height-2)
}
