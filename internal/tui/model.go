package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/i18n"
	"github.com/julianstephens/studydash/internal/models"
	"github.com/julianstephens/studydash/internal/planner"
	"github.com/julianstephens/studydash/internal/tui/components/dashboard"
	"github.com/julianstephens/studydash/internal/tui/components/homework"
	"github.com/julianstephens/studydash/internal/tui/components/notes"
	"github.com/julianstephens/studydash/internal/tui/components/schedule"
	"github.com/julianstephens/studydash/internal/validation"
)

// dialog is the overlay drawn instead of the active page.
type dialog int

const (
	dialogNone dialog = iota
	dialogForm
	dialogConfirm
	dialogNote
)

type formKind int

const (
	formClass formKind = iota
	formHomework
	formNote
)

type ClassFormModel struct {
	Name       string
	Subject    models.Subject
	Instructor string
	Room       string
	Day        time.Weekday
	StartTime  string
	EndTime    string
}

type HomeworkFormModel struct {
	Title       string
	ClassID     string
	DueDate     string
	Description string
	Completed   bool
}

type NoteFormModel struct {
	Title   string
	ClassID string
	Content string
}

type ConfirmFormModel struct {
	Confirmed bool
}

type Model struct {
	planner *planner.Planner
	i18n    *i18n.Translator
	page    constants.Page
	dialog  dialog
	keys    KeyMap
	help    help.Model

	dashboard dashboard.Model
	schedule  schedule.Model
	homework  homework.Model
	notes     notes.Model

	form         *huh.Form
	formKind     formKind
	editingID    string
	classForm    *ClassFormModel
	homeworkForm *HomeworkFormModel
	noteForm     *NoteFormModel
	confirmForm  *ConfirmFormModel

	// pendingAction runs when the open confirmation is accepted and
	// returns the toast to show.
	pendingAction func() (string, error)
	viewingNote   *models.Note

	toast    string
	toastSeq int

	integrityWarning string
	quitting         bool
	width            int
	height           int
}

func NewModel(p *planner.Planner, tr *i18n.Translator) Model {
	if tr == nil {
		tr = i18n.New(nil)
	}
	m := Model{
		planner:   p,
		i18n:      tr,
		page:      constants.PageDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		dashboard: dashboard.New(0, 0),
		schedule:  schedule.New(p.Now().Weekday(), 0, 0),
		homework:  homework.New(0, 0),
		notes:     notes.New(0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads every page from the planner.
func (m *Model) refresh() {
	now := m.planner.Now()

	pending := m.planner.GetPendingHomework()
	if len(pending) > constants.DashboardHomeworkMax {
		pending = pending[:constants.DashboardHomeworkMax]
	}
	dashItems := make([]dashboard.HomeworkItem, len(pending))
	for i, h := range pending {
		dashItems[i] = dashboard.HomeworkItem{Homework: h, ClassName: m.planner.ClassName(h.ClassID)}
	}
	m.dashboard.SetData(now, m.planner.GetTodayClasses(), dashItems)

	m.schedule.SetClasses(m.planner.ClassesForDay(m.schedule.Day()))

	hw := m.planner.FilterHomework(m.homework.Filter())
	hwItems := make([]homework.Item, len(hw))
	for i, h := range hw {
		hwItems[i] = homework.Item{Homework: h, ClassName: m.planner.ClassName(h.ClassID), Now: now}
	}
	m.homework.SetHomework(hwItems)

	m.notes.SetClasses(m.planner.Classes())
	ns := m.planner.FilterNotes(m.notes.ClassFilter())
	noteItems := make([]notes.Item, len(ns))
	for i, n := range ns {
		noteItems[i] = notes.Item{Note: n, ClassName: m.planner.ClassName(n.ClassID)}
	}
	m.notes.SetNotes(noteItems)

	m.updateIntegrityStatus()
}

// updateIntegrityStatus runs the integrity check and updates the warning banner.
func (m *Model) updateIntegrityStatus() {
	snap := m.planner.Snapshot()
	report := validation.CheckIntegrity(snap.Classes, snap.Homework, snap.Notes)
	if report.HasConflicts() {
		m.integrityWarning = fmt.Sprintf("⚠ %d data warning(s), run 'studydash validate' for details", len(report.Conflicts))
	} else {
		m.integrityWarning = ""
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.page {
	case constants.PageDashboard:
		k := m.dashboard.Keys()
		keys = append(keys, k.AddClass, k.AddHomework)
	case constants.PageSchedule:
		k := m.schedule.Keys()
		keys = append(keys, k.PrevDay, k.NextDay, k.Add)
	case constants.PageHomework:
		k := m.homework.Keys()
		keys = append(keys, k.Toggle, k.Filter, k.Add)
	case constants.PageNotes:
		k := m.notes.Keys()
		keys = append(keys, k.View, k.Filter, k.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Pages, m.keys.Quit, m.keys.Help}

	var actions []key.Binding
	switch m.page {
	case constants.PageDashboard:
		k := m.dashboard.Keys()
		actions = []key.Binding{k.AddClass, k.AddHomework}
	case constants.PageSchedule:
		k := m.schedule.Keys()
		actions = []key.Binding{k.PrevDay, k.NextDay, k.Add, k.Edit, k.Delete}
	case constants.PageHomework:
		k := m.homework.Keys()
		actions = []key.Binding{k.Toggle, k.Filter, k.Add, k.Edit, k.Delete}
	case constants.PageNotes:
		k := m.notes.Keys()
		actions = []key.Binding{k.View, k.Filter, k.Add, k.Edit, k.Delete}
	}

	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
