package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/tui/components/dashboard"
	"github.com/julianstephens/studydash/internal/tui/components/homework"
	"github.com/julianstephens/studydash/internal/tui/components/notes"
	"github.com/julianstephens/studydash/internal/tui/components/schedule"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case toastExpiredMsg:
		if msg.id == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.dialog {
	case dialogForm:
		cmd = m.updateForm(msg)
		return m, cmd
	case dialogConfirm:
		cmd = m.updateConfirm(msg)
		return m, cmd
	case dialogNote:
		cmd = m.updateNoteViewer(msg)
		return m, cmd
	}

	if handled, cmd := m.handleComponentMsg(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.page = constants.Pages[(int(m.page)+1)%len(constants.Pages)]
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			n := len(constants.Pages)
			m.page = constants.Pages[(int(m.page)-1+n)%n]
			return m, nil
		case key.Matches(msg, m.keys.Pages):
			m.page = constants.Pages[int(msg.String()[0]-'1')]
			return m, nil
		}
	}

	switch m.page {
	case constants.PageDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case constants.PageSchedule:
		m.schedule, cmd = m.schedule.Update(msg)
	case constants.PageHomework:
		m.homework, cmd = m.homework.Update(msg)
	case constants.PageNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize() {
	// tabs, banner, help and footer
	h := m.height - 6
	if h < 0 {
		h = 0
	}
	w := m.width - 4
	if w < 0 {
		w = 0
	}
	m.dashboard.SetSize(w, h)
	m.schedule.SetSize(w, h)
	m.homework.SetSize(w, h)
	m.notes.SetSize(w, h)
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeDialog()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		cmds = append(cmds, m.completeForm())
	case huh.StateAborted:
		m.closeDialog()
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateConfirm(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeDialog()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		cmds = append(cmds, m.runPendingAction())
	case huh.StateAborted:
		m.closeDialog()
	}
	return tea.Batch(cmds...)
}

// runPendingAction executes the confirmed action if the user accepted it.
func (m *Model) runPendingAction() tea.Cmd {
	action := m.pendingAction
	confirmed := m.confirmForm != nil && m.confirmForm.Confirmed
	m.closeDialog()
	if !confirmed || action == nil {
		return nil
	}

	text, err := action()
	m.refresh()
	if err != nil {
		return m.showToast(err.Error())
	}
	return m.showToast(text)
}

func (m *Model) updateNoteViewer(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.String() == "e" && m.viewingNote != nil:
			n := *m.viewingNote
			m.closeDialog()
			return m.openEditNoteForm(n)
		case key.Matches(msg, m.keys.Close):
			m.closeDialog()
		}
	}
	return nil
}

// handleComponentMsg reacts to the messages page components emit.
func (m *Model) handleComponentMsg(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboard.AddClassMsg:
		return true, m.openClassForm(m.planner.Now().Weekday())
	case dashboard.AddHomeworkMsg:
		return true, m.openHomeworkForm()

	case schedule.DayChangedMsg:
		m.schedule.SetClasses(m.planner.ClassesForDay(msg.Day))
		return true, nil
	case schedule.AddClassMsg:
		return true, m.openClassForm(msg.Day)
	case schedule.EditClassMsg:
		return true, m.openEditClassForm(msg.Class)
	case schedule.DeleteClassMsg:
		c := msg.Class
		hw := len(m.planner.GetHomeworkByClass(c.ID))
		ns := len(m.planner.GetNotesByClass(c.ID))
		return true, m.confirm(
			fmt.Sprintf("Delete class %q?", c.Name),
			fmt.Sprintf("This also deletes %d homework item(s) and %d note(s).", hw, ns),
			func() (string, error) {
				if err := m.planner.DeleteClass(c.ID); err != nil {
					return "", err
				}
				return "Class deleted", nil
			},
		)

	case homework.FilterChangedMsg:
		m.refresh()
		return true, nil
	case homework.AddHomeworkMsg:
		return true, m.openHomeworkForm()
	case homework.EditHomeworkMsg:
		return true, m.openEditHomeworkForm(msg.Homework)
	case homework.ToggleHomeworkMsg:
		_, err := m.planner.ToggleHomeworkStatus(msg.ID)
		m.refresh()
		if err != nil {
			return true, m.showToast(err.Error())
		}
		return true, nil
	case homework.DeleteHomeworkMsg:
		h := msg.Homework
		return true, m.confirm(
			fmt.Sprintf("Delete homework %q?", h.Title),
			"This cannot be undone.",
			func() (string, error) {
				if err := m.planner.DeleteHomework(h.ID); err != nil {
					return "", err
				}
				return "Homework deleted", nil
			},
		)

	case notes.FilterChangedMsg:
		m.refresh()
		return true, nil
	case notes.AddNoteMsg:
		return true, m.openNoteForm(msg.ClassID)
	case notes.EditNoteMsg:
		return true, m.openEditNoteForm(msg.Note)
	case notes.ViewNoteMsg:
		n := msg.Note
		m.viewingNote = &n
		m.dialog = dialogNote
		return true, nil
	case notes.DeleteNoteMsg:
		n := msg.Note
		return true, m.confirm(
			fmt.Sprintf("Delete note %q?", n.Title),
			"This cannot be undone.",
			func() (string, error) {
				if err := m.planner.DeleteNote(n.ID); err != nil {
					return "", err
				}
				return "Note deleted", nil
			},
		)
	}
	return false, nil
}
