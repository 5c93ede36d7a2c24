package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/studydash/internal/constants"
	"github.com/julianstephens/studydash/internal/tui/theme"
	"github.com/julianstephens/studydash/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.dialog {
	case dialogForm, dialogConfirm:
		content = docStyle.Render(m.form.View())
	case dialogNote:
		content = docStyle.Render(m.viewNote())
	default:
		content = docStyle.Render(m.viewPage())
	}

	sections := []string{m.viewTabs()}
	if m.integrityWarning != "" {
		sections = append(sections, warningStyle.Render(m.integrityWarning))
	}
	sections = append(sections, content)
	if m.toast != "" {
		sections = append(sections, toastStyle.Render(m.toast))
	}
	sections = append(sections,
		m.help.View(m),
		footerStyle.Render(m.i18n.T("copyright")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, p := range constants.Pages {
		title := m.i18n.T(p.TranslationKey())
		if m.page == p {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPage() string {
	switch m.page {
	case constants.PageSchedule:
		return m.schedule.View()
	case constants.PageHomework:
		return m.homework.View()
	case constants.PageNotes:
		return m.notes.View()
	default:
		return m.dashboard.View()
	}
}

func (m Model) viewNote() string {
	n := m.viewingNote
	if n == nil {
		return ""
	}
	meta := fmt.Sprintf("%s · updated %s", m.planner.ClassName(n.ClassID), utils.FormatDate(n.UpdatedAt))

	width := m.width - 8
	if width <= 0 || width > 80 {
		width = 80
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(n.Title),
		theme.Subtitle.Render(meta),
		"",
		lipgloss.NewStyle().Width(width).Render(n.Content),
		"",
		theme.Muted.Render("e edit · esc close"),
	)
}
