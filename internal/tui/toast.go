package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/studydash/internal/constants"
)

type toastExpiredMsg struct {
	id int
}

// showToast displays text until constants.ToastDuration passes or a newer
// toast replaces it.
func (m *Model) showToast(text string) tea.Cmd {
	m.toastSeq++
	m.toast = text
	id := m.toastSeq
	return tea.Tick(constants.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
