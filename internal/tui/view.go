package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// appTitle is shown in the header.
const appTitle = "Task Tracker"

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeDraft, ModeSearch, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Width(m.width).Height(m.height).Render(content)
}

// viewMain renders the inputs, the task list and the status line.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	b.WriteString(m.styles.Input.Render(m.draftInput.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.searchInput.View()))
	b.WriteString("\n\n")

	if len(m.taskList.Items()) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}
	b.WriteString("\n")

	if m.mode == ModeConfirm {
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	}

	if msg := m.viewMessages(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine.Render(m.GetStatusInfo()))
	return b.String()
}

func (m *Model) viewHeader() string {
	return m.styles.Header.Render(m.styles.HeaderText.Render(appTitle))
}

func (m *Model) viewEmptyState() string {
	if m.vm.State().Search != "" {
		return m.styles.EmptyState.Render("No tasks match the search.")
	}
	return m.styles.EmptyState.Render("No tasks yet. Press n to add one.")
}

// viewMessages renders the error and persistence warning lines.
func (m *Model) viewMessages() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	}
	if w := m.vm.Warning(); w != nil {
		lines = append(lines, m.styles.WarningMsg.Render("Warning: changes are not saved: "+w.Error()))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewConfirmDialog() string {
	text := m.confirmTaskID
	if task, ok := m.vm.Tasks().Find(m.confirmTaskID); ok {
		text = escapeNewlines(task.Text)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.DialogTitle.Render("Delete task?"),
		text,
		m.styles.DialogPrompt.Render("y confirm · n/esc cancel"),
	)
	return m.styles.Dialog.Render(body)
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.Header.Render(m.styles.HeaderText.Render("KEYBOARD SHORTCUTS"))
	m.help.ShowAll = true
	body := m.styles.Help.Render(m.help.View(m.keys))
	hint := m.styles.Footer.Render("esc/? close")
	return lipgloss.JoinVertical(lipgloss.Left, title, body, "", hint)
}
