package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// errorDisplayDuration is how long an error stays on screen.
const errorDisplayDuration = 5 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, tea.Tick(errorDisplayDuration, func(time.Time) tea.Msg {
			return MsgClearError{}
		})

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even from an input
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeDraft:
		return m.handleDraftMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeDraft
		return m, m.draftInput.Focus()

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.ClearSearch):
		if m.searchInput.Value() != "" {
			m.searchInput.Reset()
			m.vm.SetSearchQuery("")
			m.refreshList()
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.vm.ToggleTheme()
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.mutate(func(ctx context.Context) error {
			return m.vm.ToggleTask(ctx, task.ID)
		})

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		m.confirmTaskID = task.ID
		m.mode = ModeConfirm
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// handleDraftMode handles keys while the new-task input is focused.
// Enter submits and keeps the input focused for the next task.
func (m *Model) handleDraftMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.draftInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		cmd := m.mutate(m.vm.SubmitNewTask)
		m.draftInput.SetValue(m.vm.State().Draft)
		if n := len(m.taskList.Items()); n > 0 && m.vm.State().Search == "" {
			m.taskList.Select(n - 1)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.draftInput, cmd = m.draftInput.Update(msg)
	m.vm.SetDraft(m.draftInput.Value())
	return m, cmd
}

// handleSearchMode handles keys while the search input is focused.
// The list is re-filtered on every keystroke.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.vm.SetSearchQuery("")
		m.refreshList()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.vm.SetSearchQuery(m.searchInput.Value())
	m.refreshList()
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, m.mutate(func(ctx context.Context) error {
			return m.vm.DeleteTask(ctx, id)
		})
	}

	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}
