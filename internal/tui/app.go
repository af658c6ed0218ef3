package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/viewmodel"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	vm         *viewmodel.ViewModel
	err        error
	statusLine *StatusLine

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state (large structs)
	draftInput  textinput.Model
	searchInput textinput.Model

	// Confirm state
	confirmTaskID string

	// Numeric state (smaller types last)
	mode   Mode
	width  int
	height int
}

// New creates a new TUI Model over the view-model.
func New(vm *viewmodel.ViewModel) *Model {
	di := textinput.New()
	di.Placeholder = "Enter your task here..."
	di.Prompt = "+ "

	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.Prompt = "/ "

	styles := NewStyles(vm.State().Theme)
	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	m := &Model{
		vm:          vm,
		mode:        ModeNormal,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		draftInput:  di,
		searchInput: si,
	}
	m.statusLine = NewStatusLine(0, &m.styles)
	m.refreshList()
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SelectedTask returns the highlighted task, if any.
func (m *Model) SelectedTask() (domain.Task, bool) {
	ti, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Task{}, false
	}
	return ti.task, true
}

// refreshList re-derives the list items from the view-model's filtered view.
func (m *Model) refreshList() {
	view := m.vm.FilteredView()
	items := make([]list.Item, len(view))
	for i, t := range view {
		items[i] = taskItem{task: t}
	}
	m.taskList.SetItems(items)
	if n := len(items); n > 0 && m.taskList.Index() >= n {
		m.taskList.Select(n - 1)
	}
}

// applyTheme rebuilds the styles after a theme change.
func (m *Model) applyTheme() {
	m.styles = NewStyles(m.vm.State().Theme)
	m.taskList.SetDelegate(newTaskDelegate(m.styles))
}

// updateLayoutSizes sizes the list to the window minus the chrome.
func (m *Model) updateLayoutSizes() {
	// header + draft + search + status + footer + app padding
	const chrome = 12
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.taskList.SetSize(w, h)
	m.draftInput.Width = w - 4
	m.searchInput.Width = w - 4
	m.statusLine.SetWidth(w)
}

// mutate runs a view-model mutation on the update goroutine and
// re-derives the list. Failures are reported as MsgError.
func (m *Model) mutate(fn func(ctx context.Context) error) tea.Cmd {
	err := fn(context.Background())
	m.refreshList()
	if err != nil {
		return func() tea.Msg { return MsgError{Err: err} }
	}
	return nil
}
