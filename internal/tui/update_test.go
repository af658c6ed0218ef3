package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/liststore"
	"github.com/runoshun/tracker/internal/testutil"
	"github.com/runoshun/tracker/internal/viewmodel"
)

func newTestModel(t *testing.T, seed domain.Tasks) (*Model, *testutil.MockMedium) {
	t.Helper()
	medium := testutil.NewMockMedium()
	if seed != nil {
		data, err := json.Marshal(seed)
		require.NoError(t, err)
		medium.Data[domain.DefaultStoreKey] = data
	}
	store := liststore.Open(context.Background(), medium, domain.DefaultStoreKey, domain.Tasks{},
		liststore.WithValidator(domain.Tasks.Validate))
	clock := &testutil.MockClock{NowTime: time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)}
	vm := viewmodel.New(store, &testutil.MockIDGenerator{Prefix: "id-"}, clock, domain.NopLogger{}, domain.ThemeLight)

	m := New(vm)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, medium
}

func seedTasks() domain.Tasks {
	return domain.Tasks{
		{ID: "a", Text: "Write report", CreatedAt: "2026-10-16 09:00:00"},
		{ID: "b", Text: "Email Bob", CreatedAt: "2026-10-16 09:01:00"},
		{ID: "c", Text: "Review PR", CreatedAt: "2026-10-16 09:02:00", IsDone: true},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(runes(string(r)))
	}
}

func TestUpdate_AddTaskFromDraft(t *testing.T) {
	m, medium := newTestModel(t, nil)

	m.Update(runes("n"))
	require.Equal(t, ModeDraft, m.Mode())

	typeText(m, "Write report")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	tasks := m.vm.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Text)
	assert.Equal(t, "2026-10-16 09:30:00", tasks[0].CreatedAt)
	assert.Empty(t, m.draftInput.Value())
	assert.Equal(t, ModeDraft, m.Mode(), "input stays focused for the next task")
	assert.Equal(t, 1, medium.SetCalls)
	assert.Len(t, m.taskList.Items(), 1)
}

func TestUpdate_EmptyDraftIsNoop(t *testing.T) {
	m, medium := newTestModel(t, nil)

	m.Update(runes("n"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, m.vm.Tasks())
	assert.Equal(t, 0, medium.SetCalls)
}

func TestUpdate_EscapeLeavesDraft(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(runes("n"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.Mode())
}

func TestUpdate_ToggleSelected(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	task, ok := m.vm.Tasks().Find("a")
	require.True(t, ok)
	assert.True(t, task.IsDone)

	m.Update(runes("j"))
	m.Update(runes("x"))
	task, _ = m.vm.Tasks().Find("b")
	assert.True(t, task.IsDone)

	m.Update(runes("x"))
	task, _ = m.vm.Tasks().Find("b")
	assert.False(t, task.IsDone)
}

func TestUpdate_DeleteConfirm(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	m.Update(runes("d"))
	require.Equal(t, ModeConfirm, m.Mode())
	assert.Contains(t, m.View(), "Delete task?")

	m.Update(runes("y"))

	assert.Equal(t, ModeNormal, m.Mode())
	_, ok := m.vm.Tasks().Find("a")
	assert.False(t, ok)
	assert.Len(t, m.taskList.Items(), 2)
}

func TestUpdate_DeleteCancel(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	m.Update(runes("d"))
	m.Update(runes("n"))

	assert.Equal(t, ModeNormal, m.Mode())
	assert.Len(t, m.vm.Tasks(), 3)
}

func TestUpdate_DeleteLastKeepsSelectionInRange(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	m.Update(runes("j"))
	m.Update(runes("j"))
	m.Update(runes("d"))
	m.Update(runes("y"))

	task, ok := m.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, "b", task.ID)
}

func TestUpdate_SearchFiltersLive(t *testing.T) {
	m, medium := newTestModel(t, seedTasks())

	m.Update(runes("/"))
	require.Equal(t, ModeSearch, m.Mode())
	typeText(m, "RE")

	assert.Equal(t, "RE", m.vm.State().Search)
	require.Len(t, m.taskList.Items(), 2)
	task, _ := m.SelectedTask()
	assert.Equal(t, "a", task.ID)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Len(t, m.taskList.Items(), 2, "enter keeps the filter")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.vm.State().Search)
	assert.Len(t, m.taskList.Items(), 3)
	assert.Equal(t, 0, medium.SetCalls, "search is never persisted")
}

func TestUpdate_SearchNoMatch(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	m.Update(runes("/"))
	typeText(m, "zzz")

	assert.Empty(t, m.taskList.Items())
	assert.Contains(t, m.View(), "No tasks match the search.")
}

func TestUpdate_ThemeToggle(t *testing.T) {
	m, medium := newTestModel(t, nil)

	m.Update(runes("t"))
	assert.Equal(t, domain.ThemeDark, m.vm.State().Theme)
	assert.Contains(t, m.View(), "theme:dark")

	m.Update(runes("t"))
	assert.Equal(t, domain.ThemeLight, m.vm.State().Theme)
	assert.Equal(t, 0, medium.SetCalls)
}

func TestUpdate_Help(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(runes("?"))
	require.Equal(t, ModeHelp, m.Mode())
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_QuitKeyTypesInDraft(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.Update(runes("n"))
	typeText(m, "q")

	assert.Equal(t, ModeDraft, m.Mode())
	assert.Equal(t, "q", m.vm.State().Draft)
}

func TestUpdate_PersistWarningShown(t *testing.T) {
	m, medium := newTestModel(t, nil)
	medium.SetErr = errors.New("quota exceeded")

	m.Update(runes("n"))
	typeText(m, "Write report")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.vm.Tasks(), 1, "in-session state reflects the change")
	assert.Contains(t, m.View(), "Warning: changes are not saved")
}

func TestUpdate_ErrorLifecycle(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(MsgError{Err: errors.New("boom")})
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Error: boom")

	m.Update(MsgClearError{})
	assert.NotContains(t, m.View(), "Error:")
}

func TestView_EmptyState(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()

	assert.Contains(t, view, "Task Tracker")
	assert.Contains(t, view, "No tasks yet.")
	assert.Contains(t, view, "0 tasks · 0 done")
}

func TestView_ListsTasks(t *testing.T) {
	m, _ := newTestModel(t, seedTasks())

	view := m.View()

	assert.Contains(t, view, "Write report")
	assert.Contains(t, view, "Email Bob")
	assert.Contains(t, view, "3 tasks · 1 done")
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.width = 0

	assert.Equal(t, "Loading...", m.View())
}
