package viewmodel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/infra/memstore"
	"github.com/runoshun/tracker/internal/liststore"
	"github.com/runoshun/tracker/internal/testutil"
)

func newTestViewModel(t *testing.T, medium domain.Medium) (*ViewModel, *testutil.MockClock) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)}
	store := liststore.Open(context.Background(), medium, domain.DefaultStoreKey, domain.Tasks{},
		liststore.WithValidator(domain.Tasks.Validate))
	vm := New(store, &testutil.MockIDGenerator{Prefix: "t"}, clock, domain.NopLogger{}, domain.ThemeLight)
	return vm, clock
}

func texts(ts domain.Tasks) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Text)
	}
	return out
}

func TestSubmitNewTask(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())

	vm.SetDraft("Write report")
	require.NoError(t, vm.SubmitNewTask(ctx))

	assert.Empty(t, vm.State().Draft)
	require.Len(t, vm.Tasks(), 1)
	task := vm.Tasks()[0]
	assert.Equal(t, "Write report", task.Text)
	assert.False(t, task.IsDone)
	assert.Equal(t, "2026-10-16 09:30:00", task.CreatedAt)
	assert.NotEmpty(t, task.ID)
}

func TestSubmitNewTask_InvalidUTF8KeepsDraft(t *testing.T) {
	ctx := context.Background()
	medium := testutil.NewMockMedium()
	vm, _ := newTestViewModel(t, medium)

	vm.SetDraft("caf\xe9")
	err := vm.SubmitNewTask(ctx)

	assert.ErrorIs(t, err, domain.ErrInvalidText)
	assert.Equal(t, "caf\xe9", vm.State().Draft)
	assert.Empty(t, vm.Tasks())
	assert.Equal(t, 0, medium.SetCalls)
}

func TestSubmitNewTask_EmptyDraftIsNoop(t *testing.T) {
	ctx := context.Background()
	medium := testutil.NewMockMedium()
	vm, _ := newTestViewModel(t, medium)

	require.NoError(t, vm.SubmitNewTask(ctx))

	assert.Empty(t, vm.Tasks())
	assert.Equal(t, 0, medium.SetCalls)
}

func TestSubmitNewTask_UniqueIDsWithinOneTick(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())

	for _, text := range []string{"a", "b", "c"} {
		vm.SetDraft(text)
		require.NoError(t, vm.SubmitNewTask(ctx))
	}

	tasks := vm.Tasks()
	require.Len(t, tasks, 3)
	assert.NoError(t, tasks.Validate())
	assert.Equal(t, tasks[0].CreatedAt, tasks[2].CreatedAt)
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())
	vm.SetDraft("a")
	require.NoError(t, vm.SubmitNewTask(ctx))
	id := vm.Tasks()[0].ID

	require.NoError(t, vm.ToggleTask(ctx, id))
	assert.True(t, vm.Tasks()[0].IsDone)

	require.NoError(t, vm.ToggleTask(ctx, id))
	assert.False(t, vm.Tasks()[0].IsDone)

	before := vm.Tasks()
	require.NoError(t, vm.ToggleTask(ctx, "unknown"))
	assert.Equal(t, before, vm.Tasks())
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())
	for _, text := range []string{"a", "b", "c"} {
		vm.SetDraft(text)
		require.NoError(t, vm.SubmitNewTask(ctx))
	}
	id := vm.Tasks()[1].ID

	require.NoError(t, vm.DeleteTask(ctx, id))
	assert.Equal(t, []string{"a", "c"}, texts(vm.Tasks()))

	require.NoError(t, vm.DeleteTask(ctx, id))
	assert.Equal(t, []string{"a", "c"}, texts(vm.Tasks()))
}

func TestFilteredView(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())
	for _, text := range []string{"abc", "ABC", "xyz"} {
		vm.SetDraft(text)
		require.NoError(t, vm.SubmitNewTask(ctx))
	}

	assert.Equal(t, []string{"abc", "ABC", "xyz"}, texts(vm.FilteredView()))

	vm.SetSearchQuery("b")
	assert.Equal(t, []string{"abc", "ABC"}, texts(vm.FilteredView()))

	vm.SetSearchQuery("B")
	assert.Equal(t, []string{"abc", "ABC"}, texts(vm.FilteredView()))

	vm.SetSearchQuery("nothing")
	assert.Empty(t, vm.FilteredView())
	assert.Len(t, vm.Tasks(), 3, "search never changes the collection")
}

func TestToggleTheme(t *testing.T) {
	vm, _ := newTestViewModel(t, memstore.New())
	assert.Equal(t, domain.ThemeLight, vm.State().Theme)

	vm.ToggleTheme()
	assert.Equal(t, domain.ThemeDark, vm.State().Theme)

	vm.ToggleTheme()
	assert.Equal(t, domain.ThemeLight, vm.State().Theme)
}

func TestSessionStateIsNotPersisted(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	vm, _ := newTestViewModel(t, medium)

	vm.SetDraft("a")
	require.NoError(t, vm.SubmitNewTask(ctx))
	stored, _, _ := medium.Get(ctx, domain.DefaultStoreKey)

	vm.SetDraft("unsaved")
	vm.SetSearchQuery("a")
	vm.ToggleTheme()

	after, _, _ := medium.Get(ctx, domain.DefaultStoreKey)
	assert.Equal(t, stored, after)
}

func TestWarning_PersistFailureKeepsSessionState(t *testing.T) {
	ctx := context.Background()
	medium := testutil.NewMockMedium()
	vm, _ := newTestViewModel(t, medium)

	medium.SetErr = errors.New("quota exceeded")
	vm.SetDraft("a")
	require.NoError(t, vm.SubmitNewTask(ctx))

	assert.ErrorIs(t, vm.Warning(), domain.ErrPersist)
	assert.Len(t, vm.Tasks(), 1)

	medium.SetErr = nil
	vm.SetDraft("b")
	require.NoError(t, vm.SubmitNewTask(ctx))
	assert.NoError(t, vm.Warning())
}

func TestMalformedStorageStartsEmpty(t *testing.T) {
	medium := testutil.NewMockMedium()
	medium.Data[domain.DefaultStoreKey] = []byte("not json")

	vm, _ := newTestViewModel(t, medium)

	assert.Empty(t, vm.Tasks())
}

// Add three tasks, toggle, search, delete, then restart on the same medium.
func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	vm, clock := newTestViewModel(t, medium)

	for _, text := range []string{"Write report", "Buy milk", "Call Bob"} {
		vm.SetDraft(text)
		require.NoError(t, vm.SubmitNewTask(ctx))
		clock.Advance(time.Second)
	}
	require.Len(t, vm.Tasks(), 3)

	milk := vm.Tasks()[1].ID
	require.NoError(t, vm.ToggleTask(ctx, milk))
	assert.True(t, vm.Tasks()[1].IsDone)

	vm.SetSearchQuery("MILK")
	require.Len(t, vm.FilteredView(), 1)
	assert.Equal(t, "Buy milk", vm.FilteredView()[0].Text)
	vm.SetSearchQuery("")

	require.NoError(t, vm.DeleteTask(ctx, vm.Tasks()[0].ID))
	assert.Equal(t, []string{"Buy milk", "Call Bob"}, texts(vm.Tasks()))

	// Restart on the same medium: the collection survives, session state does not
	vm.ToggleTheme()
	restarted, _ := newTestViewModel(t, medium)
	assert.Equal(t, vm.Tasks(), restarted.Tasks())
	assert.True(t, restarted.Tasks()[0].IsDone)
	assert.Equal(t, State{Theme: domain.ThemeLight}, restarted.State())

	raw, ok, err := medium.Get(ctx, domain.DefaultStoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	var wire []map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))
	require.Len(t, wire, 2)
	assert.Equal(t, "Buy milk", wire[0]["text"])
	assert.Equal(t, true, wire[0]["isDone"])
	assert.Equal(t, "2026-10-16 09:30:01", wire[0]["createdAt"])
}

func TestScenario_ReportAndEmail(t *testing.T) {
	ctx := context.Background()
	vm, clock := newTestViewModel(t, memstore.New())

	vm.SetDraft("Write report")
	require.NoError(t, vm.SubmitNewTask(ctx))
	require.Len(t, vm.Tasks(), 1)
	assert.Equal(t, "Write report", vm.Tasks()[0].Text)
	assert.False(t, vm.Tasks()[0].IsDone)

	require.NoError(t, vm.ToggleTask(ctx, vm.Tasks()[0].ID))
	assert.True(t, vm.Tasks()[0].IsDone)

	clock.Advance(time.Second)
	vm.SetDraft("Email team")
	require.NoError(t, vm.SubmitNewTask(ctx))
	require.Len(t, vm.Tasks(), 2)
	assert.False(t, vm.Tasks()[1].IsDone)

	vm.SetSearchQuery("report")
	assert.Equal(t, []string{"Write report"}, texts(vm.FilteredView()))

	require.NoError(t, vm.DeleteTask(ctx, vm.Tasks()[0].ID))
	assert.Equal(t, []string{"Email team"}, texts(vm.Tasks()))
}

func TestFilteredView_SubstringExample(t *testing.T) {
	ctx := context.Background()
	vm, _ := newTestViewModel(t, memstore.New())
	for _, text := range []string{"Buy milk", "Clean abcdesk"} {
		vm.SetDraft(text)
		require.NoError(t, vm.SubmitNewTask(ctx))
	}

	vm.SetSearchQuery("ABC")
	assert.Equal(t, []string{"Clean abcdesk"}, texts(vm.FilteredView()))
}
