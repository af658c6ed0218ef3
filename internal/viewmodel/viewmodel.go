// Package viewmodel holds the interactive session state of the task list
// and the operations the UI invokes on it.
package viewmodel

import (
	"context"

	"github.com/runoshun/tracker/internal/domain"
	"github.com/runoshun/tracker/internal/usecase"
)

// State is the session-only UI state. None of it is persisted.
type State struct {
	Draft  string       // Text of the new-task input
	Search string       // Live search query
	Theme  domain.Theme // Current light/dark theme
}

// ViewModel owns State and routes mutations through the use cases.
// It is not safe for concurrent use.
type ViewModel struct {
	tasks   domain.TaskCollection
	add     *usecase.AddTask
	toggle  *usecase.ToggleTask
	remove  *usecase.DeleteTask
	warning error
	state   State
}

// New creates a ViewModel over tasks with an empty draft and search.
func New(tasks domain.TaskCollection, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, theme domain.Theme) *ViewModel {
	return &ViewModel{
		tasks:  tasks,
		add:    usecase.NewAddTask(tasks, ids, clock, logger),
		toggle: usecase.NewToggleTask(tasks, logger),
		remove: usecase.NewDeleteTask(tasks, logger),
		state:  State{Theme: theme},
	}
}

// State returns a copy of the session state.
func (vm *ViewModel) State() State {
	return vm.state
}

// Tasks returns the whole collection.
func (vm *ViewModel) Tasks() domain.Tasks {
	return vm.tasks.Read()
}

// Warning returns the last persistence failure, or nil once a later
// mutation persisted successfully.
func (vm *ViewModel) Warning() error {
	return vm.warning
}

// SetDraft replaces the draft text.
func (vm *ViewModel) SetDraft(text string) {
	vm.state.Draft = text
}

// SubmitNewTask appends the draft as a new task and clears the draft.
// An empty draft does nothing.
func (vm *ViewModel) SubmitNewTask(ctx context.Context) error {
	out, err := vm.add.Execute(ctx, usecase.AddTaskInput{Text: vm.state.Draft})
	if err != nil {
		return err
	}
	if !out.Added {
		return nil
	}
	vm.state.Draft = ""
	vm.warning = out.Warning
	return nil
}

// ToggleTask flips the completion flag of the task with id.
// An unknown id changes nothing.
func (vm *ViewModel) ToggleTask(ctx context.Context, id string) error {
	out, err := vm.toggle.Execute(ctx, usecase.ToggleTaskInput{ID: id})
	if err != nil {
		return err
	}
	if out.Found {
		vm.warning = out.Warning
	}
	return nil
}

// DeleteTask removes the task with id. An unknown id changes nothing.
func (vm *ViewModel) DeleteTask(ctx context.Context, id string) error {
	out, err := vm.remove.Execute(ctx, usecase.DeleteTaskInput{ID: id})
	if err != nil {
		return err
	}
	if out.Found {
		vm.warning = out.Warning
	}
	return nil
}

// SetSearchQuery replaces the search query.
func (vm *ViewModel) SetSearchQuery(text string) {
	vm.state.Search = text
}

// FilteredView returns the tasks whose text contains the search query,
// ignoring case, in collection order. An empty query returns every task.
func (vm *ViewModel) FilteredView() domain.Tasks {
	return vm.tasks.Read().Filter(vm.state.Search)
}

// ToggleTheme switches between light and dark.
func (vm *ViewModel) ToggleTheme() {
	vm.state.Theme = vm.state.Theme.Toggled()
}
