// Package usecase contains application use cases.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/runoshun/tracker/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text, kept verbatim (not trimmed)
}

// AddTaskOutput contains the result of adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskOutput struct {
	Warning error       // Non-nil when the collection could not be persisted
	Task    domain.Task // The created task (zero when Added is false)
	Added   bool        // False when the text was empty
}

// AddTask is the use case for appending a new task.
type AddTask struct {
	tasks  domain.TaskCollection
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskCollection, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute appends a task with a fresh id. Empty text is a no-op.
// Text that is not valid UTF-8 is rejected with domain.ErrInvalidText.
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Text == "" {
		return &AddTaskOutput{}, nil
	}
	if !utf8.ValidString(in.Text) {
		return nil, domain.ErrInvalidText
	}

	task := domain.NewTask(uc.ids.NewID(), in.Text, uc.clock.Now())
	err := uc.tasks.Update(ctx, func(ts domain.Tasks) domain.Tasks {
		return ts.Append(task)
	})

	out := &AddTaskOutput{Task: task, Added: true}
	if out.Warning, err = persistWarning(uc.logger, err); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("added %s: %q", task.ID, task.Text))
	return out, nil
}

// persistWarning splits a collection write error into a non-fatal warning
// (persistence failed, session state is correct) and anything else.
func persistWarning(logger domain.Logger, err error) (warning, fatal error) {
	if err == nil {
		return nil, nil
	}
	if errors.Is(err, domain.ErrPersist) {
		logger.Warn("task", err.Error())
		return err, nil
	}
	return nil, err
}
