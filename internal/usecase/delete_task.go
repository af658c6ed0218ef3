package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tracker/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID     string // Task id
	Prefix bool   // Also accept a unique prefix of a task id
}

// DeleteTaskOutput contains the result of deleting a task.
// Fields are ordered to minimize memory padding.
type DeleteTaskOutput struct {
	Warning error       // Non-nil when the collection could not be persisted
	Task    domain.Task // The removed task
	Found   bool        // False when no task matched; nothing changed
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	tasks  domain.TaskCollection
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskCollection, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute removes the matching task. An unknown id is a no-op.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	id, err := lookupID(uc.tasks.Read(), in.ID, in.Prefix)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return &DeleteTaskOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	task, _ := uc.tasks.Read().Find(id)
	err = uc.tasks.Update(ctx, func(ts domain.Tasks) domain.Tasks {
		next, _ := ts.Remove(id)
		return next
	})

	out := &DeleteTaskOutput{Task: task, Found: true}
	if out.Warning, err = persistWarning(uc.logger, err); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("deleted %s", id))
	return out, nil
}
