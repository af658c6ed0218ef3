package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tracker/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	ID     string // Task id
	Prefix bool   // Also accept a unique prefix of a task id
}

// ToggleTaskOutput contains the result of toggling a task.
// Fields are ordered to minimize memory padding.
type ToggleTaskOutput struct {
	Warning error       // Non-nil when the collection could not be persisted
	Task    domain.Task // The task after the toggle
	Found   bool        // False when no task matched; nothing changed
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks  domain.TaskCollection
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskCollection, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		tasks:  tasks,
		logger: logger,
	}
}

// Execute negates isDone of the matching task. An unknown id is a no-op.
func (uc *ToggleTask) Execute(ctx context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	id, err := lookupID(uc.tasks.Read(), in.ID, in.Prefix)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return &ToggleTaskOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	var task domain.Task
	err = uc.tasks.Update(ctx, func(ts domain.Tasks) domain.Tasks {
		next, _ := ts.Toggle(id)
		task, _ = next.Find(id)
		return next
	})

	out := &ToggleTaskOutput{Found: true}
	if out.Warning, err = persistWarning(uc.logger, err); err != nil {
		return nil, err
	}
	out.Task = task

	uc.logger.Info("task", fmt.Sprintf("toggled %s: done=%t", id, task.IsDone))
	return out, nil
}

// lookupID returns the id of the task ref names, matching exactly or,
// when prefix is set, by unique prefix.
func lookupID(tasks domain.Tasks, ref string, prefix bool) (string, error) {
	if prefix {
		return tasks.ResolveID(ref)
	}
	if _, ok := tasks.Find(ref); !ok {
		return "", domain.ErrTaskNotFound
	}
	return ref, nil
}
