package usecase

import (
	"context"

	"github.com/runoshun/tracker/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Query string // Case-insensitive substring filter; empty lists everything
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks domain.Tasks // Matching tasks in collection order
	Total int          // Size of the whole collection
}

// ListTasks is the use case for reading the filtered collection.
type ListTasks struct {
	tasks domain.TaskCollection
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskCollection) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the tasks matching the query. It never writes.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	all := uc.tasks.Read()
	return &ListTasksOutput{
		Tasks: all.Filter(in.Query),
		Total: len(all),
	}, nil
}
