package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tracker/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // json, yaml, csv or pdf
	Query  string // Optional filter, same semantics as search
}

// ExportTasksOutput contains the rendered export.
type ExportTasksOutput struct {
	Data  []byte
	Count int // Number of exported tasks
}

// ExportTasks is the use case for rendering the collection in an export format.
type ExportTasks struct {
	tasks    domain.TaskCollection
	exporter domain.TaskExporter
	logger   domain.Logger
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskCollection, exporter domain.TaskExporter, logger domain.Logger) *ExportTasks {
	return &ExportTasks{
		tasks:    tasks,
		exporter: exporter,
		logger:   logger,
	}
}

// Execute renders the (filtered) collection.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.tasks.Read().Filter(in.Query)

	data, err := uc.exporter.Export(tasks, in.Format)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", in.Format, err)
	}

	uc.logger.Debug("export", fmt.Sprintf("exported %d tasks as %s", len(tasks), in.Format))
	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
