package domain

import (
	"context"
	"time"
)

// Medium is a durable key/value store of byte strings.
// Get reports ok=false when the key has never been written.
type Medium interface {
	// Get reads the value stored under key.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Codec encodes values for a Medium.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// TaskCollection is the typed, persisted task list the use cases work on.
// It is implemented by liststore.Store[Tasks].
type TaskCollection interface {
	// Read returns the current in-memory snapshot.
	Read() Tasks

	// Write replaces the collection.
	Write(ctx context.Context, tasks Tasks) error

	// Update replaces the collection with fn applied to the snapshot.
	Update(ctx context.Context, fn func(Tasks) Tasks) error
}

// IDGenerator produces unique task ids, independent of wall-clock time.
type IDGenerator interface {
	NewID() string
}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global + environment).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitGlobalConfig writes the config template to the global path.
	InitGlobalConfig() error

	// InitProjectConfig writes the config template to the project path.
	InitProjectConfig() error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// TaskExporter renders a task collection in an export format.
type TaskExporter interface {
	// Export encodes tasks as format (json, yaml, csv, pdf).
	Export(tasks Tasks, format string) ([]byte, error)
}
