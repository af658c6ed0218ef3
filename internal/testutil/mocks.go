// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/tracker/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockIDGenerator returns "<Prefix><n>" with n counting from 1.
type MockIDGenerator struct {
	Prefix string
	N      int
}

// NewID returns the next sequential id.
func (m *MockIDGenerator) NewID() string {
	m.N++
	return fmt.Sprintf("%s%d", m.Prefix, m.N)
}

// MockMedium is a test double for domain.Medium.
// Fields are ordered to minimize memory padding.
type MockMedium struct {
	Data     map[string][]byte
	GetErr   error
	SetErr   error
	GetCalls int
	SetCalls int
}

// NewMockMedium creates a MockMedium with an initialized map.
func NewMockMedium() *MockMedium {
	return &MockMedium{Data: make(map[string][]byte)}
}

// Get returns the stored value or the configured error.
func (m *MockMedium) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.GetCalls++
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set stores the value or returns the configured error.
func (m *MockMedium) Set(_ context.Context, key string, value []byte) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	GlobalInfo  domain.ConfigInfo
	ProjectInfo domain.ConfigInfo
	InitGlobal  bool
	InitProject bool
}

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// GetProjectConfigInfo returns the configured project info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo { return m.ProjectInfo }

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitGlobal = true
	return nil
}

// InitProjectConfig records the call.
func (m *MockConfigManager) InitProjectConfig() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.InitProject = true
	return nil
}

var (
	_ domain.Clock         = (*MockClock)(nil)
	_ domain.IDGenerator   = (*MockIDGenerator)(nil)
	_ domain.Medium        = (*MockMedium)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
