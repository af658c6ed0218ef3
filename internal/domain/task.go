// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CreatedAtLayout is the textual layout of Task.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Task is a single to-do item.
// Only IsDone changes after creation, and only through Toggle.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	IsDone    bool   `json:"isDone" yaml:"isDone"`
}

// NewTask builds a not-done task created at now.
func NewTask(id, text string, now time.Time) Task {
	return Task{
		ID:        id,
		Text:      text,
		IsDone:    false,
		CreatedAt: FormatCreatedAt(now),
	}
}

// FormatCreatedAt renders t with whole-second precision in its own location.
func FormatCreatedAt(t time.Time) string {
	return t.Format(CreatedAtLayout)
}

// Toggled returns a copy of t with IsDone negated.
func (t Task) Toggled() Task {
	t.IsDone = !t.IsDone
	return t
}

// Matches reports whether the task text contains query, ignoring case.
// An empty query matches every task.
func (t Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Text), strings.ToLower(query))
}

// taskWire accepts both the current field names and the legacy
// browser-storage ones ("task", "dateTime", numeric ids).
type taskWire struct {
	ID        json.RawMessage `json:"id"`
	Text      *string         `json:"text"`
	Task      *string         `json:"task"`
	CreatedAt *string         `json:"createdAt"`
	DateTime  *string         `json:"dateTime"`
	IsDone    bool            `json:"isDone"`
}

// UnmarshalJSON decodes a task, accepting legacy field names.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}

	var out Task
	out.ID = id
	out.IsDone = w.IsDone
	switch {
	case w.Text != nil:
		out.Text = *w.Text
	case w.Task != nil:
		out.Text = *w.Task
	}
	switch {
	case w.CreatedAt != nil:
		out.CreatedAt = *w.CreatedAt
	case w.DateTime != nil:
		out.CreatedAt = *w.DateTime
	}

	*t = out
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid task id %s", string(raw))
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}
