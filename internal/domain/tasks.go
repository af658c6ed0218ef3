package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Tasks is the ordered task collection, the unit of persistence.
// Every method returns a new slice and leaves the receiver untouched.
type Tasks []Task

// Append returns the collection with task added at the tail.
func (ts Tasks) Append(task Task) Tasks {
	out := make(Tasks, 0, len(ts)+1)
	out = append(out, ts...)
	return append(out, task)
}

// Toggle returns the collection with the task matching id flipped.
// The second result is false when no task has that id.
func (ts Tasks) Toggle(id string) (Tasks, bool) {
	out := make(Tasks, len(ts))
	copy(out, ts)
	for i := range out {
		if out[i].ID == id {
			out[i] = out[i].Toggled()
			return out, true
		}
	}
	return out, false
}

// Remove returns the collection without the task matching id.
// The second result is false when no task has that id.
func (ts Tasks) Remove(id string) (Tasks, bool) {
	out := make(Tasks, 0, len(ts))
	found := false
	for _, t := range ts {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	return out, found
}

// Filter returns the tasks whose text contains query, ignoring case.
// An empty query returns the whole collection in order.
func (ts Tasks) Filter(query string) Tasks {
	out := make(Tasks, 0, len(ts))
	for _, t := range ts {
		if t.Matches(query) {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the task with the given id.
func (ts Tasks) Find(id string) (Task, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Validate checks the collection invariants: every task has an id and
// non-empty valid UTF-8 text, and ids are unique.
func (ts Tasks) Validate() error {
	seen := make(map[string]struct{}, len(ts))
	for i, t := range ts {
		if t.ID == "" {
			return fmt.Errorf("task %d: %w", i, ErrEmptyID)
		}
		if t.Text == "" {
			return fmt.Errorf("task %s: %w", t.ID, ErrEmptyText)
		}
		if !utf8.ValidString(t.Text) {
			return fmt.Errorf("task %s: %w", t.ID, ErrInvalidText)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// ResolveID maps a full id or a unique id prefix to a task id.
// Returns ErrTaskNotFound when nothing matches and ErrAmbiguousID when
// the prefix matches more than one task.
func (ts Tasks) ResolveID(ref string) (string, error) {
	if ref == "" {
		return "", ErrTaskNotFound
	}
	if _, ok := ts.Find(ref); ok {
		return ref, nil
	}
	var match string
	for _, t := range ts {
		if strings.HasPrefix(t.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%q: %w", ref, ErrAmbiguousID)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", ErrTaskNotFound
	}
	return match, nil
}
