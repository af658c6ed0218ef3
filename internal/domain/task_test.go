package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCreatedAt(t *testing.T) {
	at := time.Date(2026, 10, 16, 9, 5, 7, 999_000_000, time.UTC)

	assert.Equal(t, "2026-10-16 09:05:07", FormatCreatedAt(at))
}

func TestTask_Toggled(t *testing.T) {
	task := Task{ID: "a", Text: "Write report", CreatedAt: "2026-10-16 09:00:00"}

	got := task.Toggled()

	assert.True(t, got.IsDone)
	assert.False(t, task.IsDone, "receiver is not modified")
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Text, got.Text)
	assert.Equal(t, task.CreatedAt, got.CreatedAt)
	assert.False(t, got.Toggled().IsDone)
}

func TestTask_Matches(t *testing.T) {
	task := Task{Text: "Email Bob"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query", query: "", want: true},
		{name: "substring", query: "bob", want: true},
		{name: "upper case", query: "EMAIL", want: true},
		{name: "no match", query: "report", want: false},
		{name: "whitespace is significant", query: "l  B", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, task.Matches(tt.query))
		})
	}
}

func TestTask_UnmarshalJSON_NumericID(t *testing.T) {
	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":1700000000000,"text":"a"}`), &task))

	assert.Equal(t, "1700000000000", task.ID)
}

func TestTask_MarshalJSON_FieldNames(t *testing.T) {
	data, err := json.Marshal(Task{ID: "a", Text: "b", CreatedAt: "c", IsDone: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"a","text":"b","createdAt":"c","isDone":true}`, string(data))
}
