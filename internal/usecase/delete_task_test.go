package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTask_Execute(t *testing.T) {
	env := newTestEnv(t, seedTasks())
	uc := NewDeleteTask(env.store, env.logger)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "a1c3"})

	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, "Buy milk", out.Task.Text)

	tasks := env.store.Read()
	require.Len(t, tasks, 2)
	assert.Equal(t, "a1b2", tasks[0].ID)
	assert.Equal(t, "ffff", tasks[1].ID)
}

func TestDeleteTask_Idempotent(t *testing.T) {
	env := newTestEnv(t, seedTasks())
	uc := NewDeleteTask(env.store, env.logger)
	ctx := context.Background()

	_, err := uc.Execute(ctx, DeleteTaskInput{ID: "ffff"})
	require.NoError(t, err)
	after := env.store.Read()

	out, err := uc.Execute(ctx, DeleteTaskInput{ID: "ffff"})
	require.NoError(t, err)
	assert.False(t, out.Found)
	assert.Equal(t, after, env.store.Read())
}

func TestDeleteTask_Prefix(t *testing.T) {
	env := newTestEnv(t, seedTasks())
	uc := NewDeleteTask(env.store, env.logger)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{ID: "a1b", Prefix: true})

	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, "a1b2", out.Task.ID)
	assert.Len(t, env.store.Read(), 2)
}
