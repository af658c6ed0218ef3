package gitstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tracker/internal/domain"
)

func setupTestRepo(t *testing.T) (*git.Repository, string) {
	t.Helper()

	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Test"), 0o644)
	require.NoError(t, err)

	_, err = wt.Add("README.md")
	require.NoError(t, err)

	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return repo, dir
}

func TestStore_GetMissing(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tracker-test")

	v, ok, err := store.Get(context.Background(), "todos")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tracker-test")

	require.NoError(t, store.Set(ctx, "todos", []byte(`[]`)))
	require.NoError(t, store.Set(ctx, "todos", []byte(`[{"id":"a"}]`)))

	v, ok, err := store.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(v))

	ref, err := repo.Reference("refs/tracker-test/todos", true)
	require.NoError(t, err)
	assert.False(t, ref.Hash().IsZero())
}

func TestStore_DoesNotTouchWorktree(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tracker-test")

	require.NoError(t, store.Set(context.Background(), "todos", []byte("x")))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.True(t, status.IsClean())
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupTestRepo(t)
	a := NewWithRepo(repo, "tracker-a")
	b := NewWithRepo(repo, "tracker-b")

	require.NoError(t, a.Set(ctx, "todos", []byte("a")))

	_, ok, err := b.Get(ctx, "todos")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InvalidKey(t *testing.T) {
	repo, _ := setupTestRepo(t)
	store := NewWithRepo(repo, "tracker-test")

	for _, key := range []string{"", "a..b", "has space", "trailing/", "x.lock"} {
		err := store.Set(context.Background(), key, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrInvalidStoreKey, key)
		assert.ErrorIs(t, store.ValidateKey(key), domain.ErrInvalidStoreKey, key)
	}
	assert.NoError(t, store.ValidateKey("todos"))
}

func TestOpen_ExistingRepository(t *testing.T) {
	ctx := context.Background()
	_, dir := setupTestRepo(t)

	store, err := Open(dir, "tracker-test")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "todos", []byte("saved")))

	reopened, err := Open(dir, "tracker-test")
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "todos")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "saved", string(v))
}

func TestOpen_CreatesBareRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "repo")

	store, err := Open(dir, "")
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "todos", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, "HEAD"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "refs", domain.DefaultNamespace, "todos"))
	assert.NoError(t, err)
}
