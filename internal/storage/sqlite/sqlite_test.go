package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/sqlite"
)

func newRepo(t *testing.T, path string) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: path,
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestNewRepositoryConfig(t *testing.T) {
	_, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{})
	assert.Error(t, err)
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "test.db"))

	t1, err := repo.CreateTask(ctx, "Buy groceries")
	require.NoError(t, err)
	assert.Equal(t, model.Task{ID: 1, Text: "Buy groceries"}, *t1)

	t2, err := repo.CreateTask(ctx, "Write report")
	require.NoError(t, err)
	assert.Equal(t, 2, t2.ID)

	got, err := repo.GetTask(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", got.Text)
	assert.False(t, got.Done)

	toggled, err := repo.ToggleTask(ctx, 1)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = repo.ToggleTask(ctx, 1)
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	_, err = repo.ToggleTask(ctx, 2)
	require.NoError(t, err)
	updated, err := repo.UpdateTaskText(ctx, 2, " Updated ")
	require.NoError(t, err)
	assert.Equal(t, &model.Task{ID: 2, Text: "Updated", Done: true}, updated)

	all, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{
		{ID: 1, Text: "Buy groceries"},
		{ID: 2, Text: "Updated", Done: true},
	}, all)

	require.NoError(t, repo.DeleteTask(ctx, 1))
	_, err = repo.GetTask(ctx, 1)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryMissingTasks(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := repo.GetTask(ctx, 1)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = repo.ToggleTask(ctx, 1)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = repo.UpdateTaskText(ctx, 1, "x")
	assert.True(t, errors.Is(err, model.ErrNotFound))

	err = repo.DeleteTask(ctx, 1)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = repo.CreateTask(ctx, "   ")
	assert.True(t, errors.Is(err, model.ErrNotValid))

	all, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}

func TestRepositoryIDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, filepath.Join(t.TempDir(), "test.db"))

	_, err := repo.CreateTask(ctx, "Task 1")
	require.NoError(t, err)
	_, err = repo.CreateTask(ctx, "Task 2")
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTask(ctx, 2))

	t3, err := repo.CreateTask(ctx, "Task 3")
	require.NoError(t, err)
	assert.Equal(t, 3, t3.ID)
}

func TestRepositoryReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	repo1, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: path})
	require.NoError(t, err)
	_, err = repo1.CreateTask(ctx, "Survives restarts")
	require.NoError(t, err)
	require.NoError(t, repo1.Close())

	repo2 := newRepo(t, path)
	all, err := repo2.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Task{{ID: 1, Text: "Survives restarts"}}, all)
}
