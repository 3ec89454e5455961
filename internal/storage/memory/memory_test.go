package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/memory"
)

func newRepo(t *testing.T) *memory.Repository {
	t.Helper()
	repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: log.Noop})
	require.NoError(t, err)
	return repo
}

func TestRepositoryCRUD(t *testing.T) {
	tests := map[string]struct {
		actions func(ctx context.Context, t *testing.T, repo *memory.Repository) error
		expErr  bool
	}{
		"Creating tasks should assign increasing IDs and keep insertion order": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				for _, text := range []string{"Buy groceries", "Write report", "Call mom"} {
					_, err := repo.CreateTask(ctx, text)
					require.NoError(t, err)
				}

				tasks, err := repo.ListTasks(ctx)
				require.NoError(t, err)
				assert.Equal(t, []model.Task{
					{ID: 1, Text: "Buy groceries"},
					{ID: 2, Text: "Write report"},
					{ID: 3, Text: "Call mom"},
				}, tasks)

				return nil
			},
		},

		"Creating an empty task should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "")
				return err
			},
			expErr: true,
		},

		"IDs should not be reused after deletions": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "Task 1")
				require.NoError(t, err)
				_, err = repo.CreateTask(ctx, "Task 2")
				require.NoError(t, err)

				require.NoError(t, repo.DeleteTask(ctx, 2))
				require.NoError(t, repo.DeleteTask(ctx, 1))

				t3, err := repo.CreateTask(ctx, "Task 3")
				require.NoError(t, err)
				assert.Equal(t, 3, t3.ID)

				return nil
			},
		},

		"Deleting a task should keep the others untouched": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				for _, text := range []string{"Task 1", "Task 2", "Task 3"} {
					_, err := repo.CreateTask(ctx, text)
					require.NoError(t, err)
				}
				_, err := repo.ToggleTask(ctx, 3)
				require.NoError(t, err)

				require.NoError(t, repo.DeleteTask(ctx, 2))

				tasks, err := repo.ListTasks(ctx)
				require.NoError(t, err)
				assert.Equal(t, []model.Task{
					{ID: 1, Text: "Task 1"},
					{ID: 3, Text: "Task 3", Done: true},
				}, tasks)

				_, err = repo.GetTask(ctx, 2)
				assert.True(t, errors.Is(err, model.ErrNotFound))

				return nil
			},
		},

		"Deleting a missing task should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				return repo.DeleteTask(ctx, 42)
			},
			expErr: true,
		},

		"Toggling twice should restore the done flag": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "Test task")
				require.NoError(t, err)

				got, err := repo.ToggleTask(ctx, 1)
				require.NoError(t, err)
				assert.True(t, got.Done)

				got, err = repo.ToggleTask(ctx, 1)
				require.NoError(t, err)
				assert.False(t, got.Done)

				return nil
			},
		},

		"Toggling a missing task should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.ToggleTask(ctx, 1)
				return err
			},
			expErr: true,
		},

		"Updating the text of a task should keep its done flag": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "Original")
				require.NoError(t, err)
				_, err = repo.ToggleTask(ctx, 1)
				require.NoError(t, err)

				updated, err := repo.UpdateTaskText(ctx, 1, " Updated ")
				require.NoError(t, err)
				assert.Equal(t, &model.Task{ID: 1, Text: "Updated", Done: true}, updated)

				got, err := repo.GetTask(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, model.Task{ID: 1, Text: "Updated", Done: true}, *got)

				return nil
			},
		},

		"Updating the text of a missing task should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.UpdateTaskText(ctx, 7, "Updated")
				assert.True(t, errors.Is(err, model.ErrNotFound))
				return err
			},
			expErr: true,
		},

		"Updating with an empty text should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "Original")
				require.NoError(t, err)

				_, err = repo.UpdateTaskText(ctx, 1, "  ")
				assert.True(t, errors.Is(err, model.ErrNotValid))
				return err
			},
			expErr: true,
		},

		"Returned tasks should be copies": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) error {
				_, err := repo.CreateTask(ctx, "Original")
				require.NoError(t, err)

				got, err := repo.GetTask(ctx, 1)
				require.NoError(t, err)
				got.Text = "mutated"

				again, err := repo.GetTask(ctx, 1)
				require.NoError(t, err)
				assert.Equal(t, "Original", again.Text)

				return nil
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)

			err := test.actions(context.Background(), t, repo)

			if test.expErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepositoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.CreateTask(ctx, "concurrent")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, workers)

	seen := map[int]bool{}
	for _, tk := range tasks {
		assert.False(t, seen[tk.ID], "duplicated id %d", tk.ID)
		seen[tk.ID] = true
	}
}
