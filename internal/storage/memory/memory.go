package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
// State is lost when the process ends.
type Repository struct {
	tasks  map[int]model.Task
	order  []int
	lastID int
	mu     sync.RWMutex
	logger log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		tasks:  make(map[int]model.Task),
		logger: cfg.Logger,
	}, nil
}

// CreateTask stores a new active task with the next ID.
func (r *Repository) CreateTask(ctx context.Context, text string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := model.Task{ID: r.lastID + 1, Text: text}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	r.lastID = t.ID
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	r.logger.Debugf("Created task in repository: %d", t.ID)

	return &t, nil
}

// GetTask retrieves a task by ID.
func (r *Repository) GetTask(ctx context.Context, id int) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	}

	return &t, nil
}

// ListTasks returns all tasks in insertion order.
func (r *Repository) ListTasks(ctx context.Context) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id])
	}

	return tasks, nil
}

// UpdateTaskText replaces the text of an existing task under the lock, keeping its done flag.
func (r *Repository) UpdateTaskText(ctx context.Context, id int, text string) (*model.Task, error) {
	text = model.NormalizeText(text)
	if text == "" {
		return nil, fmt.Errorf("task text is required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	}

	t.Text = text
	r.tasks[id] = t
	r.logger.Debugf("Updated task text in repository: %d", id)

	return &t, nil
}

// ToggleTask flips the done flag of a task and returns the result.
func (r *Repository) ToggleTask(ctx context.Context, id int) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	}

	t.Done = !t.Done
	r.tasks[id] = t
	r.logger.Debugf("Toggled task in repository: %d (done: %t)", id, t.Done)

	return &t, nil
}

// DeleteTask deletes a task.
func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	}

	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.logger.Debugf("Deleted task from repository: %d", id)

	return nil
}
