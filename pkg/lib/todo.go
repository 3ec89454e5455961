package lib

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"k8s.io/client-go/util/homedir"

	"github.com/slok/todo/internal/app/add"
	"github.com/slok/todo/internal/app/complete"
	"github.com/slok/todo/internal/app/edit"
	"github.com/slok/todo/internal/app/get"
	"github.com/slok/todo/internal/app/list"
	"github.com/slok/todo/internal/app/remove"
	"github.com/slok/todo/internal/app/seed"
	"github.com/slok/todo/internal/conventions"
	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/server"
	"github.com/slok/todo/internal/storage"
	"github.com/slok/todo/internal/storage/memory"
	"github.com/slok/todo/internal/storage/sqlite"
)

// Config configures the SDK client. An empty Config{} is valid and keeps the
// tasks in memory.
type Config struct {
	// Storage defaults to [StorageMemory].
	Storage StorageType

	// DBPath is the SQLite database path, only used with [StorageSQLite].
	// Default: ~/.todo/todo.db.
	DBPath string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.Storage == "" {
		c.Storage = StorageMemory
	}
	if c.Storage != StorageMemory && c.Storage != StorageSQLite {
		return fmt.Errorf("unsupported storage type %q: %w", c.Storage, ErrNotValid)
	}

	if c.DBPath == "" {
		c.DBPath = conventions.DBPath(homedir.HomeDir())
	}
	c.DBPath = filepath.Clean(c.DBPath)

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for managing tasks programmatically.
//
// Create a Client with [New] and release its resources with [Client.Close].
type Client struct {
	repo    storage.Repository
	logger  log.Logger
	closeFn func() error

	listSvc     *list.Service
	addSvc      *add.Service
	completeSvc *complete.Service
	removeSvc   *remove.Service
	editSvc     *edit.Service
	getSvc      *get.Service
	seedSvc     *seed.Service
}

// New creates a new SDK client.
//
// The caller must call [Client.Close] when done. Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{logger: cfg.Logger}

	switch cfg.Storage {
	case StorageSQLite:
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: cfg.DBPath,
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create repository: %w", err)
		}
		c.repo = repo
		c.closeFn = repo.Close
	default:
		repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: cfg.Logger})
		if err != nil {
			return nil, fmt.Errorf("could not create repository: %w", err)
		}
		c.repo = repo
	}

	if err := c.setupServices(); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

func (c *Client) setupServices() (err error) {
	if c.listSvc, err = list.NewService(list.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create list service: %w", err)
	}
	if c.addSvc, err = add.NewService(add.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create add service: %w", err)
	}
	if c.completeSvc, err = complete.NewService(complete.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create complete service: %w", err)
	}
	if c.removeSvc, err = remove.NewService(remove.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create remove service: %w", err)
	}
	if c.editSvc, err = edit.NewService(edit.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create edit service: %w", err)
	}
	if c.getSvc, err = get.NewService(get.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create get service: %w", err)
	}
	if c.seedSvc, err = seed.NewService(seed.ServiceConfig{Repository: c.repo, Logger: c.logger}); err != nil {
		return fmt.Errorf("could not create seed service: %w", err)
	}
	return nil
}

// Close releases resources held by the client, including the database connection.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// Handler returns the todo web application (HTML pages and JSON API) served
// from this client's registry.
func (c *Client) Handler() (http.Handler, error) {
	srv, err := server.New(server.Config{
		Repository: c.repo,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return srv.Handler(), nil
}

// ListTasks returns the tasks matching the options (all of them when opts is nil)
// and the stats of the whole registry.
func (c *Client) ListTasks(ctx context.Context, opts *ListTasksOpts) (*TaskList, error) {
	req := list.Request{StatusFilter: model.StatusFilterAll}
	if opts != nil {
		req.Search = opts.Search
		req.StatusFilter = model.ParseStatusFilter(string(opts.Filter))
	}

	resp, err := c.listSvc.Run(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}

	return &TaskList{
		Tasks: fromInternalTaskList(resp.Tasks),
		Stats: Stats{
			Total:     resp.Stats.Total,
			Active:    resp.Stats.Active,
			Completed: resp.Stats.Completed,
		},
	}, nil
}

// GetTask returns a task by ID.
//
// Returns [ErrNotFound] if the task does not exist.
func (c *Client) GetTask(ctx context.Context, id int) (*Task, error) {
	t, err := c.getSvc.Run(ctx, get.Request{ID: id})
	if err != nil {
		return nil, mapError(err)
	}
	return fromInternalTaskPtr(t), nil
}

// AddTask adds a new active task. The returned task is nil when the text is empty.
func (c *Client) AddTask(ctx context.Context, text string) (*Task, error) {
	resp, err := c.addSvc.Run(ctx, add.Request{Text: text})
	if err != nil {
		return nil, mapError(err)
	}
	return fromInternalTaskPtr(resp.Task), nil
}

// ToggleTask flips the completion of a task.
func (c *Client) ToggleTask(ctx context.Context, id int) (ChangeResult, error) {
	resp, err := c.completeSvc.Run(ctx, complete.Request{ID: id})
	if err != nil {
		return "", mapError(err)
	}
	return ChangeResult(resp.Result), nil
}

// EditTask replaces the text of a task, keeping its completion.
func (c *Client) EditTask(ctx context.Context, id int, text string) (ChangeResult, error) {
	resp, err := c.editSvc.Run(ctx, edit.Request{ID: id, Text: text})
	if err != nil {
		return "", mapError(err)
	}
	return ChangeResult(resp.Result), nil
}

// RemoveTask deletes a task.
func (c *Client) RemoveTask(ctx context.Context, id int) (ChangeResult, error) {
	resp, err := c.removeSvc.Run(ctx, remove.Request{ID: id})
	if err != nil {
		return "", mapError(err)
	}
	return ChangeResult(resp.Result), nil
}

// ImportTasks adds the tasks keeping their completion, their IDs are ignored and
// assigned by the registry. Returns how many were added.
func (c *Client) ImportTasks(ctx context.Context, tasks []Task) (int, error) {
	n, err := c.seedSvc.Run(ctx, seed.Request{Tasks: toInternalTaskList(tasks)})
	if err != nil {
		return n, mapError(err)
	}
	return n, nil
}
