package list

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.List"})

	return nil
}

// Service lists tasks with optional search and status filtering.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the list request parameters.
type Request struct {
	// Search is an optional case-insensitive substring the task text must contain.
	Search string
	// StatusFilter narrows by completion, the zero value lists all.
	StatusFilter model.StatusFilter
}

// Response is the list result.
type Response struct {
	// Tasks are the tasks matching the request, in registry order.
	Tasks []model.Task
	// Stats are computed over the whole registry, not only the matched tasks.
	Stats model.TaskStats
}

// Run lists the tasks, applying the search first and then the status filter.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	s.logger.Debugf("listing tasks with search %q and filter %q", req.Search, req.StatusFilter)

	all, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}

	filtered := make([]model.Task, 0, len(all))
	for _, t := range all {
		if t.Matches(req.Search, req.StatusFilter) {
			filtered = append(filtered, t)
		}
	}

	s.logger.Debugf("found %d of %d tasks", len(filtered), len(all))
	return &Response{
		Tasks: filtered,
		Stats: model.NewTaskStats(all),
	}, nil
}
