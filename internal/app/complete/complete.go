package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the complete service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Complete"})
	return nil
}

// Service toggles the completion of tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new complete service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the complete request parameters.
type Request struct {
	ID int
}

// Response is the complete result.
type Response struct {
	Result model.ChangeResult
	// Task is the task after the toggle, nil when ignored.
	Task *model.Task
}

// Run flips the done flag of the task. Unknown IDs are ignored.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	task, err := s.repo.ToggleTask(ctx, req.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debugf("ignoring toggle of missing task %d", req.ID)
			return &Response{Result: model.ChangeResultIgnored}, nil
		}
		return nil, fmt.Errorf("could not toggle task: %w", err)
	}

	s.logger.Infof("toggled task %d (done: %t)", task.ID, task.Done)
	return &Response{Result: model.ChangeResultApplied, Task: task}, nil
}
