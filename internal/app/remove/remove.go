package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the remove service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Remove"})
	return nil
}

// Service handles task removal.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new remove service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the remove request parameters.
type Request struct {
	ID int
}

// Response is the remove result.
type Response struct {
	Result model.ChangeResult
}

// Run removes a task by ID. Unknown IDs are ignored.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	err := s.repo.DeleteTask(ctx, req.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debugf("ignoring removal of missing task %d", req.ID)
			return &Response{Result: model.ChangeResultIgnored}, nil
		}
		return nil, fmt.Errorf("could not delete task: %w", err)
	}

	s.logger.Infof("removed task %d", req.ID)
	return &Response{Result: model.ChangeResultApplied}, nil
}
