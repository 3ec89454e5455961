package add

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the add service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Add"})
	return nil
}

// Service adds tasks to the registry.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new add service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the add request parameters.
type Request struct {
	Text string
}

// Response is the add result.
type Response struct {
	Result model.ChangeResult
	// Task is the created task, nil when ignored.
	Task *model.Task
}

// Run appends a new active task. Empty or blank texts are ignored.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	text := model.NormalizeText(req.Text)
	if text == "" {
		s.logger.Debugf("ignoring task with empty text")
		return &Response{Result: model.ChangeResultIgnored}, nil
	}

	task, err := s.repo.CreateTask(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("could not create task: %w", err)
	}

	s.logger.Infof("added task %d", task.ID)
	return &Response{Result: model.ChangeResultApplied, Task: task}, nil
}
