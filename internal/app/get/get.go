package get

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the get service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Get"})
	return nil
}

// Service gets single tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new get service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the get request parameters.
type Request struct {
	ID int
}

// Run returns the task with the ID, model.ErrNotFound is returned wrapped when missing.
func (s *Service) Run(ctx context.Context, req Request) (*model.Task, error) {
	task, err := s.repo.GetTask(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}

	return task, nil
}
