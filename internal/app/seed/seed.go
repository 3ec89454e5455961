package seed

import (
	"context"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the seed service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Seed"})
	return nil
}

// Service loads a batch of tasks into the registry.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new seed service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the seed request parameters.
type Request struct {
	// Tasks are created in order, their IDs are ignored.
	Tasks []model.Task
}

// Run creates the tasks keeping their completion and returns how many were created.
// Tasks with empty text are skipped.
func (s *Service) Run(ctx context.Context, req Request) (int, error) {
	created := 0
	for _, t := range req.Tasks {
		text := model.NormalizeText(t.Text)
		if text == "" {
			continue
		}

		task, err := s.repo.CreateTask(ctx, text)
		if err != nil {
			return created, fmt.Errorf("could not create task: %w", err)
		}

		if t.Done {
			if _, err := s.repo.ToggleTask(ctx, task.ID); err != nil {
				return created, fmt.Errorf("could not complete task %d: %w", task.ID, err)
			}
		}
		created++
	}

	s.logger.Infof("seeded %d tasks", created)
	return created, nil
}
