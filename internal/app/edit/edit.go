package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage"
)

// ServiceConfig is the configuration for the edit service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Edit"})
	return nil
}

// Service edits the text of tasks.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new edit service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Request represents the edit request parameters.
type Request struct {
	ID   int
	Text string
}

// Response is the edit result.
type Response struct {
	Result model.ChangeResult
	// Task is the edited task, nil when ignored.
	Task *model.Task
}

// Run replaces the text of a task keeping its completion. Empty texts and
// unknown IDs are ignored.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	text := model.NormalizeText(req.Text)
	if text == "" {
		s.logger.Debugf("ignoring edit of task %d with empty text", req.ID)
		return &Response{Result: model.ChangeResultIgnored}, nil
	}

	// Only the text is written so a concurrent toggle is never reverted.
	task, err := s.repo.UpdateTaskText(ctx, req.ID, text)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debugf("ignoring edit of missing task %d", req.ID)
			return &Response{Result: model.ChangeResultIgnored}, nil
		}
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	s.logger.Infof("edited task %d", task.ID)
	return &Response{Result: model.ChangeResultApplied, Task: task}, nil
}
