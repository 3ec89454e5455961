package storage

import (
	"context"

	"github.com/slok/todo/internal/model"
)

// Repository is the interface for the task registry persistence.
//
// Implementations own ID assignment: IDs are positive, strictly increasing and
// never reused, even after deletions. Listing returns tasks in insertion order.
type Repository interface {
	CreateTask(ctx context.Context, text string) (*model.Task, error)
	GetTask(ctx context.Context, id int) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	// UpdateTaskText replaces only the text, the done flag is left as stored.
	UpdateTaskText(ctx context.Context, id int, text string) (*model.Task, error)
	ToggleTask(ctx context.Context, id int) (*model.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --name Repository
