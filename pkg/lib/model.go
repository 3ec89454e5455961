package lib

import (
	"errors"

	"github.com/slok/todo/internal/model"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned on invalid input or configuration.
	ErrNotValid = errors.New("not valid")
)

// StorageType identifies where the client keeps the tasks.
type StorageType string

const (
	// StorageMemory keeps tasks in process memory.
	StorageMemory StorageType = "memory"
	// StorageSQLite keeps tasks in a SQLite database.
	StorageSQLite StorageType = "sqlite"
)

// Task is a to-do item.
type Task struct {
	// ID is assigned by the registry and never reused.
	ID   int
	Text string
	Done bool
}

// Filter narrows a task list by completion.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ListTasksOpts are the optional settings for [Client.ListTasks].
type ListTasksOpts struct {
	// Search keeps tasks whose text contains it, case-insensitive.
	Search string
	// Filter defaults to [FilterAll].
	Filter Filter
}

// Stats are the counters over the whole registry.
type Stats struct {
	Total     int
	Active    int
	Completed int
}

// TaskList is the result of [Client.ListTasks].
type TaskList struct {
	// Tasks are the tasks that matched, in insertion order.
	Tasks []Task
	// Stats are computed over all the tasks, not only the matched ones.
	Stats Stats
}

// ChangeResult tells if a mutating operation changed the registry.
type ChangeResult string

const (
	ChangeApplied ChangeResult = "applied"
	ChangeIgnored ChangeResult = "ignored"
)

func fromInternalTask(t model.Task) Task {
	return Task{ID: t.ID, Text: t.Text, Done: t.Done}
}

func fromInternalTaskPtr(t *model.Task) *Task {
	if t == nil {
		return nil
	}
	task := fromInternalTask(*t)
	return &task
}

func fromInternalTaskList(ts []model.Task) []Task {
	result := make([]Task, len(ts))
	for i, t := range ts {
		result[i] = fromInternalTask(t)
	}
	return result
}

func toInternalTaskList(ts []Task) []model.Task {
	result := make([]model.Task, len(ts))
	for i, t := range ts {
		result[i] = model.Task{ID: t.ID, Text: t.Text, Done: t.Done}
	}
	return result
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case errors.Is(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
