package model

import (
	"fmt"
	"strings"
)

// Task is a single to-do entry of the registry.
type Task struct {
	// ID is assigned by the registry on creation and is never reused.
	ID   int
	Text string
	Done bool
}

// Validate checks the task is a valid registry entry.
func (t Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("id must be positive: %w", ErrNotValid)
	}
	if NormalizeText(t.Text) == "" {
		return fmt.Errorf("text is required: %w", ErrNotValid)
	}
	return nil
}

// Matches returns true when the task text contains the search query (case-insensitive)
// and the task completion satisfies the status filter.
func (t Task) Matches(search string, filter StatusFilter) bool {
	if search != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(search)) {
		return false
	}
	return filter.Accepts(t.Done)
}

// NormalizeText returns the text as it will be stored, an empty result means the
// text must be ignored.
func NormalizeText(text string) string {
	return strings.TrimSpace(text)
}

// StatusFilter narrows tasks by their completion flag.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter returns the filter for a raw value. Empty and unknown values
// fall back to StatusFilterAll.
func ParseStatusFilter(s string) StatusFilter {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case StatusFilterActive, StatusFilterCompleted:
		return f
	default:
		return StatusFilterAll
	}
}

// Accepts returns true if a task with the done flag passes the filter.
func (f StatusFilter) Accepts(done bool) bool {
	switch f {
	case StatusFilterActive:
		return !done
	case StatusFilterCompleted:
		return done
	default:
		return true
	}
}

// ChangeResult tells if a mutating registry operation had any effect. Unknown IDs and
// empty texts are not errors, they are ignored.
type ChangeResult string

const (
	ChangeResultApplied ChangeResult = "applied"
	ChangeResultIgnored ChangeResult = "ignored"
)

// Applied returns true when the operation changed the registry.
func (r ChangeResult) Applied() bool { return r == ChangeResultApplied }

// TaskStats are the counters over the whole registry.
type TaskStats struct {
	Total     int
	Active    int
	Completed int
}

// NewTaskStats computes the stats of a task list.
func NewTaskStats(tasks []Task) TaskStats {
	stats := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			stats.Completed++
		} else {
			stats.Active++
		}
	}
	return stats
}
