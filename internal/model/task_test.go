package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/todo/internal/model"
)

func TestParseStatusFilter(t *testing.T) {
	tests := map[string]struct {
		raw       string
		expFilter model.StatusFilter
	}{
		"Empty should default to all":       {raw: "", expFilter: model.StatusFilterAll},
		"All should be all":                 {raw: "all", expFilter: model.StatusFilterAll},
		"Active should be active":           {raw: "active", expFilter: model.StatusFilterActive},
		"Completed should be completed":     {raw: "completed", expFilter: model.StatusFilterCompleted},
		"Case and spaces should be ignored": {raw: " Completed ", expFilter: model.StatusFilterCompleted},
		"Unknown should default to all":     {raw: "archived", expFilter: model.StatusFilterAll},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expFilter, model.ParseStatusFilter(test.raw))
		})
	}
}

func TestTaskMatches(t *testing.T) {
	tests := map[string]struct {
		task   model.Task
		search string
		filter model.StatusFilter
		exp    bool
	}{
		"No search and all filter should match": {
			task:   model.Task{ID: 1, Text: "Buy groceries"},
			filter: model.StatusFilterAll,
			exp:    true,
		},
		"Search should be case-insensitive": {
			task:   model.Task{ID: 1, Text: "Buy Groceries"},
			search: "gROCER",
			filter: model.StatusFilterAll,
			exp:    true,
		},
		"Search not contained should not match": {
			task:   model.Task{ID: 1, Text: "Buy groceries"},
			search: "xyz",
			filter: model.StatusFilterAll,
			exp:    false,
		},
		"Active filter should reject done tasks": {
			task:   model.Task{ID: 1, Text: "Buy groceries", Done: true},
			filter: model.StatusFilterActive,
			exp:    false,
		},
		"Completed filter should accept done tasks": {
			task:   model.Task{ID: 1, Text: "Buy groceries", Done: true},
			search: "buy",
			filter: model.StatusFilterCompleted,
			exp:    true,
		},
		"Completed filter should reject active tasks": {
			task:   model.Task{ID: 1, Text: "Buy groceries"},
			filter: model.StatusFilterCompleted,
			exp:    false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, test.task.Matches(test.search, test.filter))
		})
	}
}

func TestTaskValidate(t *testing.T) {
	tests := map[string]struct {
		task   model.Task
		expErr bool
	}{
		"Valid task should pass":  {task: model.Task{ID: 1, Text: "a"}},
		"Zero ID should fail":     {task: model.Task{ID: 0, Text: "a"}, expErr: true},
		"Blank text should fail":  {task: model.Task{ID: 2, Text: "  \t"}, expErr: true},
		"Negative ID should fail": {task: model.Task{ID: -1, Text: "a"}, expErr: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.task.Validate()
			if test.expErr {
				assert.True(t, errors.Is(err, model.ErrNotValid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTaskStats(t *testing.T) {
	stats := model.NewTaskStats([]model.Task{
		{ID: 1, Text: "a", Done: true},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c"},
	})

	assert.Equal(t, model.TaskStats{Total: 3, Active: 2, Completed: 1}, stats)
	assert.Equal(t, model.TaskStats{}, model.NewTaskStats(nil))
}
