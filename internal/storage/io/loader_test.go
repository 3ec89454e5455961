package io

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/model"
)

func TestSeedYAMLRepository_GetSeedTasks(t *testing.T) {
	tests := map[string]struct {
		fs       fstest.MapFS
		path     string
		expTasks []model.Task
		expErr   bool
		errMsg   string
	}{
		"Valid seed should load successfully": {
			fs: fstest.MapFS{
				"seed.yaml": &fstest.MapFile{
					Data: []byte(`tasks:
  - text: Buy groceries
  - text: "  Call mom  "
    done: true
`),
				},
			},
			path: "seed.yaml",
			expTasks: []model.Task{
				{Text: "Buy groceries"},
				{Text: "Call mom", Done: true},
			},
		},
		"Empty seed should load successfully": {
			fs: fstest.MapFS{
				"empty.yaml": &fstest.MapFile{
					Data: []byte(`---
`),
				},
			},
			path:     "empty.yaml",
			expTasks: []model.Task{},
		},
		"Task without text should fail": {
			fs: fstest.MapFS{
				"seed.yaml": &fstest.MapFile{
					Data: []byte(`tasks:
  - text: Buy groceries
  - done: true
`),
				},
			},
			path:   "seed.yaml",
			expErr: true,
			errMsg: "tasks[1]: text is required",
		},
		"Invalid YAML should fail": {
			fs: fstest.MapFS{
				"seed.yaml": &fstest.MapFile{
					Data: []byte(`tasks: [`),
				},
			},
			path:   "seed.yaml",
			expErr: true,
			errMsg: "parsing YAML",
		},
		"Missing file should fail": {
			fs:     fstest.MapFS{},
			path:   "missing.yaml",
			expErr: true,
			errMsg: "reading seed file",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo := NewSeedYAMLRepository(test.fs)

			tasks, err := repo.GetSeedTasks(context.Background(), test.path)

			if test.expErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.errMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expTasks, tasks)
			}
		})
	}
}
