package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/todo/internal/model"
)

// SeedYAMLRepository loads initial registry tasks from YAML files.
type SeedYAMLRepository struct {
	fs fs.FS
}

// NewSeedYAMLRepository creates a new YAML seed repository.
func NewSeedYAMLRepository(filesystem fs.FS) *SeedYAMLRepository {
	return &SeedYAMLRepository{fs: filesystem}
}

// GetSeedTasks loads the tasks of a seed file. Returned tasks have no ID, the
// registry assigns them when they are created.
func (r *SeedYAMLRepository) GetSeedTasks(ctx context.Context, path string) ([]model.Task, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	return seed.toModel(), nil
}

// SeedFile represents the YAML structure of a seed file.
//
//	tasks:
//	  - text: Buy groceries
//	  - text: Call mom
//	    done: true
type SeedFile struct {
	Tasks []SeedTask `yaml:"tasks"`
}

// SeedTask represents the YAML structure of a single seeded task.
type SeedTask struct {
	Text string `yaml:"text"`
	Done bool   `yaml:"done"`
}

func (s SeedFile) validate() error {
	for i, t := range s.Tasks {
		if model.NormalizeText(t.Text) == "" {
			return fmt.Errorf("tasks[%d]: text is required: %w", i, model.ErrNotValid)
		}
	}
	return nil
}

func (s SeedFile) toModel() []model.Task {
	tasks := make([]model.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, model.Task{
			Text: model.NormalizeText(t.Text),
			Done: t.Done,
		})
	}
	return tasks
}
