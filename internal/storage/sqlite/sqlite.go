package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository, the schema is migrated on creation.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	version, err := migrator.Up()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	// Single connection, writes are serialized.
	db.SetMaxOpenConns(1)

	cfg.Logger.Debugf("SQLite repository initialized at %s (schema v%d)", cfg.DBPath, version)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// CreateTask inserts a new active task, the ID comes from the table sequence.
func (r *Repository) CreateTask(ctx context.Context, text string) (*model.Task, error) {
	if model.NormalizeText(text) == "" {
		return nil, fmt.Errorf("invalid task: text is required: %w", model.ErrNotValid)
	}

	result, err := r.db.ExecContext(ctx, `INSERT INTO tasks (text, done) VALUES (?, 0)`, text)
	if err != nil {
		return nil, fmt.Errorf("could not insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get task id: %w", err)
	}

	r.logger.Debugf("Created task in repository: %d", id)
	return &model.Task{ID: int(id), Text: text}, nil
}

// GetTask retrieves a task by ID.
func (r *Repository) GetTask(ctx context.Context, id int) (*model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, text, done FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query task: %w", err)
	}

	return &t, nil
}

// ListTasks returns all tasks in insertion order.
func (r *Repository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, text, done FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tasks, nil
}

// UpdateTaskText replaces the text of a task in a single statement, keeping its done flag.
func (r *Repository) UpdateTaskText(ctx context.Context, id int, text string) (*model.Task, error) {
	text = model.NormalizeText(text)
	if text == "" {
		return nil, fmt.Errorf("task text is required: %w", model.ErrNotValid)
	}

	row := r.db.QueryRowContext(ctx, `UPDATE tasks SET text = ? WHERE id = ? RETURNING id, text, done`, text, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	r.logger.Debugf("Updated task text in repository: %d", id)
	return &t, nil
}

// ToggleTask flips the done flag of a task in a single statement.
func (r *Repository) ToggleTask(ctx context.Context, id int) (*model.Task, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE tasks SET done = NOT done WHERE id = ? RETURNING id, text, done`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not toggle task: %w", err)
	}

	r.logger.Debugf("Toggled task in repository: %d (done: %t)", id, t.Done)
	return &t, nil
}

// DeleteTask deletes a task.
func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}

	if err := checkAffected(result, id); err != nil {
		return err
	}

	r.logger.Debugf("Deleted task from repository: %d", id)
	return nil
}

func checkAffected(result sql.Result, id int) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, model.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var t model.Task
	var done int64
	if err := s.Scan(&t.ID, &t.Text, &done); err != nil {
		return model.Task{}, err
	}
	t.Done = done != 0
	return t, nil
}
