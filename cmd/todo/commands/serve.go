package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/todo/internal/app/seed"
	"github.com/slok/todo/internal/conventions"
	"github.com/slok/todo/internal/server"
	"github.com/slok/todo/internal/storage"
	storageio "github.com/slok/todo/internal/storage/io"
	"github.com/slok/todo/internal/storage/memory"
	"github.com/slok/todo/internal/storage/sqlite"
)

const (
	storageMemory = "memory"
	storageSQLite = "sqlite"
)

// ServeCommand runs the to-do web application.
type ServeCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	host     string
	port     int
	storage  string
	dbPath   string
	seedFile string
}

// NewServeCommand returns the serve command.
func NewServeCommand(rootCmd *RootCommand, app *kingpin.Application) *ServeCommand {
	c := &ServeCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("serve", "Run the to-do web application.").Default()
	c.Cmd.Flag("host", "Address to bind the HTTP server to.").Default(conventions.DefaultHost).StringVar(&c.host)
	c.Cmd.Flag("port", "Port to listen on.").Default(strconv.Itoa(conventions.DefaultPort)).IntVar(&c.port)
	c.Cmd.Flag("storage", "Task storage backend, memory loses all tasks on restart.").Default(storageMemory).EnumVar(&c.storage, storageMemory, storageSQLite)
	c.Cmd.Flag("db-path", "Path to the SQLite database file (sqlite storage only).").Default(conventions.DBPath(homedir.HomeDir())).StringVar(&c.dbPath)
	c.Cmd.Flag("seed-file", "YAML file with tasks to load on start, only when the storage has no tasks.").StringVar(&c.seedFile)

	return c
}

func (c ServeCommand) Name() string { return c.Cmd.FullCommand() }

func (c ServeCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	if c.port <= 0 || c.port > 65535 {
		return fmt.Errorf("invalid port %d", c.port)
	}

	repo, closeRepo, err := c.newRepository(ctx)
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}
	defer closeRepo()

	if c.seedFile != "" {
		if err := c.seed(ctx, repo); err != nil {
			return err
		}
	}

	srv, err := server.New(server.Config{
		ListenAddr: net.JoinHostPort(c.host, strconv.Itoa(c.port)),
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create server: %w", err)
	}

	logger.Infof("serving tasks with %s storage", c.storage)
	return srv.Run(ctx)
}

func (c ServeCommand) newRepository(ctx context.Context) (storage.Repository, func(), error) {
	logger := c.rootCmd.Logger

	switch c.storage {
	case storageSQLite:
		repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
			DBPath: c.dbPath,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := repo.Close(); err != nil {
				logger.Errorf("could not close database: %s", err)
			}
		}
		return repo, closeFn, nil
	default:
		repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: logger})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func (c ServeCommand) seed(ctx context.Context, repo storage.Repository) error {
	// Persistent storages keep the seeded tasks between starts.
	current, err := repo.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}
	if len(current) > 0 {
		c.rootCmd.Logger.Infof("storage already has %d tasks, skipping seed file", len(current))
		return nil
	}

	seedPath, err := filepath.Abs(c.seedFile)
	if err != nil {
		return fmt.Errorf("could not resolve seed file path: %w", err)
	}

	seedRepo := storageio.NewSeedYAMLRepository(os.DirFS(filepath.Dir(seedPath)))
	tasks, err := seedRepo.GetSeedTasks(ctx, filepath.Base(seedPath))
	if err != nil {
		return fmt.Errorf("could not load seed file: %w", err)
	}

	svc, err := seed.NewService(seed.ServiceConfig{
		Repository: repo,
		Logger:     c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if _, err := svc.Run(ctx, seed.Request{Tasks: tasks}); err != nil {
		return fmt.Errorf("could not seed tasks: %w", err)
	}

	return nil
}
