package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/slok/todo/internal/app/add"
	"github.com/slok/todo/internal/app/complete"
	"github.com/slok/todo/internal/app/edit"
	"github.com/slok/todo/internal/app/get"
	"github.com/slok/todo/internal/app/list"
	"github.com/slok/todo/internal/app/remove"
	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/server/view"
	"github.com/slok/todo/internal/storage"
)

// Renderer renders the HTML pages.
type Renderer interface {
	RenderIndex(w io.Writer, data view.IndexData) error
	RenderEdit(w io.Writer, data view.EditData) error
}

// Config is the configuration for the HTTP server.
type Config struct {
	ListenAddr string
	Repository storage.Repository
	// Renderer defaults to the embedded HTML templates.
	Renderer        Renderer
	ShutdownTimeout time.Duration
	Logger          log.Logger
}

func (c *Config) defaults() error {
	if c.ListenAddr == "" {
		c.ListenAddr = ":5000"
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Renderer == nil {
		r, err := view.NewHTMLRenderer()
		if err != nil {
			return fmt.Errorf("could not create renderer: %w", err)
		}
		c.Renderer = r
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "server.HTTP"})
	return nil
}

// Server serves the to-do web application and its JSON API.
type Server struct {
	server          *http.Server
	renderer        Renderer
	shutdownTimeout time.Duration
	logger          log.Logger

	listSvc     *list.Service
	addSvc      *add.Service
	completeSvc *complete.Service
	removeSvc   *remove.Service
	editSvc     *edit.Service
	getSvc      *get.Service
}

// New creates a new HTTP server.
func New(cfg Config) (*Server, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	s := &Server{
		renderer:        cfg.Renderer,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          cfg.Logger,
	}

	var err error
	if s.listSvc, err = list.NewService(list.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create list service: %w", err)
	}
	if s.addSvc, err = add.NewService(add.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create add service: %w", err)
	}
	if s.completeSvc, err = complete.NewService(complete.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create complete service: %w", err)
	}
	if s.removeSvc, err = remove.NewService(remove.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create remove service: %w", err)
	}
	if s.editSvc, err = edit.NewService(edit.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create edit service: %w", err)
	}
	if s.getSvc, err = get.NewService(get.ServiceConfig{Repository: cfg.Repository, Logger: cfg.Logger}); err != nil {
		return nil, fmt.Errorf("could not create get service: %w", err)
	}

	s.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.withRequestLogging(s.routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler returns the HTTP handler with all the routes.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Run starts the server and blocks until ctx is cancelled. It performs a
// graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("HTTP server listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		s.logger.Infof("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown error: %w", err)
		}
		return nil
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /add", s.handleAdd)
	mux.HandleFunc("GET /complete/{id}", s.handleComplete)
	mux.HandleFunc("GET /delete/{id}", s.handleDelete)
	mux.HandleFunc("GET /edit/{id}", s.handleEditForm)
	mux.HandleFunc("POST /edit/{id}", s.handleEdit)
	mux.HandleFunc("GET /clear_search", s.handleClearSearch)
	mux.HandleFunc("GET /api/todos", s.handleAPIListTodos)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return mux
}
