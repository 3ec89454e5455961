package todo

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/slok/todo/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		c.Binary = "todo"
	}

	// go test changes the CWD to the test package directory, relative paths would break.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("TODO_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("todo binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TODO_INTEGRATION"
		envBinary     = "TODO_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{
		Binary: os.Getenv(envBinary),
	}

	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// Server is a running `todo serve` process.
type Server struct {
	URL  string
	stop func() error
}

// Stop stops the server process.
func (s Server) Stop() error { return s.stop() }

// StartServer runs `todo serve` on a free local port with the extra serve args and
// waits until it is healthy.
func StartServer(ctx context.Context, t *testing.T, config Config, serveArgs ...string) Server {
	t.Helper()

	port := freePort(t)
	args := append([]string{"serve", "--host", "127.0.0.1", "--port", strconv.Itoa(port)}, serveArgs...)
	stop, err := testutils.StartTodo(ctx, nil, config.Binary, args, true)
	require.NoError(t, err)

	srv := Server{URL: fmt.Sprintf("http://127.0.0.1:%d", port), stop: stop}
	require.Eventually(t, func() bool {
		resp, err := http.Get(srv.URL + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond, "server did not become healthy")

	return srv
}

// RunTodoCmd runs a client command against a running server.
func RunTodoCmd(ctx context.Context, config Config, serverURL string, args ...string) (stdout, stderr []byte, err error) {
	fullArgs := append([]string{"--server-url", serverURL}, args...)
	return testutils.RunTodoArgs(ctx, nil, config.Binary, fullArgs, true)
}

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}
