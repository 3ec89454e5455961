package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default todo data directory name (relative to home).
	DefaultDataDir = ".todo"
	// DBFile is the SQLite database filename inside the data directory.
	DBFile = "todo.db"

	// DefaultHost is the default address the server binds to.
	DefaultHost = "0.0.0.0"
	// DefaultPort is the default port the server listens on.
	DefaultPort = 5000
	// DefaultServerURL is the default server the client commands talk to.
	DefaultServerURL = "http://127.0.0.1:5000"
)

// DBPath returns the default SQLite database path for a home directory.
func DBPath(homeDir string) string {
	return filepath.Join(homeDir, DefaultDataDir, DBFile)
}
