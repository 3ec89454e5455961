package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/client"
	"github.com/slok/todo/internal/conventions"
	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/printer"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ServerURL  string
	Format     string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("server-url", "URL of the todo server used by the client commands.").Default(conventions.DefaultServerURL).StringVar(&c.ServerURL)
	app.Flag("format", "Output format of the client commands (table, json).").Default(formatTable).EnumVar(&c.Format, formatTable, formatJSON)

	return c
}

func (r RootCommand) newClient() (*client.Client, error) {
	c, err := client.New(client.Config{
		ServerURL: r.ServerURL,
		Logger:    r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create client: %w", err)
	}
	return c, nil
}

func (r RootCommand) newPrinter() printer.Printer {
	if r.Format == formatJSON {
		return printer.NewJSONPrinter(r.Stdout)
	}
	return printer.NewTablePrinter(r.Stdout)
}
