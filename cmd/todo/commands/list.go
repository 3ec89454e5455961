package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/model"
)

type ListCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	search       string
	statusFilter string
}

// NewListCommand returns the list command.
func NewListCommand(rootCmd *RootCommand, app *kingpin.Application) *ListCommand {
	c := &ListCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("list", "List the tasks of a running server.")
	c.Cmd.Flag("search", "Only tasks containing this text (case-insensitive).").StringVar(&c.search)
	c.Cmd.Flag("filter", "Filter by status (all, active, completed).").Default(string(model.StatusFilterAll)).
		EnumVar(&c.statusFilter, string(model.StatusFilterAll), string(model.StatusFilterActive), string(model.StatusFilterCompleted))

	return c
}

func (c ListCommand) Name() string { return c.Cmd.FullCommand() }

func (c ListCommand) Run(ctx context.Context) error {
	cli, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	tasks, err := cli.ListTasks(ctx, c.search, model.ParseStatusFilter(c.statusFilter))
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	if err := c.rootCmd.newPrinter().PrintList(tasks); err != nil {
		return fmt.Errorf("could not print list: %w", err)
	}

	return nil
}
