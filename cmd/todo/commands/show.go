package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/todo/internal/model"
)

type ShowCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id int
}

// NewShowCommand returns the show command.
func NewShowCommand(rootCmd *RootCommand, app *kingpin.Application) *ShowCommand {
	c := &ShowCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("show", "Show the detail of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().IntVar(&c.id)

	return c
}

func (c ShowCommand) Name() string { return c.Cmd.FullCommand() }

func (c ShowCommand) Run(ctx context.Context) error {
	cli, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	tasks, err := cli.ListTasks(ctx, "", model.StatusFilterAll)
	if err != nil {
		return fmt.Errorf("could not list tasks: %w", err)
	}

	for _, t := range tasks {
		if t.ID == c.id {
			return c.rootCmd.newPrinter().PrintTask(t)
		}
	}

	return fmt.Errorf("task %d: %w", c.id, model.ErrNotFound)
}
