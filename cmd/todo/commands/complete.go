package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

type CompleteCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id int
}

// NewCompleteCommand returns the complete command.
func NewCompleteCommand(rootCmd *RootCommand, app *kingpin.Application) *CompleteCommand {
	c := &CompleteCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("complete", "Toggle the completion of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().IntVar(&c.id)

	return c
}

func (c CompleteCommand) Name() string { return c.Cmd.FullCommand() }

func (c CompleteCommand) Run(ctx context.Context) error {
	cli, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	if err := cli.ToggleTask(ctx, c.id); err != nil {
		return fmt.Errorf("could not toggle task: %w", err)
	}

	return c.rootCmd.newPrinter().PrintMessage(fmt.Sprintf("task %d toggled", c.id))
}
