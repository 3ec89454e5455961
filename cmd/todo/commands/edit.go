package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

type EditCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id   int
	text []string
}

// NewEditCommand returns the edit command.
func NewEditCommand(rootCmd *RootCommand, app *kingpin.Application) *EditCommand {
	c := &EditCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("edit", "Replace the text of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().IntVar(&c.id)
	c.Cmd.Arg("text", "New task text (can be multiple words).").Required().StringsVar(&c.text)

	return c
}

func (c EditCommand) Name() string { return c.Cmd.FullCommand() }

func (c EditCommand) Run(ctx context.Context) error {
	cli, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	if err := cli.EditTask(ctx, c.id, strings.Join(c.text, " ")); err != nil {
		return fmt.Errorf("could not edit task: %w", err)
	}

	return c.rootCmd.newPrinter().PrintMessage(fmt.Sprintf("task %d edited", c.id))
}
