package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

type AddCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	text []string
}

// NewAddCommand returns the add command.
func NewAddCommand(rootCmd *RootCommand, app *kingpin.Application) *AddCommand {
	c := &AddCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("add", "Add a task to a running server.")
	c.Cmd.Arg("text", "Task text (can be multiple words).").Required().StringsVar(&c.text)

	return c
}

func (c AddCommand) Name() string { return c.Cmd.FullCommand() }

func (c AddCommand) Run(ctx context.Context) error {
	cli, err := c.rootCmd.newClient()
	if err != nil {
		return err
	}

	text := strings.Join(c.text, " ")
	if err := cli.AddTask(ctx, text); err != nil {
		return fmt.Errorf("could not add task: %w", err)
	}

	return c.rootCmd.newPrinter().PrintMessage(fmt.Sprintf("task %q added", text))
}
