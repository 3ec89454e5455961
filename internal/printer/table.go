package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/slok/todo/internal/model"
)

// TablePrinter prints task information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints tasks in a table format.
func (t *TablePrinter) PrintList(tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(t.writer, "No tasks found")
		return err
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)

	// Print header
	fmt.Fprintln(tw, "ID\tSTATUS\tTEXT")

	// Print rows
	for _, task := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", task.ID, statusText(task.Done), task.Text)
	}

	return tw.Flush()
}

// PrintTask prints the detail of a task.
func (t *TablePrinter) PrintTask(task model.Task) error {
	fmt.Fprintf(t.writer, "ID:      %d\n", task.ID)
	fmt.Fprintf(t.writer, "Status:  %s\n", statusText(task.Done))
	_, err := fmt.Fprintf(t.writer, "Text:    %s\n", task.Text)
	return err
}

// PrintMessage prints a simple message.
func (t *TablePrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(t.writer, msg)
	return err
}

func statusText(done bool) string {
	if done {
		return string(model.StatusFilterCompleted)
	}
	return string(model.StatusFilterActive)
}
