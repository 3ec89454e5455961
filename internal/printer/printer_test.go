package printer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/printer"
)

func tasksFixture() []model.Task {
	return []model.Task{
		{ID: 1, Text: "Buy groceries", Done: true},
		{ID: 12, Text: "Write report"},
	}
}

func TestTablePrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	err := p.PrintList(tasksFixture())
	require.NoError(t, err)

	exp := "ID  STATUS     TEXT\n" +
		"1   completed  Buy groceries\n" +
		"12  active     Write report\n"
	assert.Equal(t, exp, buf.String())
}

func TestTablePrinterPrintEmptyList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintList(nil))
	assert.Equal(t, "No tasks found\n", buf.String())
}

func TestTablePrinterPrintTask(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewTablePrinter(&buf)

	require.NoError(t, p.PrintTask(model.Task{ID: 3, Text: "Call mom"}))

	out := buf.String()
	assert.Contains(t, out, "ID:      3")
	assert.Contains(t, out, "Status:  active")
	assert.Contains(t, out, "Text:    Call mom")
}

func TestJSONPrinterPrintList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintList(tasksFixture()))

	exp := `[
  {
    "id": 1,
    "text": "Buy groceries",
    "done": true
  },
  {
    "id": 12,
    "text": "Write report",
    "done": false
  }
]
`
	assert.Equal(t, exp, buf.String())
}

func TestJSONPrinterPrintEmptyList(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintList(nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestJSONPrinterPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintMessage("task 1 removed"))
	assert.JSONEq(t, `{"message":"task 1 removed"}`, buf.String())
}
