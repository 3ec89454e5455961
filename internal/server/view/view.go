// Package view renders the HTML pages of the to-do web application.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/slok/todo/internal/model"
)

//go:embed templates/*.html
var templateFiles embed.FS

// IndexData is the data of the task list page.
type IndexData struct {
	// Tasks are the tasks to show, already filtered.
	Tasks []model.Task
	// Stats are the counters of the whole registry.
	Stats  model.TaskStats
	Search string
	Filter string
}

// EditData is the data of the edit page.
type EditData struct {
	// Task is nil when the task does not exist.
	Task   *model.Task
	Search string
	Filter string
}

// HTMLRenderer renders pages using the embedded templates.
type HTMLRenderer struct {
	index *template.Template
	edit  *template.Template
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	index, err := template.ParseFS(templateFiles, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse index template: %w", err)
	}

	edit, err := template.ParseFS(templateFiles, "templates/edit.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse edit template: %w", err)
	}

	return &HTMLRenderer{index: index, edit: edit}, nil
}

// RenderIndex renders the task list page.
func (h *HTMLRenderer) RenderIndex(w io.Writer, data IndexData) error {
	return h.index.Execute(w, data)
}

// RenderEdit renders the task edit page.
func (h *HTMLRenderer) RenderEdit(w io.Writer, data EditData) error {
	return h.edit.Execute(w, data)
}
