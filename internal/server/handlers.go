package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/slok/todo/internal/app/add"
	"github.com/slok/todo/internal/app/complete"
	"github.com/slok/todo/internal/app/edit"
	"github.com/slok/todo/internal/app/get"
	"github.com/slok/todo/internal/app/list"
	"github.com/slok/todo/internal/app/remove"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/server/view"
)

// taskJSON is the API representation of a task.
type taskJSON struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	search, filter := queryParams(r)

	res, err := s.listSvc.Run(r.Context(), list.Request{Search: search, StatusFilter: filter})
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	s.render(w, r, func(buf *bytes.Buffer) error {
		return s.renderer.RenderIndex(buf, view.IndexData{
			Tasks:  res.Tasks,
			Stats:  res.Stats,
			Search: search,
			Filter: string(filter),
		})
	})
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	_, err := s.addSvc.Run(r.Context(), add.Request{Text: r.PostFormValue("todo")})
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := s.completeSvc.Run(r.Context(), complete.Request{ID: id}); err != nil {
		s.internalError(w, r, err)
		return
	}

	redirectToList(w, r)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := s.removeSvc.Run(r.Context(), remove.Request{ID: id}); err != nil {
		s.internalError(w, r, err)
		return
	}

	redirectToList(w, r)
}

func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	task, err := s.getSvc.Run(r.Context(), get.Request{ID: id})
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		s.internalError(w, r, err)
		return
	}

	search, filter := queryParams(r)
	s.render(w, r, func(buf *bytes.Buffer) error {
		return s.renderer.RenderEdit(buf, view.EditData{
			Task:   task,
			Search: search,
			Filter: string(filter),
		})
	})
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, err := s.editSvc.Run(r.Context(), edit.Request{ID: id, Text: r.PostFormValue("text")})
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	redirectToList(w, r)
}

// handleClearSearch drops both the search and the status filter.
func (s *Server) handleClearSearch(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleAPIListTodos(w http.ResponseWriter, r *http.Request) {
	search, filter := queryParams(r)

	res, err := s.listSvc.Run(r.Context(), list.Request{Search: search, StatusFilter: filter})
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	items := make([]taskJSON, 0, len(res.Tasks))
	for _, t := range res.Tasks {
		items = append(items, taskJSON{ID: t.ID, Text: t.Text, Done: t.Done})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		s.logger.WithCtxValues(r.Context()).Errorf("could not write JSON response: %s", err)
	}
}

// render buffers the page so template errors can still be answered with a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, fn func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.WithCtxValues(r.Context()).Errorf("%s %s failed: %s", r.Method, r.URL.Path, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// redirectToList redirects to the task list keeping the search and filter of the request.
func redirectToList(w http.ResponseWriter, r *http.Request) {
	search, filter := queryParams(r)
	q := url.Values{}
	q.Set("search", search)
	q.Set("filter", string(filter))
	http.Redirect(w, r, "/?"+q.Encode(), http.StatusFound)
}

func queryParams(r *http.Request) (search string, filter model.StatusFilter) {
	q := r.URL.Query()
	return q.Get("search"), model.ParseStatusFilter(q.Get("filter"))
}

// pathID returns the task ID path segment, only positive decimal numbers are valid.
// IDs start at 1, so 0 is answered with a 404 like any other malformed ID.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return int(id), true
}
