// Package client is an HTTP client for a running to-do server.
//
// Mutations use the same form endpoints as the web UI, a redirect response means
// the request was handled (ignored operations also redirect).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
)

// Config is the configuration for the client.
type Config struct {
	ServerURL  string
	HTTPClient *http.Client
	Logger     log.Logger
}

func (c *Config) defaults() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server url is required")
	}
	if _, err := url.Parse(c.ServerURL); err != nil {
		return fmt.Errorf("invalid server url: %w", err)
	}
	c.ServerURL = strings.TrimSuffix(c.ServerURL, "/")

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "client.HTTP"})
	return nil
}

// Client talks to the to-do server.
type Client struct {
	baseURL string
	http    *http.Client
	logger  log.Logger
}

// New creates a new client.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Copy so redirects are never followed, the redirect is the response.
	hc := *cfg.HTTPClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	return &Client{
		baseURL: cfg.ServerURL,
		http:    &hc,
		logger:  cfg.Logger,
	}, nil
}

type taskJSON struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// ListTasks returns the tasks matching the search and status filter.
func (c *Client) ListTasks(ctx context.Context, search string, filter model.StatusFilter) ([]model.Task, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if filter != "" {
		q.Set("filter", string(filter))
	}

	u := c.baseURL + "/api/todos"
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not list tasks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	var items []taskJSON
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("could not decode tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, model.Task{ID: it.ID, Text: it.Text, Done: it.Done})
	}

	return tasks, nil
}

// AddTask adds a task.
func (c *Client) AddTask(ctx context.Context, text string) error {
	return c.send(ctx, http.MethodPost, "/add", url.Values{"todo": {text}})
}

// ToggleTask flips the completion of a task.
func (c *Client) ToggleTask(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodGet, "/complete/"+strconv.Itoa(id), nil)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodGet, "/delete/"+strconv.Itoa(id), nil)
}

// EditTask replaces the text of a task.
func (c *Client) EditTask(ctx context.Context, id int, text string) error {
	return c.send(ctx, http.MethodPost, "/edit/"+strconv.Itoa(id), url.Values{"text": {text}})
}

func (c *Client) send(ctx context.Context, method, path string, form url.Values) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusFound, http.StatusSeeOther:
		c.logger.Debugf("%s %s redirected to %s", method, path, resp.Header.Get("Location"))
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, model.ErrNotValid)
	default:
		return unexpectedStatus(resp)
	}
}

func unexpectedStatus(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
}
