// Package client talks to the items REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"itemdeck/internal/domain/item"

	"github.com/rs/zerolog/log"
)

// Client is a JSON client for a remote item collection rooted at baseURL
// (for example http://localhost:8080/api/items).
type Client struct {
	http    *http.Client
	baseURL string
}

// New creates a client with the given request timeout
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, msg)
}

// List fetches the whole collection.
func (c *Client) List(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []item.Item{}
	}
	return items, nil
}

// Get fetches one record.
func (c *Client) Get(ctx context.Context, id int64) (item.Item, error) {
	var out item.Item
	err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &out)
	return out, err
}

// Create posts a new record and returns it as stored.
func (c *Client) Create(ctx context.Context, in item.Item) (item.Item, error) {
	var out item.Item
	err := c.do(ctx, http.MethodPost, c.baseURL, in, &out)
	return out, err
}

// Update replaces the record identified by in.ID.
func (c *Client) Update(ctx context.Context, in item.Item) (item.Item, error) {
	var out item.Item
	err := c.do(ctx, http.MethodPut, c.itemURL(in.ID), in, &out)
	return out, err
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Msg("making HTTP request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().
		Int("status_code", resp.StatusCode).
		Int("body_length", len(raw)).
		Msg("received HTTP response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
