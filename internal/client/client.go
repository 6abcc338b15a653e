// Package client consumes the news API over HTTP and holds the view
// state for the list and detail pages, including the guard that keeps a
// slow stale response from overwriting a newer one.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Article mirrors the API's article JSON.
type Article struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
	Date     string  `json:"date"`
}

// StatusError reports a non-2xx API response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Fetcher is the read surface of the news API.
type Fetcher interface {
	// Articles returns all articles, or only those in category when
	// category is non-empty. "All" is treated the same as empty.
	Articles(ctx context.Context, category string) ([]Article, error)

	// Article returns one article by ID.
	Article(ctx context.Context, id int64) (*Article, error)
}

// Client talks to the news API over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for the API at baseURL with a sane timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Articles fetches the article list, optionally filtered by category.
func (c *Client) Articles(ctx context.Context, category string) ([]Article, error) {
	path := "/articles"
	if category != "" && category != "All" {
		path += "/" + category
	}

	var arts []Article
	if err := c.get(ctx, path, &arts); err != nil {
		return nil, err
	}
	return arts, nil
}

// Article fetches a single article by ID.
func (c *Client) Article(ctx context.Context, id int64) (*Article, error) {
	var art Article
	if err := c.get(ctx, fmt.Sprintf("/article/%d", id), &art); err != nil {
		return nil, err
	}
	return &art, nil
}
