package staticdata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"stock_dashboard/internal/feature/datasets/domain"
)

// maxBodyBytes caps the size of a fetched CSV document.
const maxBodyBytes = 16 << 20

// FetchError is returned when the data host answers with a non-2xx status.
type FetchError struct {
	Path       string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: http %d", e.Path, e.StatusCode)
}

// Unwrap lets callers match any fetch failure with errors.Is(err, domain.ErrFetch).
func (e *FetchError) Unwrap() error {
	return domain.ErrFetch
}

// NotFound reports whether the host has no document at Path.
func (e *FetchError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Client fetches CSV documents from the data host.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Fetch GETs path relative to the base URL and returns the body as text.
func (c *Client) Fetch(ctx context.Context, path string) (string, error) {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetch, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &FetchError{Path: path, StatusCode: res.StatusCode}
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", domain.ErrFetch, path, err)
	}
	return string(b), nil
}
