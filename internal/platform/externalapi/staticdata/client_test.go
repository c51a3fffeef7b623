package staticdata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stock_dashboard/internal/feature/datasets/domain"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	cfg := Config{BaseURL: "https://data.test", Timeout: 10 * time.Second}
	c := NewClient(cfg, &http.Client{})

	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.cfg.BaseURL != cfg.BaseURL {
		t.Errorf("expected base URL %q, got %q", cfg.BaseURL, c.cfg.BaseURL)
	}
}

func TestClient_Fetch_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/historical/AAPL.csv" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("date,close\n2025-01-01,100\n"))
	}))
	defer server.Close()

	// 末尾のスラッシュは重複しない
	c := NewClient(Config{BaseURL: server.URL + "/"}, server.Client())

	body, err := c.Fetch(context.Background(), "/data/historical/AAPL.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "date,close\n2025-01-01,100\n" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestClient_Fetch_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		notFound   bool
	}{
		{"not found", http.StatusNotFound, true},
		{"forbidden", http.StatusForbidden, false},
		{"internal server error", http.StatusInternalServerError, false},
		{"service unavailable", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			c := NewClient(Config{BaseURL: server.URL}, server.Client())
			_, err := c.Fetch(context.Background(), "data/stocks.csv")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var fe *FetchError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FetchError, got %T", err)
			}
			if fe.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, fe.StatusCode)
			}
			if fe.Path != "data/stocks.csv" {
				t.Errorf("expected path data/stocks.csv, got %q", fe.Path)
			}
			if fe.NotFound() != tt.notFound {
				t.Errorf("NotFound() = %v, want %v", fe.NotFound(), tt.notFound)
			}
			if !errors.Is(err, domain.ErrFetch) {
				t.Error("expected errors.Is(err, domain.ErrFetch)")
			}
		})
	}
}

func TestClient_Fetch_ConnectionError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClient(Config{BaseURL: url}, &http.Client{Timeout: time.Second})
	_, err := c.Fetch(context.Background(), "/data/stocks.csv")
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestClient_Fetch_ContextCanceled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Config{BaseURL: server.URL}, server.Client())
	if _, err := c.Fetch(ctx, "/data/stocks.csv"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
