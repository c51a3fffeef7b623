// Package staticdata provides a client for the static data host that serves
// the default CSV datasets (/data/historical, /data/predictions, /data/stocks.csv).
package staticdata

import "time"

// Config holds configuration for the static data host client.
type Config struct {
	BaseURL string        // Base URL of the data host (e.g., "http://localhost:8000")
	Timeout time.Duration // HTTP request timeout
}
