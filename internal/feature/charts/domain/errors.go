// Package domain defines domain-level errors for the charts feature.
package domain

import "errors"

var (
	// ErrNoValidData indicates that the loaded series cannot be charted.
	ErrNoValidData = errors.New("no valid data available")

	// ErrInvalidRange is returned for an unknown time range label.
	ErrInvalidRange = errors.New("invalid time range")
)
