// Package domain defines domain-level errors for the datasets feature.
package domain

import "errors"

// Domain errors for dataset ingestion and lookup.
// None of these reach the presentation layer as a hard failure: reads degrade
// to empty collections and rejected uploads carry a human-readable message.
var (
	// ErrEmptyInput indicates that the CSV text had no non-empty lines.
	ErrEmptyInput = errors.New("csv input is empty")

	// ErrShapeMismatch indicates that required columns for the requested dataset kind are missing.
	ErrShapeMismatch = errors.New("dataset shape mismatch")

	// ErrFetch indicates that a default dataset could not be fetched from the data host.
	ErrFetch = errors.New("dataset fetch failed")

	// ErrNoDataset indicates that a source has no dataset for the symbol.
	ErrNoDataset = errors.New("no dataset available")

	// ErrUploadInProgress is returned while another upload is being applied.
	ErrUploadInProgress = errors.New("another upload is in progress")

	// ErrInvalidMode is returned for an unknown upload mode.
	ErrInvalidMode = errors.New("invalid dataset mode")

	// ErrInvalidSymbol is returned when the symbol is blank.
	ErrInvalidSymbol = errors.New("symbol is required")
)
