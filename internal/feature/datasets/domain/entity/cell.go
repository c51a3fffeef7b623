// Package entity defines the domain models for the datasets feature.
package entity

import "strconv"

// CellKind tells which variant a Cell holds.
type CellKind int

const (
	// TextCell holds a raw string value (including the empty string).
	TextCell CellKind = iota
	// NumberCell holds a finite float64 value.
	NumberCell
)

// Cell is a single CSV value after type coercion.
// It is either Text or Number; consumers switch on Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{Kind: TextCell, Text: s}
}

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{Kind: NumberCell, Number: f}
}

// IsEmpty reports whether the cell is the empty text value.
func (c Cell) IsEmpty() bool {
	return c.Kind == TextCell && c.Text == ""
}

// String renders the cell the way it appeared in the source file.
func (c Cell) String() string {
	if c.Kind == NumberCell {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}
