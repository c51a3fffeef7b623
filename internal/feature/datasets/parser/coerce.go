package parser

import (
	"math"
	"strconv"
	"strings"

	"stock_dashboard/internal/feature/datasets/domain/entity"
)

// Coerce converts a raw cell into a Number when it parses as a finite float,
// otherwise it keeps the trimmed text. The empty string stays empty text.
// There is no column-wide inference: each cell is decided on its own.
func Coerce(cell string) entity.Cell {
	s := strings.TrimSpace(cell)
	if s == "" {
		return entity.Text("")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return entity.Text(s)
	}
	return entity.Number(f)
}

// ToNumber reads a cell as a numeric field value.
// Empty text reads as 0; any other text reads as NaN and is passed through
// uncorrected to the consumers.
func ToNumber(c entity.Cell) float64 {
	switch {
	case c.Kind == entity.NumberCell:
		return c.Number
	case c.Text == "":
		return 0
	default:
		return math.NaN()
	}
}
