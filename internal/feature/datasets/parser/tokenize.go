// Package parser turns raw CSV text into typed dataset rows.
//
// The dialect is intentionally minimal: newline-delimited records, a header on
// the first non-empty line, and cells split on a literal comma. Quoted fields
// and escaped commas are not supported; a comma inside a value always starts a
// new cell.
package parser

import (
	"log/slog"
	"strings"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/feature/datasets/domain/entity"
)

// Table is the tokenized form of a CSV document.
type Table struct {
	Headers []string
	Rows    []entity.RawRow
}

// Tokenize splits text into a header row and coerced data rows.
// It returns domain.ErrEmptyInput when no non-empty line remains.
func Tokenize(text string) (Table, error) {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return Table{}, domain.ErrEmptyInput
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]entity.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		row := entity.NewRawRow(len(headers))
		for i, h := range headers {
			// 足りない末尾のセルは空文字として扱う
			v := ""
			if i < len(values) {
				v = values[i]
			}
			row.Set(h, Coerce(v))
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}, nil
}

// Parse is the parse boundary used by uploads and fetched defaults.
// Empty input is logged and yields an empty Table instead of an error.
func Parse(text string) Table {
	t, err := Tokenize(text)
	if err != nil {
		slog.Warn("csv parse yielded no rows", "error", err)
		return Table{}
	}
	return t
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
