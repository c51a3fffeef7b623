package parser

import (
	"slices"
	"strings"
	"time"
)

// dateLayouts are tried in order when a date string is read as a calendar date.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate reads s as a calendar date. ok is false when no layout matches.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type datedItem[T any] struct {
	at time.Time
	ok bool
	v  T
}

// sortByDate sorts items ascending by their parsed date. The sort is stable:
// equal dates keep their input order. Items whose date cannot be parsed go
// after every parseable one, also in input order.
func sortByDate[T any](items []T, dateOf func(T) string) {
	keyed := make([]datedItem[T], len(items))
	for i, it := range items {
		at, ok := ParseDate(dateOf(it))
		keyed[i] = datedItem[T]{at: at, ok: ok, v: it}
	}
	slices.SortStableFunc(keyed, func(a, b datedItem[T]) int {
		switch {
		case a.ok && b.ok:
			return a.at.Compare(b.at)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})
	for i := range keyed {
		items[i] = keyed[i].v
	}
}
