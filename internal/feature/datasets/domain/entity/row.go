package entity

// RawRow is one tokenized CSV record: an ordered mapping from column name to Cell.
// Keys keep the position of their first occurrence; setting an existing key
// replaces its value (duplicate headers collide, last write wins).
type RawRow struct {
	keys   []string
	values map[string]Cell
}

// NewRawRow returns an empty row sized for n columns.
func NewRawRow(n int) RawRow {
	return RawRow{
		keys:   make([]string, 0, n),
		values: make(map[string]Cell, n),
	}
}

// Set stores the value for key.
func (r *RawRow) Set(key string, c Cell) {
	if r.values == nil {
		r.values = make(map[string]Cell)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = c
}

// Get returns the value for key and whether the key exists.
func (r RawRow) Get(key string) (Cell, bool) {
	c, ok := r.values[key]
	return c, ok
}

// Has reports whether the row contains key.
func (r RawRow) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the column names in header order.
func (r RawRow) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of distinct columns.
func (r RawRow) Len() int {
	return len(r.keys)
}
