package domain

import "errors"

// ErrStockNotFound is returned when the symbol is not in the quote catalog.
var ErrStockNotFound = errors.New("stock not found")
