// Package entity defines the domain models for the stocks feature.
package entity

// StockQuote is a snapshot of one listed company's quote and fundamentals.
// Numeric fields may be NaN when the source cell was not numeric.
type StockQuote struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	MarketCap     float64
	Volume        float64
	PE            float64
	EPS           float64
	Dividend      float64
	DividendYield float64
	Beta          float64
}
