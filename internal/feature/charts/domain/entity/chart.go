// Package entity defines the chart-ready models derived from dataset series.
package entity

import (
	dsentity "stock_dashboard/internal/feature/datasets/domain/entity"
)

// Range is a chart time range label.
type Range string

const (
	Range1M  Range = "1M"
	Range3M  Range = "3M"
	Range6M  Range = "6M"
	Range1Y  Range = "1Y"
	RangeAll Range = "All"
)

// DefaultRange is used when no range is requested.
const DefaultRange = Range3M

// rangeDays maps each range to the number of days loaded for it.
var rangeDays = map[Range]int{
	Range1M:  30,
	Range3M:  90,
	Range6M:  180,
	Range1Y:  365,
	RangeAll: 365 * 2,
}

// Days returns the day count for r and whether r is a known range.
func (r Range) Days() (int, bool) {
	d, ok := rangeDays[r]
	return d, ok
}

// MAPoint is one moving-average value. Value is nil until enough closes exist.
type MAPoint struct {
	Date  string
	Value *float64
}

// TechnicalChart is the price series with its moving averages and y-axis bounds.
type TechnicalChart struct {
	Symbol   string
	Range    Range
	Points   []dsentity.HistoricalPricePoint
	MA20     []MAPoint
	MA50     []MAPoint
	MinPrice float64 // lowest close × 0.95
	MaxPrice float64 // highest close × 1.05
}

// Forecast is the prediction series with its summary figures.
// Boundary is the index of the first point without an actual value, or -1.
type Forecast struct {
	Symbol        string
	Points        []dsentity.PredictionPoint
	Boundary      int
	DividerDate   string
	LastActual    float64
	LastPredicted float64
	Change        float64
	PercentChange float64
}
