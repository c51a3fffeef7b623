package entity

// HistoricalPricePoint is one daily OHLCV record.
// Numeric fields may be NaN when the source cell was not numeric.
type HistoricalPricePoint struct {
	Date   string  // ISO-ish date string (e.g., "2025-04-11"), not strictly validated
	Open   float64 // Opening price
	High   float64 // Highest price of the day
	Low    float64 // Lowest price of the day
	Close  float64 // Closing price
	Volume float64 // Trading volume
}

// PredictionPoint is one forecast record with an uncertainty band.
// Actual is nil for points that are pure forecasts; the first such point
// marks the boundary between realized and forecast data.
type PredictionPoint struct {
	Date       string
	Actual     *float64
	Predicted  float64
	LowerBound float64
	UpperBound float64
}
