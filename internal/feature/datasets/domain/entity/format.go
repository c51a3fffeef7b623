package entity

// Format is the dataset kind detected from a parsed CSV.
type Format int

const (
	// FormatUnknown matches neither required key set.
	FormatUnknown Format = iota
	// FormatHistorical has date, open, high, low, close and volume columns.
	FormatHistorical
	// FormatPrediction has date, predicted, lowerBound and upperBound columns.
	FormatPrediction
)

// String returns the lower-case name used in API responses and logs.
func (f Format) String() string {
	switch f {
	case FormatHistorical:
		return "historical"
	case FormatPrediction:
		return "prediction"
	default:
		return "unknown"
	}
}
