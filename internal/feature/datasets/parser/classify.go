package parser

import "stock_dashboard/internal/feature/datasets/domain/entity"

var (
	// HistoricalFields are the columns a historical dataset must contain.
	HistoricalFields = []string{"date", "open", "high", "low", "close", "volume"}
	// PredictionFields are the columns a prediction dataset must contain. "actual" is optional.
	PredictionFields = []string{"date", "predicted", "lowerBound", "upperBound"}
)

// RequiredFields returns the required columns for f, or nil for FormatUnknown.
func RequiredFields(f entity.Format) []string {
	switch f {
	case entity.FormatHistorical:
		return HistoricalFields
	case entity.FormatPrediction:
		return PredictionFields
	default:
		return nil
	}
}

// Classify detects the dataset kind from the key set of the first row.
// The historical check runs first, so a row satisfying both key sets is historical.
// Values are never inspected.
func Classify(rows []entity.RawRow) entity.Format {
	switch {
	case Matches(rows, entity.FormatHistorical):
		return entity.FormatHistorical
	case Matches(rows, entity.FormatPrediction):
		return entity.FormatPrediction
	default:
		return entity.FormatUnknown
	}
}

// Matches reports whether the first row contains every required column of f.
func Matches(rows []entity.RawRow, f entity.Format) bool {
	if len(rows) == 0 || f == entity.FormatUnknown {
		return false
	}
	return len(MissingFields(rows, f)) == 0
}

// MissingFields lists the required columns of f absent from the first row.
// With no rows every required column is missing.
func MissingFields(rows []entity.RawRow, f entity.Format) []string {
	required := RequiredFields(f)
	if len(rows) == 0 {
		out := make([]string, len(required))
		copy(out, required)
		return out
	}
	var missing []string
	for _, k := range required {
		if !rows[0].Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
