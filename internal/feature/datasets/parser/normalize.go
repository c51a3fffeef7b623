package parser

import "stock_dashboard/internal/feature/datasets/domain/entity"

// ToHistorical maps rows to price points in input order.
// Shape is not checked here; a missing column reads as 0.
func ToHistorical(rows []entity.RawRow) []entity.HistoricalPricePoint {
	out := make([]entity.HistoricalPricePoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.HistoricalPricePoint{
			Date:   text(r, "date"),
			Open:   number(r, "open"),
			High:   number(r, "high"),
			Low:    number(r, "low"),
			Close:  number(r, "close"),
			Volume: number(r, "volume"),
		})
	}
	return out
}

// ToPrediction maps rows to prediction points in input order.
// Actual is nil when the column is absent or the cell is empty.
func ToPrediction(rows []entity.RawRow) []entity.PredictionPoint {
	out := make([]entity.PredictionPoint, 0, len(rows))
	for _, r := range rows {
		p := entity.PredictionPoint{
			Date:       text(r, "date"),
			Predicted:  number(r, "predicted"),
			LowerBound: number(r, "lowerBound"),
			UpperBound: number(r, "upperBound"),
		}
		if c, ok := r.Get("actual"); ok && !c.IsEmpty() {
			v := ToNumber(c)
			p.Actual = &v
		}
		out = append(out, p)
	}
	return out
}

// SortHistorical sorts points ascending by calendar date (stable).
func SortHistorical(points []entity.HistoricalPricePoint) {
	sortByDate(points, func(p entity.HistoricalPricePoint) string { return p.Date })
}

// SortPrediction sorts points ascending by calendar date (stable).
func SortPrediction(points []entity.PredictionPoint) {
	sortByDate(points, func(p entity.PredictionPoint) string { return p.Date })
}

func text(r entity.RawRow, key string) string {
	c, _ := r.Get(key)
	return c.String()
}

func number(r entity.RawRow, key string) float64 {
	c, _ := r.Get(key)
	return ToNumber(c)
}
