// Package usecase derives chart-ready series from the dataset store.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"stock_dashboard/internal/feature/charts/domain"
	"stock_dashboard/internal/feature/charts/domain/entity"
	dsentity "stock_dashboard/internal/feature/datasets/domain/entity"
)

// Moving average periods shown on the technical chart.
const (
	ShortPeriod = 20
	LongPeriod  = 50
)

// DatasetReader reads normalized series. Implementations never fail; a
// missing dataset is an empty slice.
type DatasetReader interface {
	Historical(ctx context.Context, symbol string, limit int) []dsentity.HistoricalPricePoint
	Prediction(ctx context.Context, symbol string) []dsentity.PredictionPoint
}

// ChartUsecase builds technical and forecast charts.
type ChartUsecase struct {
	reader DatasetReader
}

// NewChartUsecase creates a ChartUsecase.
func NewChartUsecase(reader DatasetReader) *ChartUsecase {
	return &ChartUsecase{reader: reader}
}

// ParseRange converts a range label. An empty label yields the default range.
func ParseRange(s string) (entity.Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.DefaultRange, nil
	}
	r := entity.Range(strings.ToUpper(s))
	if strings.EqualFold(s, string(entity.RangeAll)) {
		r = entity.RangeAll
	}
	if _, ok := r.Days(); !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRange, s)
	}
	return r, nil
}

// Technical loads the first N days of the historical series for the range and
// derives moving averages and y-axis bounds.
func (u *ChartUsecase) Technical(ctx context.Context, symbol string, r entity.Range) (entity.TechnicalChart, error) {
	days, ok := r.Days()
	if !ok {
		return entity.TechnicalChart{}, fmt.Errorf("%w: %q", domain.ErrInvalidRange, r)
	}

	points := u.reader.Historical(ctx, symbol, days)
	if !validHistorical(points) {
		slog.Warn("invalid or empty historical data", "symbol", symbol, "range", r, "rows", len(points))
		return entity.TechnicalChart{}, fmt.Errorf("%w for %s", domain.ErrNoValidData, symbol)
	}

	minPrice, maxPrice := PriceBounds(points)
	return entity.TechnicalChart{
		Symbol:   strings.ToUpper(strings.TrimSpace(symbol)),
		Range:    r,
		Points:   points,
		MA20:     MovingAverage(points, ShortPeriod),
		MA50:     MovingAverage(points, LongPeriod),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}

// validHistorical requires a first point with a date and a non-zero, numeric close.
func validHistorical(points []dsentity.HistoricalPricePoint) bool {
	if len(points) == 0 {
		return false
	}
	first := points[0]
	return first.Date != "" && first.Close != 0 && !math.IsNaN(first.Close)
}

// MovingAverage returns the trailing mean of period closes for each point.
// Values before index period-1 are nil.
func MovingAverage(points []dsentity.HistoricalPricePoint, period int) []entity.MAPoint {
	out := make([]entity.MAPoint, len(points))
	for i, p := range points {
		out[i].Date = p.Date
		if period <= 0 || i < period-1 {
			continue
		}
		sum := 0.0
		for j := 0; j < period; j++ {
			sum += points[i-j].Close
		}
		v := sum / float64(period)
		out[i].Value = &v
	}
	return out
}

// PriceBounds returns min close × 0.95 and max close × 1.05, or zeros for no points.
// A NaN close makes both bounds NaN.
func PriceBounds(points []dsentity.HistoricalPricePoint) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		lo = math.Min(lo, p.Close)
		hi = math.Max(hi, p.Close)
	}
	return lo * 0.95, hi * 1.05
}

// Forecast loads the prediction series and computes the forecast summary.
func (u *ChartUsecase) Forecast(ctx context.Context, symbol string) (entity.Forecast, error) {
	points := u.reader.Prediction(ctx, symbol)
	if len(points) == 0 {
		return entity.Forecast{}, fmt.Errorf("%w for %s", domain.ErrNoValidData, symbol)
	}

	f := Summarize(points)
	f.Symbol = strings.ToUpper(strings.TrimSpace(symbol))
	return f, nil
}

// Summarize computes the boundary between realized and forecast points and
// the price change from the last actual to the last predicted value.
// When every point has an actual value there is no boundary and LastActual is 0.
func Summarize(points []dsentity.PredictionPoint) entity.Forecast {
	f := entity.Forecast{Points: points, Boundary: -1}
	for i, p := range points {
		if p.Actual == nil {
			f.Boundary = i
			f.DividerDate = p.Date
			break
		}
	}

	if f.Boundary > 0 {
		f.LastActual = orZero(points[f.Boundary-1].Actual)
	}
	if len(points) > 0 {
		f.LastPredicted = zeroIfNaN(points[len(points)-1].Predicted)
	}

	f.Change = f.LastPredicted - f.LastActual
	if f.LastActual != 0 {
		f.PercentChange = f.Change / f.LastActual * 100
	}
	return f
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return zeroIfNaN(*p)
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
