package usecase_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/charts/domain"
	"stock_dashboard/internal/feature/charts/domain/entity"
	"stock_dashboard/internal/feature/charts/usecase"
	dsentity "stock_dashboard/internal/feature/datasets/domain/entity"
)

// mockReader はDatasetReaderインターフェースのモック実装です。
type mockReader struct {
	historical []dsentity.HistoricalPricePoint
	prediction []dsentity.PredictionPoint
	lastLimit  int
}

func (m *mockReader) Historical(ctx context.Context, symbol string, limit int) []dsentity.HistoricalPricePoint {
	m.lastLimit = limit
	if m.historical == nil {
		return []dsentity.HistoricalPricePoint{}
	}
	return m.historical
}

func (m *mockReader) Prediction(ctx context.Context, symbol string) []dsentity.PredictionPoint {
	if m.prediction == nil {
		return []dsentity.PredictionPoint{}
	}
	return m.prediction
}

// series はcloses[i]を終値とする連続した日付の価格履歴を生成します。
func series(closes ...float64) []dsentity.HistoricalPricePoint {
	out := make([]dsentity.HistoricalPricePoint, len(closes))
	for i, c := range closes {
		out[i] = dsentity.HistoricalPricePoint{Date: fmt.Sprintf("2025-01-%02d", i+1), Close: c}
	}
	return out
}

func f64(v float64) *float64 { return &v }

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected entity.Range
		days     int
		wantErr  bool
	}{
		{"", entity.Range3M, 90, false},
		{"1M", entity.Range1M, 30, false},
		{"3m", entity.Range3M, 90, false},
		{"6M", entity.Range6M, 180, false},
		{"1Y", entity.Range1Y, 365, false},
		{"All", entity.RangeAll, 730, false},
		{"all", entity.RangeAll, 730, false},
		{"5Y", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			r, err := usecase.ParseRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, r)
			d, ok := r.Days()
			assert.True(t, ok)
			assert.Equal(t, tt.days, d)
		})
	}
}

// TestMovingAverage は期間に満たない位置がnilになり、以降は直近の終値の平均になることを検証します。
func TestMovingAverage(t *testing.T) {
	t.Parallel()

	ma := usecase.MovingAverage(series(1, 2, 3, 4, 5), 3)
	require.Len(t, ma, 5)

	assert.Nil(t, ma[0].Value)
	assert.Nil(t, ma[1].Value)
	require.NotNil(t, ma[2].Value)
	assert.InDelta(t, 2.0, *ma[2].Value, 1e-9)
	assert.InDelta(t, 3.0, *ma[3].Value, 1e-9)
	assert.InDelta(t, 4.0, *ma[4].Value, 1e-9)
	assert.Equal(t, "2025-01-05", ma[4].Date)

	// 期間より短い系列ではすべてnil
	for _, p := range usecase.MovingAverage(series(1, 2), 20) {
		assert.Nil(t, p.Value)
	}
}

func TestPriceBounds(t *testing.T) {
	t.Parallel()

	lo, hi := usecase.PriceBounds(series(100, 120, 80))
	assert.InDelta(t, 76.0, lo, 1e-9)
	assert.InDelta(t, 126.0, hi, 1e-9)

	lo, hi = usecase.PriceBounds(nil)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)

	lo, hi = usecase.PriceBounds(series(100, math.NaN()))
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
}

func TestChartUsecase_Technical(t *testing.T) {
	t.Parallel()

	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = float64(i + 1)
	}

	tests := []struct {
		name          string
		points        []dsentity.HistoricalPricePoint
		rng           entity.Range
		expectedErr   error
		expectedLimit int
	}{
		{
			name:          "success: 60 points with both moving averages",
			points:        series(closes...),
			rng:           entity.Range3M,
			expectedLimit: 90,
		},
		{
			name:          "error: empty series",
			rng:           entity.Range1M,
			expectedErr:   domain.ErrNoValidData,
			expectedLimit: 30,
		},
		{
			name:          "error: first close is zero",
			points:        series(0, 1, 2),
			rng:           entity.RangeAll,
			expectedErr:   domain.ErrNoValidData,
			expectedLimit: 730,
		},
		{
			name:          "error: first close is NaN",
			points:        series(math.NaN(), 1),
			rng:           entity.Range1Y,
			expectedErr:   domain.ErrNoValidData,
			expectedLimit: 365,
		},
		{
			name:          "error: first date is empty",
			points:        []dsentity.HistoricalPricePoint{{Close: 10}},
			rng:           entity.Range6M,
			expectedErr:   domain.ErrNoValidData,
			expectedLimit: 180,
		},
		{
			name:        "error: unknown range",
			points:      series(1),
			rng:         entity.Range("5Y"),
			expectedErr: domain.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := &mockReader{historical: tt.points}
			uc := usecase.NewChartUsecase(reader)

			chart, err := uc.Technical(context.Background(), "aapl", tt.rng)
			assert.Equal(t, tt.expectedLimit, reader.lastLimit)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, "AAPL", chart.Symbol)
			assert.Len(t, chart.Points, 60)
			require.Len(t, chart.MA20, 60)
			require.Len(t, chart.MA50, 60)
			assert.Nil(t, chart.MA20[18].Value)
			require.NotNil(t, chart.MA20[19].Value)
			assert.InDelta(t, 10.5, *chart.MA20[19].Value, 1e-9) // mean of 1..20
			assert.Nil(t, chart.MA50[48].Value)
			require.NotNil(t, chart.MA50[59].Value)
			assert.InDelta(t, 35.5, *chart.MA50[59].Value, 1e-9) // mean of 11..60
			assert.InDelta(t, 0.95, chart.MinPrice, 1e-9)
			assert.InDelta(t, 63.0, chart.MaxPrice, 1e-9)
		})
	}
}

// TestSummarize は境界・直近実績・最終予測・変化率の計算を検証します。
func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		points           []dsentity.PredictionPoint
		expectedBoundary int
		expectedDivider  string
		expectedActual   float64
		expectedPred     float64
		expectedPercent  float64
	}{
		{
			name: "boundary in the middle",
			points: []dsentity.PredictionPoint{
				{Date: "2025-04-10", Actual: f64(180), Predicted: 181},
				{Date: "2025-04-11", Actual: f64(200), Predicted: 199},
				{Date: "2025-04-12", Predicted: 205},
				{Date: "2025-04-13", Predicted: 210},
			},
			expectedBoundary: 2,
			expectedDivider:  "2025-04-12",
			expectedActual:   200,
			expectedPred:     210,
			expectedPercent:  5,
		},
		{
			name: "no point lacks actual",
			points: []dsentity.PredictionPoint{
				{Date: "2025-04-10", Actual: f64(180), Predicted: 181},
				{Date: "2025-04-11", Actual: f64(200), Predicted: 199},
			},
			expectedBoundary: -1,
			expectedActual:   0,
			expectedPred:     199,
			expectedPercent:  0,
		},
		{
			name: "first point is already a forecast",
			points: []dsentity.PredictionPoint{
				{Date: "2025-04-12", Predicted: 205},
			},
			expectedBoundary: 0,
			expectedDivider:  "2025-04-12",
			expectedActual:   0,
			expectedPred:     205,
			expectedPercent:  0,
		},
		{
			name: "NaN values read as zero",
			points: []dsentity.PredictionPoint{
				{Date: "2025-04-11", Actual: f64(math.NaN()), Predicted: 1},
				{Date: "2025-04-12", Predicted: math.NaN()},
			},
			expectedBoundary: 1,
			expectedDivider:  "2025-04-12",
			expectedActual:   0,
			expectedPred:     0,
			expectedPercent:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := usecase.Summarize(tt.points)
			assert.Equal(t, tt.expectedBoundary, f.Boundary)
			assert.Equal(t, tt.expectedDivider, f.DividerDate)
			assert.InDelta(t, tt.expectedActual, f.LastActual, 1e-9)
			assert.InDelta(t, tt.expectedPred, f.LastPredicted, 1e-9)
			assert.InDelta(t, tt.expectedPred-tt.expectedActual, f.Change, 1e-9)
			assert.InDelta(t, tt.expectedPercent, f.PercentChange, 1e-9)
		})
	}
}

func TestChartUsecase_Forecast(t *testing.T) {
	t.Parallel()

	uc := usecase.NewChartUsecase(&mockReader{})
	_, err := uc.Forecast(context.Background(), "AAPL")
	assert.ErrorIs(t, err, domain.ErrNoValidData)

	uc = usecase.NewChartUsecase(&mockReader{prediction: []dsentity.PredictionPoint{
		{Date: "2025-04-11", Actual: f64(100), Predicted: 100},
		{Date: "2025-04-12", Predicted: 110},
	}})
	f, err := uc.Forecast(context.Background(), "msft")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", f.Symbol)
	assert.Len(t, f.Points, 2)
	assert.InDelta(t, 10.0, f.PercentChange, 1e-9)
}
