// Package dto defines data transfer objects for the charts HTTP API.
package dto

import (
	"stock_dashboard/internal/feature/charts/domain/entity"
	dsdto "stock_dashboard/internal/feature/datasets/transport/http/dto"
	"stock_dashboard/internal/shared/jsonnum"
)

// MAPoint は移動平均1件のレスポンスDTOです。期間に満たない位置は value が null です。
type MAPoint struct {
	Date  string         `json:"date"`
	Value *jsonnum.Float `json:"value"`
}

// TechnicalResponse はテクニカルチャートのレスポンスDTOです。
type TechnicalResponse struct {
	Symbol   string                  `json:"symbol"`
	Range    string                  `json:"range"`
	Points   []dsdto.HistoricalPoint `json:"points"`
	MA20     []MAPoint               `json:"ma20"`
	MA50     []MAPoint               `json:"ma50"`
	MinPrice jsonnum.Float           `json:"minPrice"`
	MaxPrice jsonnum.Float           `json:"maxPrice"`
}

// ForecastResponse は予測チャートのレスポンスDTOです。
// dividerDate は実績と予測の境界がない場合に省略されます。
type ForecastResponse struct {
	Symbol        string                  `json:"symbol"`
	Points        []dsdto.PredictionPoint `json:"points"`
	DividerDate   string                  `json:"dividerDate,omitempty"`
	LastActual    jsonnum.Float           `json:"lastActual"`
	LastPredicted jsonnum.Float           `json:"lastPredicted"`
	Change        jsonnum.Float           `json:"change"`
	PercentChange jsonnum.Float           `json:"percentChange"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTechnicalResponse はドメインのチャートをDTOに変換します。
func NewTechnicalResponse(c entity.TechnicalChart) TechnicalResponse {
	return TechnicalResponse{
		Symbol:   c.Symbol,
		Range:    string(c.Range),
		Points:   dsdto.NewHistoricalPoints(c.Points),
		MA20:     newMAPoints(c.MA20),
		MA50:     newMAPoints(c.MA50),
		MinPrice: jsonnum.Float(c.MinPrice),
		MaxPrice: jsonnum.Float(c.MaxPrice),
	}
}

// NewForecastResponse はドメインの予測サマリーをDTOに変換します。
func NewForecastResponse(f entity.Forecast) ForecastResponse {
	return ForecastResponse{
		Symbol:        f.Symbol,
		Points:        dsdto.NewPredictionPoints(f.Points),
		DividerDate:   f.DividerDate,
		LastActual:    jsonnum.Float(f.LastActual),
		LastPredicted: jsonnum.Float(f.LastPredicted),
		Change:        jsonnum.Float(f.Change),
		PercentChange: jsonnum.Float(f.PercentChange),
	}
}

func newMAPoints(in []entity.MAPoint) []MAPoint {
	out := make([]MAPoint, 0, len(in))
	for _, p := range in {
		out = append(out, MAPoint{Date: p.Date, Value: jsonnum.Ptr(p.Value)})
	}
	return out
}
