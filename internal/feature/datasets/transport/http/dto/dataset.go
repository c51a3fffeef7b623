// Package dto defines data transfer objects for the datasets HTTP API.
package dto

import (
	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/shared/jsonnum"
)

// HistoricalPoint は価格履歴1件のレスポンスDTOです。数値でない値は null になります。
type HistoricalPoint struct {
	Date   string        `json:"date"`   // 日付
	Open   jsonnum.Float `json:"open"`   // 始値
	High   jsonnum.Float `json:"high"`   // 高値
	Low    jsonnum.Float `json:"low"`    // 安値
	Close  jsonnum.Float `json:"close"`  // 終値
	Volume jsonnum.Float `json:"volume"` // 出来高
}

// PredictionPoint は予測1件のレスポンスDTOです。actual は実績がない場合に省略されます。
type PredictionPoint struct {
	Date       string         `json:"date"`
	Actual     *jsonnum.Float `json:"actual,omitempty"`
	Predicted  jsonnum.Float  `json:"predicted"`
	LowerBound jsonnum.Float  `json:"lowerBound"`
	UpperBound jsonnum.Float  `json:"upperBound"`
}

// NewHistoricalPoints はドメインの価格履歴をDTOに変換します。
func NewHistoricalPoints(points []entity.HistoricalPricePoint) []HistoricalPoint {
	out := make([]HistoricalPoint, 0, len(points))
	for _, p := range points {
		out = append(out, HistoricalPoint{
			Date:   p.Date,
			Open:   jsonnum.Float(p.Open),
			High:   jsonnum.Float(p.High),
			Low:    jsonnum.Float(p.Low),
			Close:  jsonnum.Float(p.Close),
			Volume: jsonnum.Float(p.Volume),
		})
	}
	return out
}

// NewPredictionPoints はドメインの予測データをDTOに変換します。
func NewPredictionPoints(points []entity.PredictionPoint) []PredictionPoint {
	out := make([]PredictionPoint, 0, len(points))
	for _, p := range points {
		out = append(out, PredictionPoint{
			Date:       p.Date,
			Actual:     jsonnum.Ptr(p.Actual),
			Predicted:  jsonnum.Float(p.Predicted),
			LowerBound: jsonnum.Float(p.LowerBound),
			UpperBound: jsonnum.Float(p.UpperBound),
		})
	}
	return out
}
