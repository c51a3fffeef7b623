// Package dto defines data transfer objects for the stocks HTTP API.
package dto

import (
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/shared/jsonnum"
)

// StockItem represents a stock quote in the API response.
// The *Label fields carry the display formatting used by the dashboard.
type StockItem struct {
	Symbol             string        `json:"symbol"`
	Name               string        `json:"name"`
	Price              jsonnum.Float `json:"price"`
	Change             jsonnum.Float `json:"change"`
	ChangePercent      jsonnum.Float `json:"changePercent"`
	MarketCap          jsonnum.Float `json:"marketCap"`
	Volume             jsonnum.Float `json:"volume"`
	PE                 jsonnum.Float `json:"pe"`
	EPS                jsonnum.Float `json:"eps"`
	Dividend           jsonnum.Float `json:"dividend"`
	DividendYield      jsonnum.Float `json:"dividendYield"`
	Beta               jsonnum.Float `json:"beta"`
	MarketCapLabel     string        `json:"marketCapLabel"`
	VolumeLabel        string        `json:"volumeLabel"`
	ChangePercentLabel string        `json:"changePercentLabel"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewStockItem はクオートをDTOに変換します。
func NewStockItem(q entity.StockQuote) StockItem {
	return StockItem{
		Symbol:             q.Symbol,
		Name:               q.Name,
		Price:              jsonnum.Float(q.Price),
		Change:             jsonnum.Float(q.Change),
		ChangePercent:      jsonnum.Float(q.ChangePercent),
		MarketCap:          jsonnum.Float(q.MarketCap),
		Volume:             jsonnum.Float(q.Volume),
		PE:                 jsonnum.Float(q.PE),
		EPS:                jsonnum.Float(q.EPS),
		Dividend:           jsonnum.Float(q.Dividend),
		DividendYield:      jsonnum.Float(q.DividendYield),
		Beta:               jsonnum.Float(q.Beta),
		MarketCapLabel:     usecase.FormatLargeNumber(q.MarketCap),
		VolumeLabel:        usecase.FormatLargeNumber(q.Volume),
		ChangePercentLabel: usecase.FormatPercentage(q.ChangePercent),
	}
}

// NewStockItems はクオートの一覧をDTOに変換します。nil は空配列になります。
func NewStockItems(qs []entity.StockQuote) []StockItem {
	out := make([]StockItem, 0, len(qs))
	for _, q := range qs {
		out = append(out, NewStockItem(q))
	}
	return out
}
