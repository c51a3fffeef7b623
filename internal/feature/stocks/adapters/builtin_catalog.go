package adapters

import (
	"context"

	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// builtinQuotes はデータホストに到達できない場合のデモ用クオートです。
var builtinQuotes = []entity.StockQuote{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: 187.45, Change: 1.23, ChangePercent: 0.66, MarketCap: 2940000000000, Volume: 59328000, PE: 30.8, EPS: 6.08, Dividend: 0.96, DividendYield: 0.51, Beta: 1.28},
	{Symbol: "MSFT", Name: "Microsoft Corporation", Price: 418.32, Change: -2.15, ChangePercent: -0.51, MarketCap: 3110000000000, Volume: 21472000, PE: 35.9, EPS: 11.65, Dividend: 3.00, DividendYield: 0.72, Beta: 0.95},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: 172.92, Change: 0.87, ChangePercent: 0.51, MarketCap: 2140000000000, Volume: 19876000, PE: 26.4, EPS: 6.55, Beta: 1.06},
	{Symbol: "AMZN", Name: "Amazon.com, Inc.", Price: 186.21, Change: -0.43, ChangePercent: -0.23, MarketCap: 1920000000000, Volume: 35621000, PE: 52.3, EPS: 3.56, Beta: 1.22},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Price: 177.58, Change: 4.32, ChangePercent: 2.49, MarketCap: 565000000000, Volume: 108532000, PE: 50.7, EPS: 3.50, Beta: 2.01},
}

// BuiltinCatalog は組み込みのデモ用クオートを返すカタログです。
type BuiltinCatalog struct{}

var _ usecase.QuoteCatalog = BuiltinCatalog{}

// Name はカタログ名を返します。
func (BuiltinCatalog) Name() string { return "builtin" }

// Quotes は組み込みクオートのコピーを返します。
func (BuiltinCatalog) Quotes(context.Context) ([]entity.StockQuote, error) {
	out := make([]entity.StockQuote, len(builtinQuotes))
	copy(out, builtinQuotes)
	return out, nil
}
