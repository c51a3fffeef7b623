package di

import (
	"stock_dashboard/internal/feature/stocks/adapters"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// NewStockUsecase creates the quote catalog chain: the data host's stocks.csv
// first, the built-in demo quotes when it is unreachable or empty.
func NewStockUsecase(fetcher adapters.Fetcher) *usecase.StockUsecase {
	return usecase.NewStockUsecase(
		adapters.NewRemoteCatalog(fetcher, usecase.PopularSymbols),
		adapters.BuiltinCatalog{},
	)
}
