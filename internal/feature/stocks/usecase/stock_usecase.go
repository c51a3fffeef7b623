// Package usecase implements the business logic for the stock quote catalog.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// SearchLimit は検索結果の最大件数です。
const SearchLimit = 5

// PopularSymbols はダッシュボードが扱う人気銘柄です。並び順は表示順を兼ねます。
var PopularSymbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "META", "NVDA", "JPM", "V", "WMT"}

// QuoteCatalog abstracts a source of stock quotes.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteCatalog interface {
	Name() string
	Quotes(ctx context.Context) ([]entity.StockQuote, error)
}

// StockUsecase provides business logic for the quote catalog.
type StockUsecase struct {
	catalogs []QuoteCatalog
}

// NewStockUsecase creates a new StockUsecase.
// catalogs are consulted in order; the first one returning quotes wins.
func NewStockUsecase(catalogs ...QuoteCatalog) *StockUsecase {
	return &StockUsecase{catalogs: catalogs}
}

// List は全銘柄のクオートを返します。どのカタログからも取得できない場合は空スライスです。
func (u *StockUsecase) List(ctx context.Context) []entity.StockQuote {
	for _, c := range u.catalogs {
		qs, err := c.Quotes(ctx)
		if err != nil {
			slog.Warn("failed to load stock quotes", "catalog", c.Name(), "error", err)
			continue
		}
		if len(qs) == 0 {
			continue
		}
		return qs
	}
	return []entity.StockQuote{}
}

// Get は銘柄コードに一致するクオートを返します。
func (u *StockUsecase) Get(ctx context.Context, symbol string) (entity.StockQuote, error) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	for _, q := range u.List(ctx) {
		if q.Symbol == sym {
			return q, nil
		}
	}
	return entity.StockQuote{}, fmt.Errorf("%w: %s", domain.ErrStockNotFound, sym)
}

// Search は銘柄コードまたは社名に大文字小文字を区別せず部分一致するクオートを
// 最大 SearchLimit 件返します。空のクエリは空スライスを返します。
func (u *StockUsecase) Search(ctx context.Context, query string) []entity.StockQuote {
	q := strings.ToUpper(strings.TrimSpace(query))
	out := []entity.StockQuote{}
	if q == "" {
		return out
	}
	for _, s := range u.List(ctx) {
		if strings.Contains(strings.ToUpper(s.Symbol), q) || strings.Contains(strings.ToUpper(s.Name), q) {
			out = append(out, s)
			if len(out) == SearchLimit {
				break
			}
		}
	}
	return out
}
