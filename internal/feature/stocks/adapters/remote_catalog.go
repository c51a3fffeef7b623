// Package adapters はstocksフィーチャーのクオートカタログ実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	dsentity "stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/parser"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/usecase"
)

// StocksPath はデータホスト上のクオートCSVのパスです。
const StocksPath = "/data/stocks.csv"

// Fetcher はデータホストからCSVテキストを取得します。
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// RemoteCatalog はデータホストの stocks.csv を読み込み、人気銘柄のみを返すカタログです。
type RemoteCatalog struct {
	fetcher Fetcher
	symbols []string
}

var _ usecase.QuoteCatalog = (*RemoteCatalog)(nil)

// NewRemoteCatalog は新しい RemoteCatalog を作成します。
// symbols が空の場合は usecase.PopularSymbols を使います。
func NewRemoteCatalog(fetcher Fetcher, symbols []string) *RemoteCatalog {
	if len(symbols) == 0 {
		symbols = usecase.PopularSymbols
	}
	return &RemoteCatalog{fetcher: fetcher, symbols: symbols}
}

// Name はカタログ名を返します。
func (c *RemoteCatalog) Name() string { return "remote" }

// Quotes は stocks.csv を取得し、対象銘柄の行を symbols の順に返します。
func (c *RemoteCatalog) Quotes(ctx context.Context) ([]entity.StockQuote, error) {
	text, err := c.fetcher.Fetch(ctx, StocksPath)
	if err != nil {
		return nil, fmt.Errorf("fetch stock quotes: %w", err)
	}
	table, err := parser.Tokenize(text)
	if err != nil {
		return nil, fmt.Errorf("parse stock quotes: %w", err)
	}

	bySymbol := make(map[string]entity.StockQuote, len(c.symbols))
	for _, row := range table.Rows {
		q := toQuote(row)
		if !slices.Contains(c.symbols, q.Symbol) {
			continue
		}
		bySymbol[q.Symbol] = q
	}

	out := make([]entity.StockQuote, 0, len(bySymbol))
	for _, s := range c.symbols {
		if q, ok := bySymbol[s]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func toQuote(r dsentity.RawRow) entity.StockQuote {
	num := func(key string) float64 {
		cell, _ := r.Get(key)
		return parser.ToNumber(cell)
	}
	str := func(key string) string {
		cell, _ := r.Get(key)
		return strings.TrimSpace(cell.String())
	}
	return entity.StockQuote{
		Symbol:        str("symbol"),
		Name:          str("name"),
		Price:         num("price"),
		Change:        num("change"),
		ChangePercent: num("changePercent"),
		MarketCap:     num("marketCap"),
		Volume:        num("volume"),
		PE:            num("pe"),
		EPS:           num("eps"),
		Dividend:      num("dividend"),
		DividendYield: num("dividendYield"),
		Beta:          num("beta"),
	}
}
