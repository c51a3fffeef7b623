// Package remote implements a dataset source backed by CSV files on the static data host.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/parser"
	"stock_dashboard/internal/feature/datasets/usecase"
	"stock_dashboard/internal/platform/externalapi/staticdata"
)

// SourceName はこのソースの名前です。
const SourceName = "remote"

// Fetcher はデータホストからCSVテキストを取得します。
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// Source はデータホスト上のデフォルトCSVを読み込むDatasetSource実装です。
type Source struct {
	fetcher Fetcher
}

// SourceがDatasetSourceを実装していることをコンパイル時に検証します。
var _ usecase.DatasetSource = (*Source)(nil)

// NewSource は指定されたFetcherでSourceの新しいインスタンスを生成します。
func NewSource(fetcher Fetcher) *Source {
	return &Source{fetcher: fetcher}
}

// Name はソース名を返します。
func (s *Source) Name() string { return SourceName }

// HistoricalPath は銘柄の価格履歴CSVのパスを返します。
func HistoricalPath(symbol string) string {
	return fmt.Sprintf("/data/historical/%s.csv", strings.ToUpper(symbol))
}

// PredictionPath は銘柄の予測CSVのパスを返します。
func PredictionPath(symbol string) string {
	return fmt.Sprintf("/data/predictions/%s.csv", strings.ToUpper(symbol))
}

// Historical はデータホストから価格履歴CSVを取得し、正規化して返します。
// CSVの形式が一致しない場合は domain.ErrShapeMismatch を返します。
func (s *Source) Historical(ctx context.Context, symbol string) ([]entity.HistoricalPricePoint, error) {
	rows, err := s.load(ctx, HistoricalPath(symbol), entity.FormatHistorical)
	if err != nil {
		return nil, err
	}
	points := parser.ToHistorical(rows)
	parser.SortHistorical(points)
	return points, nil
}

// Prediction はデータホストから予測CSVを取得し、正規化して返します。
func (s *Source) Prediction(ctx context.Context, symbol string) ([]entity.PredictionPoint, error) {
	rows, err := s.load(ctx, PredictionPath(symbol), entity.FormatPrediction)
	if err != nil {
		return nil, err
	}
	points := parser.ToPrediction(rows)
	parser.SortPrediction(points)
	return points, nil
}

// load はCSVを取得して行に分解し、期待する形式かを検証します。
func (s *Source) load(ctx context.Context, path string, want entity.Format) ([]entity.RawRow, error) {
	text, err := s.fetcher.Fetch(ctx, path)
	if err != nil {
		var fe *staticdata.FetchError
		if errors.As(err, &fe) && fe.NotFound() {
			return nil, fmt.Errorf("%w: %w", domain.ErrNoDataset, err)
		}
		return nil, err
	}

	rows := parser.Parse(text).Rows
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s has no rows", domain.ErrNoDataset, path)
	}
	if !parser.Matches(rows, want) {
		return nil, fmt.Errorf("%w: %s missing %s", domain.ErrShapeMismatch, path,
			strings.Join(parser.MissingFields(rows, want), ", "))
	}
	return rows, nil
}
