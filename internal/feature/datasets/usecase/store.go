// Package usecase はデータセットの保持・取得・アップロードのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/parser"
)

// CustomSourceName はアップロードされたデータ層の名前です。
const CustomSourceName = "custom"

// DatasetSource は銘柄ごとのデフォルトデータセットの取得元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DatasetSource interface {
	// Name はログやメトリクスで使うソース名を返します。
	Name() string
	// Historical は銘柄の価格履歴を返します。データがない場合は domain.ErrNoDataset を返します。
	Historical(ctx context.Context, symbol string) ([]entity.HistoricalPricePoint, error)
	// Prediction は銘柄の予測データを返します。データがない場合は domain.ErrNoDataset を返します。
	Prediction(ctx context.Context, symbol string) ([]entity.PredictionPoint, error)
}

// ResolutionObserver はどのソースがデータを返したかを受け取ります（メトリクス用）。
type ResolutionObserver interface {
	ObserveResolution(kind, source string)
}

// CustomStatus は銘柄ごとのカスタムデータの有無です。
type CustomStatus struct {
	Symbol         string
	HistoricalRows int
	PredictionRows int
	HasHistorical  bool
	HasPrediction  bool
}

// StoreOption は DatasetStore の生成オプションです。
type StoreOption func(*DatasetStore)

// WithObserver はソース解決の通知先を設定します。
func WithObserver(o ResolutionObserver) StoreOption {
	return func(s *DatasetStore) { s.observer = o }
}

// DatasetStore は銘柄ごとのカスタムデータと、フォールバックのソース列を保持します。
// カスタムデータは一度設定されるとプロセス終了までデフォルトを上書きします。
type DatasetStore struct {
	mu         sync.RWMutex
	historical map[string][]entity.HistoricalPricePoint
	prediction map[string][]entity.PredictionPoint

	fallbacks []DatasetSource
	observer  ResolutionObserver
}

// NewDatasetStore は指定順に参照されるフォールバックソースを持つストアを生成します。
func NewDatasetStore(fallbacks []DatasetSource, opts ...StoreOption) *DatasetStore {
	s := &DatasetStore{
		historical: make(map[string][]entity.HistoricalPricePoint),
		prediction: make(map[string][]entity.PredictionPoint),
		fallbacks:  fallbacks,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalizeSymbol は銘柄コードを大文字・前後空白なしに揃えます。
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// SetHistorical は価格履歴の形式を満たす行を正規化し、銘柄のカスタム履歴として保存します。
// 形式が一致しない場合は ErrShapeMismatch を返し、ストアは変更しません。
func (s *DatasetStore) SetHistorical(symbol string, rows []entity.RawRow) (int, error) {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return 0, domain.ErrInvalidSymbol
	}
	if !parser.Matches(rows, entity.FormatHistorical) {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrShapeMismatch,
			strings.Join(parser.MissingFields(rows, entity.FormatHistorical), ", "))
	}

	points := parser.ToHistorical(rows)
	parser.SortHistorical(points)

	s.mu.Lock()
	s.historical[sym] = points
	s.mu.Unlock()

	slog.Info("custom historical data set", "symbol", sym, "rows", len(points))
	return len(points), nil
}

// SetPrediction は予測データの形式を満たす行を正規化し、銘柄のカスタム予測として保存します。
func (s *DatasetStore) SetPrediction(symbol string, rows []entity.RawRow) (int, error) {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return 0, domain.ErrInvalidSymbol
	}
	if !parser.Matches(rows, entity.FormatPrediction) {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrShapeMismatch,
			strings.Join(parser.MissingFields(rows, entity.FormatPrediction), ", "))
	}

	points := parser.ToPrediction(rows)
	parser.SortPrediction(points)

	s.mu.Lock()
	s.prediction[sym] = points
	s.mu.Unlock()

	slog.Info("custom prediction data set", "symbol", sym, "rows", len(points))
	return len(points), nil
}

// Historical は最初にデータを持つソースから価格履歴を返します。
// 参照順はカスタム、フォールバックソース（登録順）、空配列です。
// 結果は日付昇順で、limit > 0 のときは先頭 limit 件に切り詰めます。
func (s *DatasetStore) Historical(ctx context.Context, symbol string, limit int) []entity.HistoricalPricePoint {
	sym := normalizeSymbol(symbol)

	s.mu.RLock()
	custom := cloneHistorical(s.historical[sym])
	s.mu.RUnlock()

	out := resolve(ctx, s, "historical", sym, custom,
		func(ctx context.Context, src DatasetSource) ([]entity.HistoricalPricePoint, error) {
			return src.Historical(ctx, sym)
		})
	parser.SortHistorical(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Prediction は最初にデータを持つソースから予測データを返します。
func (s *DatasetStore) Prediction(ctx context.Context, symbol string) []entity.PredictionPoint {
	sym := normalizeSymbol(symbol)

	s.mu.RLock()
	custom := clonePrediction(s.prediction[sym])
	s.mu.RUnlock()

	out := resolve(ctx, s, "prediction", sym, custom,
		func(ctx context.Context, src DatasetSource) ([]entity.PredictionPoint, error) {
			return src.Prediction(ctx, sym)
		})
	parser.SortPrediction(out)
	return out
}

// resolve はカスタム層、フォールバックソースの順にデータを探します。
// ソースのエラーはログに残して次のソースへ進み、呼び出し元には返しません。
func resolve[T any](
	ctx context.Context,
	s *DatasetStore,
	kind, symbol string,
	custom []T,
	load func(context.Context, DatasetSource) ([]T, error),
) []T {
	if len(custom) > 0 {
		s.observe(kind, CustomSourceName)
		return custom
	}

	for _, src := range s.fallbacks {
		if ctx.Err() != nil {
			break
		}
		out, err := load(ctx, src)
		if err != nil {
			if !errors.Is(err, domain.ErrNoDataset) {
				slog.Warn("dataset source failed",
					"source", src.Name(), "kind", kind, "symbol", symbol, "error", err)
			}
			continue
		}
		if len(out) == 0 {
			continue
		}
		s.observe(kind, src.Name())
		return out
	}

	s.observe(kind, "empty")
	return []T{}
}

func (s *DatasetStore) observe(kind, source string) {
	if s.observer != nil {
		s.observer.ObserveResolution(kind, source)
	}
}

// Sources は参照されるソース名を参照順に返します。
func (s *DatasetStore) Sources() []string {
	names := make([]string, 0, len(s.fallbacks)+1)
	names = append(names, CustomSourceName)
	for _, src := range s.fallbacks {
		names = append(names, src.Name())
	}
	return names
}

// CustomStatus は銘柄のカスタムデータの状態を返します。
func (s *DatasetStore) CustomStatus(symbol string) CustomStatus {
	sym := normalizeSymbol(symbol)

	s.mu.RLock()
	defer s.mu.RUnlock()

	h, hasH := s.historical[sym]
	p, hasP := s.prediction[sym]
	return CustomStatus{
		Symbol:         sym,
		HistoricalRows: len(h),
		PredictionRows: len(p),
		HasHistorical:  hasH,
		HasPrediction:  hasP,
	}
}

func cloneHistorical(in []entity.HistoricalPricePoint) []entity.HistoricalPricePoint {
	if in == nil {
		return nil
	}
	out := make([]entity.HistoricalPricePoint, len(in))
	copy(out, in)
	return out
}

// clonePrediction は Actual のポインタ先も含めて複製します。
func clonePrediction(in []entity.PredictionPoint) []entity.PredictionPoint {
	if in == nil {
		return nil
	}
	out := make([]entity.PredictionPoint, len(in))
	for i, p := range in {
		if p.Actual != nil {
			v := *p.Actual
			p.Actual = &v
		}
		out[i] = p
	}
	return out
}
