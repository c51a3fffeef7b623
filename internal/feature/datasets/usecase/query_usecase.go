package usecase

import (
	"context"

	"stock_dashboard/internal/feature/datasets/domain/entity"
)

// DefaultDays は days が指定されていないときの価格履歴の返却日数です。
const DefaultDays = 90

// DatasetReader はデータセットの読み取りレイヤーを抽象化します。
type DatasetReader interface {
	Historical(ctx context.Context, symbol string, limit int) []entity.HistoricalPricePoint
	Prediction(ctx context.Context, symbol string) []entity.PredictionPoint
	Sources() []string
	CustomStatus(symbol string) CustomStatus
}

// queryUsecase はデータセット取得のユースケースを定義します。
type queryUsecase struct {
	store DatasetReader
}

// NewQueryUsecase はqueryUsecaseの新しいインスタンスを生成します。
func NewQueryUsecase(store DatasetReader) *queryUsecase {
	return &queryUsecase{store: store}
}

// GetHistorical は銘柄の価格履歴を日付昇順で先頭から最大 days 件返します。
// days が0以下の場合と取得に失敗した場合は空配列を返します。
func (qu *queryUsecase) GetHistorical(ctx context.Context, symbol string, days int) []entity.HistoricalPricePoint {
	if days <= 0 {
		return []entity.HistoricalPricePoint{}
	}
	return qu.store.Historical(ctx, symbol, days)
}

// GetPrediction は銘柄の予測データを日付昇順で返します。
func (qu *queryUsecase) GetPrediction(ctx context.Context, symbol string) []entity.PredictionPoint {
	return qu.store.Prediction(ctx, symbol)
}

// Sources はデータの参照順を返します。
func (qu *queryUsecase) Sources() []string {
	return qu.store.Sources()
}

// Status は銘柄のカスタムデータの状態を返します。
func (qu *queryUsecase) Status(symbol string) CustomStatus {
	return qu.store.CustomStatus(symbol)
}
