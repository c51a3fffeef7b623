package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/shared/ratelimiter"
)

// warmupKinds はウォームアップ対象のデータセット種別です。
var warmupKinds = []string{"historical", "prediction"}

// WarmupUsecase は人気銘柄のデフォルトデータセットを事前に取得し、キャッシュを温めるユースケースです。
type WarmupUsecase struct {
	source      DatasetSource
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewWarmupUsecase は新しい WarmupUsecase を作成します。
// source には通常キャッシュ付きのリモートソースを渡します。
func NewWarmupUsecase(source DatasetSource, rateLimiter ratelimiter.RateLimiterInterface) *WarmupUsecase {
	return &WarmupUsecase{source: source, rateLimiter: rateLimiter}
}

// warmOne は指定された銘柄と種別のデータセットを1件取得します。
func (wu *WarmupUsecase) warmOne(ctx context.Context, symbol, kind string) (int, error) {
	switch kind {
	case "prediction":
		ps, err := wu.source.Prediction(ctx, symbol)
		return len(ps), err
	default:
		hs, err := wu.source.Historical(ctx, symbol)
		return len(hs), err
	}
}

// WarmAll は全銘柄の価格履歴と予測データを取得します。
// 外部ホストへの負荷を考慮して、リクエスト間にレートリミットを適用します。
// 取得に失敗した銘柄はログに出力して次へ進み、成功件数を返します。
func (wu *WarmupUsecase) WarmAll(ctx context.Context, symbols []string) (int, error) {
	warmed := 0
	for _, s := range symbols {
		sym := normalizeSymbol(s)
		if sym == "" {
			continue
		}
		for _, kind := range warmupKinds {
			if err := ctx.Err(); err != nil {
				return warmed, err
			}
			wu.rateLimiter.WaitIfNeeded()
			n, err := wu.warmOne(ctx, sym, kind)
			if err != nil {
				// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
				if errors.Is(err, domain.ErrNoDataset) {
					slog.Info("no default dataset", "symbol", sym, "kind", kind)
				} else {
					slog.Error("failed to warm dataset", "source", wu.source.Name(), "symbol", sym, "kind", kind, "error", err)
				}
				continue
			}
			slog.Debug("dataset warmed", "symbol", sym, "kind", kind, "rows", n)
			warmed++
		}
	}
	slog.Info("warmup finished", "symbols", len(symbols), "warmed", warmed)
	return warmed, nil
}
