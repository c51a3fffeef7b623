package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/parser"
)

// Mode はアップロード時に期待するデータセットの種類です。
type Mode string

const (
	ModeHistorical Mode = "historical"
	ModePrediction Mode = "prediction"
	// ModeAny は形式を自動判定します。
	ModeAny Mode = "any"
)

// ParseMode は文字列をModeに変換します。空文字は ModeHistorical として扱います。
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeHistorical, nil
	case ModeHistorical, ModePrediction, ModeAny:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMode, s)
	}
}

// 形式不一致時にユーザーへ表示するメッセージ
const (
	historicalShapeMessage = "CSV must include date, open, high, low, close, and volume columns"
	predictionShapeMessage = "CSV must include date, predicted, lowerBound, and upperBound columns"
)

// UploadResult はアップロード1件の処理結果です。
type UploadResult struct {
	UploadID string
	Symbol   string
	Mode     Mode
	Detected entity.Format
	Rows     int
	Columns  int
	Applied  bool
	Message  string
}

// DatasetWriter はアップロードされた行を保存する先を抽象化します。
type DatasetWriter interface {
	SetHistorical(symbol string, rows []entity.RawRow) (int, error)
	SetPrediction(symbol string, rows []entity.RawRow) (int, error)
}

// UploadObserver はアップロード結果を受け取ります（メトリクス用）。
type UploadObserver interface {
	ObserveUpload(mode, outcome string)
}

// UploadUsecase はCSVアップロードのユースケースを定義します。
// 同時に処理できるアップロードは1件のみです。
type UploadUsecase struct {
	store    DatasetWriter
	observer UploadObserver
	busy     atomic.Bool
}

// NewUploadUsecase は新しい UploadUsecase を生成します。observer は nil でも構いません。
func NewUploadUsecase(store DatasetWriter, observer UploadObserver) *UploadUsecase {
	return &UploadUsecase{store: store, observer: observer}
}

// Upload はCSVテキストを解析し、モードに応じて銘柄のカスタムデータとして保存します。
// ModeAny では形式を判定し、apply が true のときだけ保存します。
// 形式が一致しない場合は ErrShapeMismatch をラップしたエラーを返し、ストアは変更しません。
func (uu *UploadUsecase) Upload(ctx context.Context, symbol string, mode Mode, text string, apply bool) (UploadResult, error) {
	if !uu.busy.CompareAndSwap(false, true) {
		uu.observe(mode, "busy")
		return UploadResult{}, domain.ErrUploadInProgress
	}
	defer uu.busy.Store(false)

	res, err := uu.upload(ctx, symbol, mode, text, apply)
	switch {
	case err == nil && res.Applied:
		uu.observe(mode, "applied")
	case err == nil:
		uu.observe(mode, "detected")
	case errors.Is(err, domain.ErrShapeMismatch):
		uu.observe(mode, "rejected")
	default:
		uu.observe(mode, "error")
	}
	return res, err
}

func (uu *UploadUsecase) upload(ctx context.Context, symbol string, mode Mode, text string, apply bool) (UploadResult, error) {
	sym := normalizeSymbol(symbol)
	if sym == "" {
		return UploadResult{}, domain.ErrInvalidSymbol
	}
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}

	table := parser.Parse(text)
	res := UploadResult{
		UploadID: uuid.NewString(),
		Symbol:   sym,
		Mode:     mode,
		Detected: parser.Classify(table.Rows),
		Rows:     len(table.Rows),
	}
	// 重複した見出しは1列として数える
	if len(table.Rows) > 0 {
		res.Columns = table.Rows[0].Len()
	}

	switch mode {
	case ModeHistorical:
		return uu.applyHistorical(res, table.Rows)
	case ModePrediction:
		return uu.applyPrediction(res, table.Rows)
	case ModeAny:
		switch {
		case !apply:
			res.Message = fmt.Sprintf("Loaded %d rows with %d columns", res.Rows, res.Columns)
			return res, nil
		case res.Detected == entity.FormatHistorical:
			return uu.applyHistorical(res, table.Rows)
		case res.Detected == entity.FormatPrediction:
			return uu.applyPrediction(res, table.Rows)
		default:
			// 自動判定できない場合は保存せずに行数と列数だけを返す
			res.Message = fmt.Sprintf("Loaded %d rows with %d columns", res.Rows, res.Columns)
			return res, nil
		}
	default:
		return UploadResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidMode, mode)
	}
}

func (uu *UploadUsecase) applyHistorical(res UploadResult, rows []entity.RawRow) (UploadResult, error) {
	n, err := uu.store.SetHistorical(res.Symbol, rows)
	if err != nil {
		if errors.Is(err, domain.ErrShapeMismatch) {
			slog.Warn("historical upload rejected", "symbol", res.Symbol, "error", err)
			res.Message = historicalShapeMessage
			return res, fmt.Errorf("%s: %w", historicalShapeMessage, err)
		}
		return res, err
	}
	res.Applied = true
	res.Message = fmt.Sprintf("%d data points loaded for %s", n, res.Symbol)
	return res, nil
}

func (uu *UploadUsecase) applyPrediction(res UploadResult, rows []entity.RawRow) (UploadResult, error) {
	n, err := uu.store.SetPrediction(res.Symbol, rows)
	if err != nil {
		if errors.Is(err, domain.ErrShapeMismatch) {
			slog.Warn("prediction upload rejected", "symbol", res.Symbol, "error", err)
			res.Message = predictionShapeMessage
			return res, fmt.Errorf("%s: %w", predictionShapeMessage, err)
		}
		return res, err
	}
	res.Applied = true
	res.Message = fmt.Sprintf("%d prediction points loaded for %s", n, res.Symbol)
	return res, nil
}

func (uu *UploadUsecase) observe(mode Mode, outcome string) {
	if uu.observer != nil {
		uu.observer.ObserveUpload(string(mode), outcome)
	}
}
