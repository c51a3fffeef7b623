// Package handler はdatasetsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/datasets/domain"
	"stock_dashboard/internal/feature/datasets/domain/entity"
	"stock_dashboard/internal/feature/datasets/transport/http/dto"
	"stock_dashboard/internal/feature/datasets/usecase"
)

// MaxUploadBytes はアップロードできるCSVの最大サイズです。
const MaxUploadBytes = 5 << 20

// UploadUsecase はCSVアップロードのユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type UploadUsecase interface {
	Upload(ctx context.Context, symbol string, mode usecase.Mode, text string, apply bool) (usecase.UploadResult, error)
}

// QueryUsecase はデータセット取得のユースケースインターフェースです。
type QueryUsecase interface {
	GetHistorical(ctx context.Context, symbol string, days int) []entity.HistoricalPricePoint
	GetPrediction(ctx context.Context, symbol string) []entity.PredictionPoint
	Sources() []string
	Status(symbol string) usecase.CustomStatus
}

// DatasetHandler はデータセットのHTTPリクエストを処理します。
type DatasetHandler struct {
	upload UploadUsecase
	query  QueryUsecase
}

// NewDatasetHandler は指定されたusecaseでDatasetHandlerの新しいインスタンスを生成します。
func NewDatasetHandler(upload UploadUsecase, query QueryUsecase) *DatasetHandler {
	return &DatasetHandler{upload: upload, query: query}
}

// Upload はCSVを受け取り、銘柄のカスタムデータとして保存します。
// 本文は multipart の file フィールド、または text/csv の生データです。
//
// エンドポイント例:
// POST /datasets/:symbol?type=historical|prediction|any&apply=true
func (h *DatasetHandler) Upload(c *gin.Context) {
	mode, err := usecase.ParseMode(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	apply, err := strconv.ParseBool(c.DefaultQuery("apply", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "apply must be a boolean"})
		return
	}

	text, err := readCSV(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "upload exceeds size limit"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.upload.Upload(c.Request.Context(), c.Param("symbol"), mode, text, apply)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, toUploadResponse(res))
	case errors.Is(err, domain.ErrShapeMismatch):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Message: res.Message})
	case errors.Is(err, domain.ErrUploadInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidSymbol), errors.Is(err, domain.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}

// readCSV はリクエスト本文からCSVテキストを読み出します。
func readCSV(c *gin.Context) (string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		if err != nil {
			return "", err
		}
		f, err := fh.Open()
		if err != nil {
			return "", err
		}
		defer func() { _ = f.Close() }()
		b, err := io.ReadAll(f)
		return string(b), err
	}

	b, err := io.ReadAll(c.Request.Body)
	return string(b), err
}

func toUploadResponse(res usecase.UploadResult) dto.UploadResponse {
	return dto.UploadResponse{
		UploadID: res.UploadID,
		Symbol:   res.Symbol,
		Mode:     string(res.Mode),
		Detected: res.Detected.String(),
		Rows:     res.Rows,
		Columns:  res.Columns,
		Applied:  res.Applied,
		Message:  res.Message,
	}
}

// Historical は銘柄の価格履歴を日付昇順のJSONで返します。取得できない場合は空配列です。
//
// エンドポイント例:
// GET /datasets/:symbol/historical?days=90
func (h *DatasetHandler) Historical(c *gin.Context) {
	// 未指定または数値でない場合はデフォルト日数
	days, err := strconv.Atoi(c.Query("days"))
	if err != nil {
		days = usecase.DefaultDays
	}

	points := h.query.GetHistorical(c.Request.Context(), c.Param("symbol"), days)
	c.JSON(http.StatusOK, dto.NewHistoricalPoints(points))
}

// Prediction は銘柄の予測データを日付昇順のJSONで返します。
//
// エンドポイント例:
// GET /datasets/:symbol/prediction
func (h *DatasetHandler) Prediction(c *gin.Context) {
	points := h.query.GetPrediction(c.Request.Context(), c.Param("symbol"))
	c.JSON(http.StatusOK, dto.NewPredictionPoints(points))
}

// Status は銘柄のカスタムデータの状態を返します。
func (h *DatasetHandler) Status(c *gin.Context) {
	s := h.query.Status(c.Param("symbol"))
	c.JSON(http.StatusOK, dto.StatusResponse{
		Symbol:         s.Symbol,
		HasHistorical:  s.HasHistorical,
		HasPrediction:  s.HasPrediction,
		HistoricalRows: s.HistoricalRows,
		PredictionRows: s.PredictionRows,
	})
}

// Sources はデータの参照順を返します。
func (h *DatasetHandler) Sources(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SourcesResponse{Sources: h.query.Sources()})
}
