// Package handler はchartsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/charts/domain"
	"stock_dashboard/internal/feature/charts/domain/entity"
	"stock_dashboard/internal/feature/charts/transport/http/dto"
	"stock_dashboard/internal/feature/charts/usecase"
)

// ChartUsecase はチャート生成のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartUsecase interface {
	Technical(ctx context.Context, symbol string, r entity.Range) (entity.TechnicalChart, error)
	Forecast(ctx context.Context, symbol string) (entity.Forecast, error)
}

// ChartHandler はチャートのHTTPリクエストを処理します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler は指定されたusecaseでChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Technical は価格履歴・移動平均・表示範囲をJSONで返します。
//
// エンドポイント例:
// GET /charts/:symbol/technical?range=3M
func (h *ChartHandler) Technical(c *gin.Context) {
	r, err := usecase.ParseRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	chart, err := h.uc.Technical(c.Request.Context(), c.Param("symbol"), r)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTechnicalResponse(chart))
}

// Forecast は予測データと予測サマリーをJSONで返します。
//
// エンドポイント例:
// GET /charts/:symbol/forecast
func (h *ChartHandler) Forecast(c *gin.Context) {
	f, err := h.uc.Forecast(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewForecastResponse(f))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNoValidData):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
