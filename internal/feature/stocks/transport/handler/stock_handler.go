// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
	"stock_dashboard/internal/feature/stocks/transport/http/dto"
)

// StockUsecase は銘柄クオートに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type StockUsecase interface {
	List(ctx context.Context) []entity.StockQuote
	Get(ctx context.Context, symbol string) (entity.StockQuote, error)
	Search(ctx context.Context, query string) []entity.StockQuote
}

// StockHandler は銘柄クオートに関するHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は新しい StockHandler を作成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は銘柄クオートの一覧を返すAPIです。
// クエリパラメータ q が指定された場合は検索結果（最大5件）を返します。
//
// エンドポイント例:
// GET /stocks?q=apple
func (h *StockHandler) List(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		c.JSON(http.StatusOK, dto.NewStockItems(h.uc.Search(c.Request.Context(), q)))
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItems(h.uc.List(c.Request.Context())))
}

// Get は1銘柄のクオートを返すAPIです。未知の銘柄は404を返します。
//
// エンドポイント例:
// GET /stocks/AAPL
func (h *StockHandler) Get(c *gin.Context) {
	q, err := h.uc.Get(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, domain.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewStockItem(q))
}
