package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_dashboard/internal/feature/stocks/domain"
	"stock_dashboard/internal/feature/stocks/domain/entity"
)

// mockStockUsecase はStockUsecaseインターフェースのモック実装です。
type mockStockUsecase struct {
	ListFunc   func(ctx context.Context) []entity.StockQuote
	GetFunc    func(ctx context.Context, symbol string) (entity.StockQuote, error)
	SearchFunc func(ctx context.Context, query string) []entity.StockQuote
}

func (m *mockStockUsecase) List(ctx context.Context) []entity.StockQuote {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil
}

func (m *mockStockUsecase) Get(ctx context.Context, symbol string) (entity.StockQuote, error) {
	return m.GetFunc(ctx, symbol)
}

func (m *mockStockUsecase) Search(ctx context.Context, query string) []entity.StockQuote {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil
}

var tesla = entity.StockQuote{
	Symbol: "TSLA", Name: "Tesla, Inc.", Price: 177.58, Change: 4.32, ChangePercent: 2.49,
	MarketCap: 565000000000, Volume: 108532000, PE: 50.7, EPS: 3.5, Beta: 2.01,
}

const teslaJSON = `{"symbol":"TSLA","name":"Tesla, Inc.","price":177.58,"change":4.32,"changePercent":2.49,
	"marketCap":565000000000,"volume":108532000,"pe":50.7,"eps":3.5,"dividend":0,"dividendYield":0,"beta":2.01,
	"marketCapLabel":"565.00B","volumeLabel":"108.53M","changePercentLabel":"+2.49%"}`

func setupRouter(uc StockUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStockHandler(uc)
	r := gin.New()
	r.GET("/stocks", h.List)
	r.GET("/stocks/:symbol", h.Get)
	return r
}

// TestStockHandler_List は一覧と検索の切り替えを検証します。
func TestStockHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		url          string
		expectedBody string
	}{
		{name: "success: list all", url: "/stocks", expectedBody: `[` + teslaJSON + `]`},
		{name: "success: search", url: "/stocks?q=tes", expectedBody: `[` + teslaJSON + `]`},
		{name: "success: search without hits", url: "/stocks?q=zzz", expectedBody: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := &mockStockUsecase{
				ListFunc: func(ctx context.Context) []entity.StockQuote {
					return []entity.StockQuote{tesla}
				},
				SearchFunc: func(ctx context.Context, query string) []entity.StockQuote {
					if query == "tes" {
						return []entity.StockQuote{tesla}
					}
					return nil
				},
			}

			w := httptest.NewRecorder()
			setupRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestStockHandler_Get(t *testing.T) {
	t.Parallel()

	uc := &mockStockUsecase{GetFunc: func(ctx context.Context, symbol string) (entity.StockQuote, error) {
		if symbol == "TSLA" {
			return tesla, nil
		}
		return entity.StockQuote{}, fmt.Errorf("%w: %s", domain.ErrStockNotFound, symbol)
	}}
	router := setupRouter(uc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stocks/TSLA", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, teslaJSON, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stocks/ZZZZ", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"stock not found: ZZZZ"}`, w.Body.String())
}
