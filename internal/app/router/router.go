package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	chartshandler "stock_dashboard/internal/feature/charts/transport/handler"
	datasetshandler "stock_dashboard/internal/feature/datasets/transport/handler"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	"stock_dashboard/internal/platform/http/handler"
)

// Handlers はルータに登録するフィーチャーごとのハンドラーです。
type Handlers struct {
	Datasets *datasetshandler.DatasetHandler
	Charts   *chartshandler.ChartHandler
	Stocks   *stockshandler.StockHandler
	// Metrics は /metrics で公開する Prometheus ハンドラーです。nil の場合は登録しません。
	Metrics http.Handler
	// HealthChecks は /healthz で確認する依存先です。
	HealthChecks []handler.Check
}

// NewRouter は全ルートを登録したエンジンを返します。
// allowOrigins が空の場合はすべてのオリジンからのブラウザアクセスを許可します。
func NewRouter(h Handlers, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	// ダッシュボードのフロントエンドは別オリジンから呼び出す
	if len(allowOrigins) == 0 {
		r.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = allowOrigins
		r.Use(cors.New(cc))
	}

	// 導通確認用
	health := handler.NewHealth(h.HealthChecks...)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	// 銘柄クオート
	r.GET("/stocks", h.Stocks.List)
	r.GET("/stocks/:symbol", h.Stocks.Get)

	// データセット（CSVアップロードと正規化済み系列）
	datasets := r.Group("/datasets")
	{
		datasets.GET("/sources", h.Datasets.Sources)
		datasets.POST("/:symbol", h.Datasets.Upload)
		datasets.GET("/:symbol/historical", h.Datasets.Historical)
		datasets.GET("/:symbol/prediction", h.Datasets.Prediction)
		datasets.GET("/:symbol/status", h.Datasets.Status)
	}

	// チャート
	charts := r.Group("/charts")
	{
		charts.GET("/:symbol/technical", h.Charts.Technical)
		charts.GET("/:symbol/forecast", h.Charts.Forecast)
	}

	return r
}
