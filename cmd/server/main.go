package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	"stock_dashboard/internal/app/scheduler"
	chartshandler "stock_dashboard/internal/feature/charts/transport/handler"
	chartsusecase "stock_dashboard/internal/feature/charts/usecase"
	datasetshandler "stock_dashboard/internal/feature/datasets/transport/handler"
	datasetsusecase "stock_dashboard/internal/feature/datasets/usecase"
	stockshandler "stock_dashboard/internal/feature/stocks/transport/handler"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
	platformhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/platform/logger"
	"stock_dashboard/internal/platform/metrics"
	"stock_dashboard/internal/platform/redis"
	"stock_dashboard/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("config validation", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis（未設定・接続失敗時はキャッシュなしで動作）
	var rdb *redisv9.Client
	if rc := cfg.RedisConfig(); rc.Enabled() {
		if tmp, err := redis.NewRedisClient(ctx, rc); err != nil {
			slog.Warn("Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	m := metrics.New()

	// Data sources
	client := di.NewStaticDataClient(cfg.StaticData())
	defaults := di.NewDefaultSource(cfg, client, rdb)
	store := di.NewDatasetStore(defaults, m)

	// Usecase
	uploadUC := datasetsusecase.NewUploadUsecase(store, m)
	queryUC := datasetsusecase.NewQueryUsecase(store)
	chartUC := chartsusecase.NewChartUsecase(store)
	stockUC := di.NewStockUsecase(client)
	warmupUC := datasetsusecase.NewWarmupUsecase(defaults,
		ratelimiter.NewRateLimiter(cfg.Warmup.RateLimit, cfg.Warmup.RateWindow))

	// Scheduler
	sched := scheduler.NewScheduler(ctx, warmupUC, stocksusecase.PopularSymbols)
	if err := sched.Register(cfg.Warmup.Cron); err != nil {
		slog.Error("register cron tasks", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		slog.Info("RUN_ON_START enabled, warming datasets now")
		go sched.RunWarmupNow()
	}

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Datasets:     datasetshandler.NewDatasetHandler(uploadUC, queryUC),
		Charts:       chartshandler.NewChartHandler(chartUC),
		Stocks:       stockshandler.NewStockHandler(stockUC),
		Metrics:      m.Handler(),
		HealthChecks: healthChecks(rdb),
	}, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "data_host", cfg.DataSource.BaseURL, "cache", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// healthChecks は /healthz で確認する依存先を返します。Redis はなくても動作するため任意です。
func healthChecks(rdb *redisv9.Client) []platformhandler.Check {
	if rdb == nil {
		return nil
	}
	return []platformhandler.Check{{
		Name: "redis",
		Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	}}
}
