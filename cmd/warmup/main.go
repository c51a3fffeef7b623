package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_dashboard/internal/app/config"
	"stock_dashboard/internal/app/di"
	datasetsusecase "stock_dashboard/internal/feature/datasets/usecase"
	stocksusecase "stock_dashboard/internal/feature/stocks/usecase"
	"stock_dashboard/internal/platform/logger"
	"stock_dashboard/internal/platform/redis"
	"stock_dashboard/internal/shared/ratelimiter"
)

func main() {
	refresh := flag.Bool("refresh", false, "purge cached datasets before warming")
	symbolsFlag := flag.String("symbols", "", "comma-separated symbols (default: popular symbols)")
	flag.Parse()

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var rdb *redisv9.Client
	if rc := cfg.RedisConfig(); rc.Enabled() {
		if tmp, err := redis.NewRedisClient(ctx, rc); err != nil {
			slog.Warn("Redis unavailable. Warming without cache.")
		} else {
			rdb = tmp
			defer func() { _ = rdb.Close() }()
		}
	}

	source := di.NewDefaultSource(cfg, di.NewStaticDataClient(cfg.StaticData()), rdb)
	if *refresh {
		if err := source.Purge(ctx); err != nil {
			slog.Error("failed to purge cache", "error", err)
			os.Exit(1)
		}
		slog.Info("cache purged", "namespace", cfg.Cache.Namespace)
	}

	symbols := stocksusecase.PopularSymbols
	if *symbolsFlag != "" {
		symbols = strings.Split(*symbolsFlag, ",")
	}

	uc := datasetsusecase.NewWarmupUsecase(source,
		ratelimiter.NewRateLimiter(cfg.Warmup.RateLimit, cfg.Warmup.RateWindow))
	warmed, err := uc.WarmAll(ctx, symbols)
	if err != nil {
		slog.Error("warmup aborted", "warmed", warmed, "error", err)
		os.Exit(1)
	}
	slog.Info("warmup ok", "warmed", warmed)
}
