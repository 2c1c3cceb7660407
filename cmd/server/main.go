package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"stockbot_backend/internal/app/router"
	feedbackadapters "stockbot_backend/internal/feature/feedback/adapters"
	fbhandler "stockbot_backend/internal/feature/feedback/transport/handler"
	feedbackusecase "stockbot_backend/internal/feature/feedback/usecase"
	msghandler "stockbot_backend/internal/feature/orchestrator/transport/handler"
	orchusecase "stockbot_backend/internal/feature/orchestrator/usecase"
	quoteusecase "stockbot_backend/internal/feature/quote/usecase"
	resolveradapters "stockbot_backend/internal/feature/resolver/adapters"
	resolverusecase "stockbot_backend/internal/feature/resolver/usecase"
	usageadapters "stockbot_backend/internal/feature/usage/adapters"
	usageusecase "stockbot_backend/internal/feature/usage/usecase"
	"stockbot_backend/internal/platform/config"
	"stockbot_backend/internal/platform/db"
	"stockbot_backend/internal/platform/externalapi/marketstack"
	platformhttp "stockbot_backend/internal/platform/http"
	platformredis "stockbot_backend/internal/platform/redis"
	"stockbot_backend/internal/shared/ratelimiter"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 設定（必須キーの欠如は起動失敗）
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ローカル銘柄データセット（欠如は起動失敗）
	index, err := resolveradapters.NewCSVIndex(cfg.SymbolCSVPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("symbol dataset loaded: %d records", index.Len())

	// 外部APIクライアント
	httpClient := platformhttp.NewHTTPClient(cfg.HTTPTimeout)
	limiter := ratelimiter.NewRateLimiter(5, time.Second)
	market := marketstack.NewClient(marketstack.Config{
		AccessKey: cfg.MarketAPIKey,
		BaseURL:   cfg.MarketBaseURL,
		Timeout:   cfg.HTTPTimeout,
	}, httpClient, limiter)

	// 利用回数台帳（バックエンドは設定で選択）
	usageRepo, err := newUsageRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ledger, err := usageusecase.NewLedger(context.Background(), usageRepo)
	if err != nil {
		log.Fatal(err)
	}

	// Usecase
	resolverUC := resolverusecase.NewResolverUsecase(index, market)
	quoteUC := quoteusecase.NewQuoteUsecase(market)
	searchUC := orchusecase.NewOrchestrator(resolverUC, quoteUC, ledger)
	feedbackUC := feedbackusecase.NewFeedbackUsecase(feedbackadapters.NewFileStore(cfg.FeedbackPath))

	// Handler
	messagesH := msghandler.NewMessageHandler(searchUC, feedbackUC)
	feedbackH := fbhandler.NewFeedbackHandler(feedbackUC)

	// ルータ生成
	r := router.NewRouter(messagesH, feedbackH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// newUsageRepository は設定された台帳バックエンドのリポジトリを生成します。
func newUsageRepository(cfg config.Config) (usageusecase.Repository, error) {
	switch cfg.UsageBackend {
	case "gorm":
		gdb, err := db.Open(cfg.DatabaseURL, cfg.SQLitePath, &usageadapters.UsageCountModel{})
		if err != nil {
			return nil, err
		}
		return usageadapters.NewUsageGorm(gdb), nil
	case "redis":
		rdb, err := platformredis.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		return usageadapters.NewUsageRedis(rdb, "usage"), nil
	default:
		return usageadapters.NewUsageFile(cfg.UsagePath), nil
	}
}
