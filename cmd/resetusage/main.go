// resetusage は指定ユーザーの検索回数を帯域外でリセットする運用コマンドです。
// 枠を使い切ったユーザーはサービス内では二度と回復しないため、
// このコマンドが唯一のリセット手段です。
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	usageadapters "stockbot_backend/internal/feature/usage/adapters"
	usageusecase "stockbot_backend/internal/feature/usage/usecase"
	"stockbot_backend/internal/platform/config"
	"stockbot_backend/internal/platform/db"
	platformredis "stockbot_backend/internal/platform/redis"
)

func main() {
	userID := flag.Int64("user", 0, "user id to reset")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("usage: resetusage -user <id>")
	}

	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	repo, err := newUsageRepository(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.Reset(ctx, *userID); err != nil {
		log.Fatal("failed to reset usage count:", err)
	}
	log.Printf("usage count reset for user %d", *userID)
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
