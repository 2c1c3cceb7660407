// Package db は利用回数台帳の永続化に使うgorm接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// retryInterval は接続リトライの間隔です。
const retryInterval = 3 * time.Second

// OpenFunc はgorm接続を開く関数です。テストで差し替え可能にするために分離しています。
type OpenFunc func(dialector gorm.Dialector) (*gorm.DB, error)

// SelectDialector は設定に応じたgormダイアレクタを返します。
// DATABASE_URLが設定されていればPostgres、未設定ならSQLiteファイルを使用します。
func SelectDialector(databaseURL, sqlitePath string) gorm.Dialector {
	if databaseURL != "" {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(sqlitePath)
}

// ConnectWithRetry はタイムアウトまで一定間隔で接続を試みます。
// コンテナ起動直後などDBがまだ受け付けていないケースを吸収します。
func ConnectWithRetry(dialector gorm.Dialector, timeout time.Duration, opener OpenFunc) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dialector)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Open は接続を確立し、渡されたモデルのマイグレーションを実行します。
func Open(databaseURL, sqlitePath string, models ...any) (*gorm.DB, error) {
	dialector := SelectDialector(databaseURL, sqlitePath)

	db, err := ConnectWithRetry(dialector, 60*time.Second, func(d gorm.Dialector) (*gorm.DB, error) {
		return gorm.Open(d, &gorm.Config{})
	})
	if err != nil {
		return nil, err
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return db, nil
}
