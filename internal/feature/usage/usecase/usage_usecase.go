// Package usecase はユーザーごとの利用回数台帳のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"sync"
)

// MaxSearches はユーザーごとに許可される検索回数の上限です。
const MaxSearches = 5

// Repository は台帳の永続化レイヤーを抽象化します。
// テーブル全体を起動時に読み込み、変更のたびに全量を書き戻します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Repository interface {
	// LoadAll は永続化済みの全ユーザーの回数を返します。
	LoadAll(ctx context.Context) (map[int64]int, error)
	// SaveAll は全ユーザーの回数を書き戻します。
	SaveAll(ctx context.Context, counts map[int64]int) error
	// Reset は指定ユーザーの回数レコードを削除します（帯域外リセット用）。
	Reset(ctx context.Context, userID int64) error
}

// Ledger はユーザーごとの利用回数をメモリ上に保持し、変更のたびに
// リポジトリへフラッシュする台帳です。
//
// インメモリのテーブルは全リクエストで共有される可変状態のため、
// 読み取り・加算・フラッシュの一連をミューテックスで保護します。
type Ledger struct {
	mu     sync.Mutex
	counts map[int64]int
	repo   Repository
}

// NewLedger はリポジトリから全レコードを読み込んだ台帳を生成します。
// 読み込み失敗は起動エラーです。
func NewLedger(ctx context.Context, repo Repository) (*Ledger, error) {
	counts, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load usage counts: %w", err)
	}
	if counts == nil {
		counts = make(map[int64]int)
	}
	return &Ledger{counts: counts, repo: repo}, nil
}

// Remaining は指定ユーザーの残り検索回数を返します。純粋な読み取りで、
// 状態の変更もI/Oも行いません。未知のユーザーは全枠が残っています。
func (l *Ledger) Remaining(userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := MaxSearches - l.counts[userID]
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Count は指定ユーザーの累計利用回数を返します。
func (l *Ledger) Count(userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[userID]
}

// RecordUse は指定ユーザーの回数を1加算し、テーブル全体を永続化します。
// 回数はプロセス生存期間中、単調非減少です。
func (l *Ledger) RecordUse(ctx context.Context, userID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[userID]++

	// フラッシュ中の並行変更を避けるためコピーを渡す
	snapshot := make(map[int64]int, len(l.counts))
	for k, v := range l.counts {
		snapshot[k] = v
	}
	if err := l.repo.SaveAll(ctx, snapshot); err != nil {
		return fmt.Errorf("save usage counts: %w", err)
	}
	return nil
}
