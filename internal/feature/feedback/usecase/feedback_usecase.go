// Package usecase はユーザーフィードバック収集のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyFeedback is returned when a feedback submission carries no text.
var ErrEmptyFeedback = errors.New("feedback text is empty")

// Store はフィードバックの追記専用シンクを抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type Store interface {
	Append(ctx context.Context, userID int64, text string) error
}

// FeedbackUsecase はフィードバック送信のユースケースを定義します。
type FeedbackUsecase struct {
	store Store
}

// NewFeedbackUsecase はFeedbackUsecaseの新しいインスタンスを生成します。
func NewFeedbackUsecase(store Store) *FeedbackUsecase {
	return &FeedbackUsecase{store: store}
}

// Submit は空でないフィードバックをシンクへ追記します。
func (u *FeedbackUsecase) Submit(ctx context.Context, userID int64, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyFeedback
	}
	return u.store.Append(ctx, userID, text)
}
