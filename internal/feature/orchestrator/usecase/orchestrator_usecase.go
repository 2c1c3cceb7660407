package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	quoteusecase "stockbot_backend/internal/feature/quote/usecase"
	resolverusecase "stockbot_backend/internal/feature/resolver/usecase"
)

// TickerResolver は自由入力をティッカーへ解決するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (orchestrator), not the provider.
type TickerResolver interface {
	Resolve(ctx context.Context, rawText string) (string, error)
}

// QuoteFetcher は整形済みの株価サマリーを取得するユースケースのインターフェースです。
type QuoteFetcher interface {
	FetchSummary(ctx context.Context, symbol string) (string, error)
}

// UsageLedger はユーザーごとの利用回数台帳のインターフェースです。
type UsageLedger interface {
	Remaining(userID int64) int
	RecordUse(ctx context.Context, userID int64) error
}

// Orchestrator は1件の検索リクエストを検証→枠確認→解決→取得→記帳の順で
// 駆動するファサードです。リクエストごとに独立しており、部分的な結果は
// 返しません。
type Orchestrator struct {
	resolver TickerResolver
	quotes   QuoteFetcher
	ledger   UsageLedger
}

// NewOrchestrator はOrchestratorの新しいインスタンスを生成します。
func NewOrchestrator(resolver TickerResolver, quotes QuoteFetcher, ledger UsageLedger) *Orchestrator {
	return &Orchestrator{resolver: resolver, quotes: quotes, ledger: ledger}
}

// HandleSearch は検索リクエストを処理し、整形済みサマリーを返します。
// 失敗はすべて*Failureとして返り、呼び出し元が種別ごとにメッセージ化します。
//
// 記帳はパイプライン全体が成功した場合に、リクエストあたりちょうど1回だけ
// 行います。旧実装には社名解決経路で2回加算される重複がありましたが、
// 本実装では1リクエスト1加算に統一しています。
func (o *Orchestrator) HandleSearch(ctx context.Context, userID int64, rawText string) (string, error) {
	input := strings.TrimSpace(rawText)
	if input == "" {
		return "", newFailure(KindInvalidInput, nil)
	}

	// 枠が尽きていれば以降の処理もI/Oも行わない
	if o.ledger.Remaining(userID) <= 0 {
		return "", newFailure(KindQuotaExceeded, nil)
	}

	symbol, err := o.resolver.Resolve(ctx, input)
	if err != nil {
		return "", newFailure(resolutionKind(err), err)
	}

	summary, err := o.quotes.FetchSummary(ctx, symbol)
	if err != nil {
		return "", newFailure(marketKind(err), err)
	}

	// 記帳の失敗で成功済みの結果は破棄しない。ログに残すのみ。
	if err := o.ledger.RecordUse(ctx, userID); err != nil {
		slog.Error("failed to persist usage count", "user_id", userID, "error", err)
	}

	return summary, nil
}

// resolutionKind は解決エラーを失敗種別へ写像します。
func resolutionKind(err error) FailureKind {
	if errors.Is(err, resolverusecase.ErrNotFound) {
		return KindResolutionNotFound
	}
	return KindResolutionUpstream
}

// marketKind は株価取得エラーを失敗種別へ写像します。
func marketKind(err error) FailureKind {
	switch {
	case errors.Is(err, quoteusecase.ErrNoData):
		return KindMarketNoData
	case errors.Is(err, quoteusecase.ErrMalformed):
		return KindMarketMalformed
	default:
		return KindMarketUpstream
	}
}
