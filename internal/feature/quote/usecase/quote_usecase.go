package usecase

import (
	"context"
	"fmt"

	"stockbot_backend/internal/feature/quote/domain/entity"
)

// MaxMessageLength はユーザー向けサマリーの最大文字数です。
// メッセージ配送側のペイロード上限に合わせた防御的な境界です。
const MaxMessageLength = 4000

// MarketRepository は直近の日次株価レコードを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetEndOfDay(ctx context.Context, symbol string) (entity.EndOfDay, error)
}

// QuoteUsecase は株価サマリーの取得と整形のユースケースを定義します。
type QuoteUsecase struct {
	market MarketRepository
}

// NewQuoteUsecase はQuoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(market MarketRepository) *QuoteUsecase {
	return &QuoteUsecase{market: market}
}

// GetQuote は指定シンボルの直近日次レコードを取得し、騰落率を計算します。
// 始値ゼロでは騰落率が定義できないためErrMalformedを返します
// （Inf/NaNを呼び出し元に渡してはなりません）。
func (u *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	eod, err := u.market.GetEndOfDay(ctx, symbol)
	if err != nil {
		return entity.Quote{}, err
	}

	if eod.Open == 0 {
		return entity.Quote{}, fmt.Errorf("%w: zero previous open for %s", ErrMalformed, symbol)
	}

	return entity.Quote{
		Symbol:        symbol,
		LastClose:     eod.Close,
		PreviousOpen:  eod.Open,
		PercentChange: (eod.Close - eod.Open) / eod.Open * 100,
	}, nil
}

// FetchSummary は株価サマリーを取得し、ユーザー向けの3行テキストに整形します。
func (u *QuoteUsecase) FetchSummary(ctx context.Context, symbol string) (string, error) {
	q, err := u.GetQuote(ctx, symbol)
	if err != nil {
		return "", err
	}
	return FormatSummary(q), nil
}

// FormatSummary はQuoteを3行のサマリーテキストに整形します。
// 上限を超えた場合は末尾を省略記号で打ち切ります。
func FormatSummary(q entity.Quote) string {
	s := fmt.Sprintf("Stock: %s\nLast Price: %.2f$\nDaily Change: %.2f%%",
		q.Symbol, q.LastClose, q.PercentChange)
	return Truncate(s, MaxMessageLength)
}

// Truncate はmaxを超える文字列を打ち切り、末尾に"..."を付与します。
func Truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
