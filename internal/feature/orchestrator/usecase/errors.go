// Package usecase は検索リクエスト全体を駆動するオーケストレーターを実装します。
package usecase

import "fmt"

// FailureKind はリクエストパイプラインの失敗種別です。
// ハンドラーはこの種別で網羅的に分岐し、ユーザー向けメッセージへ変換します。
type FailureKind int

const (
	// KindInvalidInput は空入力など、形として受け付けられない入力です。
	KindInvalidInput FailureKind = iota
	// KindQuotaExceeded はユーザーの検索枠が尽きている状態です。
	KindQuotaExceeded
	// KindResolutionNotFound は社名に対応するティッカーが見つからなかった状態です。
	KindResolutionNotFound
	// KindResolutionUpstream はティッカー検索APIの通信・応答異常です。
	KindResolutionUpstream
	// KindMarketNoData は日次データがゼロ件だった状態です。
	KindMarketNoData
	// KindMarketUpstream は株価APIの通信・応答異常です。
	KindMarketUpstream
	// KindMarketMalformed は必須フィールドの欠落・不正な価格データです。
	KindMarketMalformed
)

// String はログ用の種別名を返します。
func (k FailureKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindResolutionNotFound:
		return "resolution_not_found"
	case KindResolutionUpstream:
		return "resolution_upstream"
	case KindMarketNoData:
		return "market_no_data"
	case KindMarketUpstream:
		return "market_upstream"
	case KindMarketMalformed:
		return "market_malformed"
	default:
		return "unknown"
	}
}

// Failure はパイプラインの失敗を種別と原因で表すエラー型です。
// プロセスを落とす失敗は存在せず、すべてリクエスト単位で回復可能です。
type Failure struct {
	Kind  FailureKind
	Cause error
}

// Error はerrorインターフェースを実装します。
func (f *Failure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Cause)
	}
	return f.Kind.String()
}

// Unwrap は原因エラーを返します。errors.Is/Asによる検査を可能にします。
func (f *Failure) Unwrap() error {
	return f.Cause
}

// newFailure は種別と原因からFailureを生成します。
func newFailure(kind FailureKind, cause error) *Failure {
	return &Failure{Kind: kind, Cause: cause}
}
