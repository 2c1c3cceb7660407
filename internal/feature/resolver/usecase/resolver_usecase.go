package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// symbolShape は入力がティッカーシンボルそのものとみなせる形かを判定します。
// 大文字・数字・ドットの1〜5文字。この形に一致する入力は解決処理を完全に
// スキップします（シンボルの形をした社名は誤判定されますが、観測された仕様です）。
var symbolShape = regexp.MustCompile(`^[A-Z0-9.]{1,5}$`)

// SymbolIndex はローカル銘柄データセットの検索を抽象化します。
// ヒットしないことは正常系であり、エラーではなくok=falseで表現します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolIndex interface {
	Lookup(companyFragment string) (symbol string, ok bool)
}

// SearchRepository はリモートのティッカー検索APIを抽象化します。
type SearchRepository interface {
	SearchTickers(ctx context.Context, query string) ([]string, error)
}

// ResolverUsecase は自由入力をティッカーシンボルへ解決するユースケースです。
// ローカルデータセットを優先し、ミス時のみリモート検索へフォールバックします。
type ResolverUsecase struct {
	index  SymbolIndex
	search SearchRepository
}

// NewResolverUsecase はResolverUsecaseの新しいインスタンスを生成します。
func NewResolverUsecase(index SymbolIndex, search SearchRepository) *ResolverUsecase {
	return &ResolverUsecase{index: index, search: search}
}

// Resolve は自由入力を正規化されたティッカーシンボルへ解決します。
//
// 解決順序:
//  1. シンボル形状の入力はそのまま（大文字化のみ）返す。ルックアップなし。
//  2. ローカルデータセットの部分一致。ネットワークなし。
//  3. リモート検索。候補ゼロはErrNotFound、通信・応答異常はErrUpstream。
//
// 複数候補からは最短のシンボルを選びます（同長は先勝ち）。短いシンボルの方が
// 主要上場であることが多いためです。
func (u *ResolverUsecase) Resolve(ctx context.Context, rawText string) (string, error) {
	input := strings.TrimSpace(rawText)

	if symbolShape.MatchString(input) {
		return strings.ToUpper(input), nil
	}

	if symbol, ok := u.index.Lookup(input); ok {
		return strings.ToUpper(symbol), nil
	}

	candidates, err := u.search.SearchTickers(ctx, input)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w for %q", ErrNotFound, input)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return strings.ToUpper(best), nil
}
