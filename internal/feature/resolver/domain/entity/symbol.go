// Package entity はresolverフィーチャーのドメインエンティティを定義します。
package entity

// SymbolRecord はローカル銘柄データセットの1行（ティッカーシンボルと会社名の組）です。
// 起動時に一度読み込まれ、実行中は変更されません。
type SymbolRecord struct {
	Symbol      string
	CompanyName string
}
