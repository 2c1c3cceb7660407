// Package entity はquoteフィーチャーのドメインエンティティを定義します。
package entity

// EndOfDay は外部APIから取得した直近の日次レコード（終値・始値）です。
type EndOfDay struct {
	Symbol string
	Close  float64
	Open   float64
}

// Quote はリクエストごとに導出される株価サマリーです。永続化されません。
type Quote struct {
	Symbol        string
	LastClose     float64
	PreviousOpen  float64
	PercentChange float64
}
