// Package dto はmarketstack APIレスポンスのデコード用構造体を定義します。
package dto

// TickerSearchResponse は /v1/tickers 検索エンドポイントのレスポンスです。
type TickerSearchResponse struct {
	Data []TickerData `json:"data"`
}

// TickerData は検索結果の1候補です。
type TickerData struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
