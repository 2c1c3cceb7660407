package dto

// EODResponse は /v1/eod エンドポイントのレスポンスです。
type EODResponse struct {
	Data []EODData `json:"data"`
}

// EODData は1件の日次レコードです。価格は文字列エンコードされた数値です。
type EODData struct {
	Symbol string `json:"symbol"`
	Close  string `json:"close"`
	Open   string `json:"open"`
	Date   string `json:"date"`
}
