// Package dto はメッセージエンドポイントのリクエスト/レスポンス構造体を定義します。
package dto

// MessageRequest は会話フロントエンドへの1メッセージです。
// UserIDは不透明な数値識別子で、それ以上の認証は行いません。
type MessageRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Text   string `json:"text"`
}

// MessageResponse はボットの返信テキストです。
type MessageResponse struct {
	Reply string `json:"reply"`
}
