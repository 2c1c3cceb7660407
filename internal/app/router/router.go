package router

import (
	"github.com/gin-gonic/gin"

	fbhandler "stockbot_backend/internal/feature/feedback/transport/handler"
	msghandler "stockbot_backend/internal/feature/orchestrator/transport/handler"
	"stockbot_backend/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを配線したginエンジンを生成します。
func NewRouter(messages *msghandler.MessageHandler, feedback *fbhandler.FeedbackHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 会話フロントエンド（コマンドルーター）
	r.POST("/v1/messages", messages.Post)
	// フィードバック直接送信
	r.POST("/v1/feedback", feedback.Post)

	return r
}
