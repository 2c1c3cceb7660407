// Package handler は会話フロントエンドのHTTPハンドラーを提供します。
// 自由テキストを固定コマンド集合へ振り分け、検索パイプラインへ委譲します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	feedbackusecase "stockbot_backend/internal/feature/feedback/usecase"
	"stockbot_backend/internal/feature/orchestrator/transport/http/dto"
	"stockbot_backend/internal/feature/orchestrator/usecase"
)

// SearchUsecase は検索パイプラインのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SearchUsecase interface {
	HandleSearch(ctx context.Context, userID int64, rawText string) (string, error)
}

// FeedbackUsecase はフィードバック送信のインターフェースです。
type FeedbackUsecase interface {
	Submit(ctx context.Context, userID int64, text string) error
}

// コマンドごとの定型応答。コマンド自体の集合は固定です。
var commandReplies = map[string]string{
	"/start": "Welcome to the Stock Info Bot! Use /search to get stock prices, /recent to view your recent searches, and /help for more commands.",
	"/help": "Welcome to Stock Info Bot! Here's how you can interact with me:\n" +
		"- Simply type a company's name or ticker symbol (like 'Apple' or 'AAPL') to get its latest stock information.\n" +
		"- Use /search followed by a company's name or ticker to initiate a detailed search (e.g., '/search Apple').\n" +
		"- Use /recent to see your recent searches.\n" +
		"- Use /empty to clear your recent searches.\n" +
		"For any assistance, type /help.",
	"/search": "To perform a detailed search, type /search followed by the company's name or ticker symbol (e.g., '/search Tesla' or '/search TSLA').\n" +
		"Alternatively, you can also simply type the name or ticker of the stock (like 'Nike' or 'NKE') for a quick search.",
	"/recent":   "Your recent searches: [list of recent searches]. Use /search to find more stocks.",
	"/empty":    "Your search history has been cleared.",
	"/feedback": "Please type your feedback after /feedback command. For example: /feedback I love this bot!",
}

const quotaExceededReply = "You have reached the limit of searches. Thank you for testing the bot!\n" +
	"If you liked the bot or want to help us improve, we invite you to leave feedback.\n" +
	"Click on the menu and select /feedback or simply type /feedback followed by your message."

// MessageHandler は受信メッセージをコマンドまたは検索として処理します。
type MessageHandler struct {
	search   SearchUsecase
	feedback FeedbackUsecase
}

// NewMessageHandler は指定されたusecase群でMessageHandlerの新しいインスタンスを生成します。
func NewMessageHandler(search SearchUsecase, feedback FeedbackUsecase) *MessageHandler {
	return &MessageHandler{search: search, feedback: feedback}
}

// Post は1メッセージを処理して返信テキストを返します。
//
// エンドポイント:
// POST /v1/messages {"user_id": 123, "text": "Apple"}
func (h *MessageHandler) Post(c *gin.Context) {
	var req dto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply := h.route(c.Request.Context(), req.UserID, strings.TrimSpace(req.Text))
	c.JSON(http.StatusOK, dto.MessageResponse{Reply: reply})
}

// route はメッセージをコマンド・フィードバック・検索のいずれかへ振り分けます。
func (h *MessageHandler) route(ctx context.Context, userID int64, input string) string {
	// 定義済みコマンドに完全一致すれば定型応答
	if reply, ok := commandReplies[input]; ok {
		return reply
	}

	// フィードバック送信
	if strings.HasPrefix(input, "/feedback") {
		text := strings.TrimSpace(strings.TrimPrefix(input, "/feedback"))
		if err := h.feedback.Submit(ctx, userID, text); err != nil {
			if errors.Is(err, feedbackusecase.ErrEmptyFeedback) {
				return "Please provide your feedback after the command. For example: /feedback I love this bot!"
			}
			return fmt.Sprintf("An error occurred: %v", err)
		}
		return "Thank you for your feedback!"
	}

	// それ以外は検索パイプライン
	summary, err := h.search.HandleSearch(ctx, userID, input)
	if err != nil {
		return failureReply(err)
	}
	return summary
}

// failureReply はパイプラインの失敗種別をユーザー向けメッセージへ変換します。
// 原因が取得できる場合はそのテキストを含め、失敗を黙って握りつぶしません。
func failureReply(err error) string {
	var f *usecase.Failure
	if !errors.As(err, &f) {
		return fmt.Sprintf("An error occurred: %v", err)
	}

	switch f.Kind {
	case usecase.KindInvalidInput:
		return "Please provide a valid input."
	case usecase.KindQuotaExceeded:
		return quotaExceededReply
	default:
		if f.Cause != nil {
			return fmt.Sprintf("An error occurred: %v", f.Cause)
		}
		return "An error occurred. Please try again."
	}
}
