// Package handler はfeedbackフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockbot_backend/internal/feature/feedback/usecase"
)

// FeedbackUsecase はフィードバック送信のインターフェースです。
type FeedbackUsecase interface {
	Submit(ctx context.Context, userID int64, text string) error
}

// feedbackRequest は直接送信エンドポイントのリクエストボディです。
type feedbackRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Text   string `json:"text"`
}

// FeedbackHandler はフィードバックのHTTPリクエストを処理します。
type FeedbackHandler struct {
	uc FeedbackUsecase
}

// NewFeedbackHandler は指定されたusecaseでFeedbackHandlerの新しいインスタンスを生成します。
func NewFeedbackHandler(uc FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

// Post はフィードバック1件をシンクへ追記します。
//
// エンドポイント:
// POST /v1/feedback {"user_id": 123, "text": "I love this bot!"}
func (h *FeedbackHandler) Post(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.Submit(c.Request.Context(), req.UserID, req.Text); err != nil {
		if errors.Is(err, usecase.ErrEmptyFeedback) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "ok"})
}
