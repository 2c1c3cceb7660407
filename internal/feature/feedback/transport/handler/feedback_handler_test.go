package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockbot_backend/internal/feature/feedback/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockFeedbackUsecase はFeedbackUsecaseインターフェースのモック実装です。
type mockFeedbackUsecase struct {
	SubmitFunc func(ctx context.Context, userID int64, text string) error
}

func (m *mockFeedbackUsecase) Submit(ctx context.Context, userID int64, text string) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, userID, text)
	}
	return nil
}

// postFeedback はPOST /v1/feedbackをテスト用ルーター経由で実行します。
func postFeedback(t *testing.T, h *FeedbackHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	r.POST("/v1/feedback", h.Post)

	req := httptest.NewRequest(http.MethodPost, "/v1/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFeedbackHandler_Post_Success(t *testing.T) {
	t.Parallel()

	uc := &mockFeedbackUsecase{
		SubmitFunc: func(ctx context.Context, userID int64, text string) error {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "I love this bot!", text)
			return nil
		},
	}
	h := NewFeedbackHandler(uc)

	w := postFeedback(t, h, `{"user_id": 42, "text": "I love this bot!"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestFeedbackHandler_Post_InvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{not json`},
		{"missing user_id", `{"text": "hello"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewFeedbackHandler(&mockFeedbackUsecase{})

			w := postFeedback(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFeedbackHandler_Post_EmptyFeedbackIsBadRequest(t *testing.T) {
	t.Parallel()

	uc := &mockFeedbackUsecase{
		SubmitFunc: func(ctx context.Context, userID int64, text string) error {
			return usecase.ErrEmptyFeedback
		},
	}
	h := NewFeedbackHandler(uc)

	w := postFeedback(t, h, `{"user_id": 42, "text": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackHandler_Post_StoreFailureIsInternalError(t *testing.T) {
	t.Parallel()

	uc := &mockFeedbackUsecase{
		SubmitFunc: func(ctx context.Context, userID int64, text string) error {
			return errors.New("disk full")
		},
	}
	h := NewFeedbackHandler(uc)

	w := postFeedback(t, h, `{"user_id": 42, "text": "hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
