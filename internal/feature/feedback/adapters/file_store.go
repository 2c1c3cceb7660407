// Package adapters はfeedbackフィーチャーのシンク実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"os"

	"stockbot_backend/internal/feature/feedback/usecase"
)

// fileStore は1行1件の追記専用テキストファイルへのStore実装です。
type fileStore struct {
	path string
}

var _ usecase.Store = (*fileStore)(nil)

// NewFileStore は指定されたパスへ追記するストアを生成します。
// ファイルは最初の追記時に作成されます。
func NewFileStore(path string) *fileStore {
	return &fileStore{path: path}
}

// Append は "Feedback from <userId>: <text>" 形式の1行を追記します。
func (s *fileStore) Append(ctx context.Context, userID int64, text string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "Feedback from %d: %s\n", userID, text); err != nil {
		return err
	}
	return nil
}
