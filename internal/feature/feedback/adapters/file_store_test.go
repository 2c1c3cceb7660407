package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Append_LineFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.txt")
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), 42, "I love this bot!"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Feedback from 42: I love this bot!\n", string(raw))
}

// TestFileStore_Append_Accumulates は複数件のフィードバックが
// 追記で蓄積されることを検証します。
func TestFileStore_Append_Accumulates(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.txt")
	store := NewFileStore(path)

	require.NoError(t, store.Append(context.Background(), 42, "first"))
	require.NoError(t, store.Append(context.Background(), 7, "second"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Feedback from 42: first\nFeedback from 7: second\n", string(raw))
}

func TestFileStore_Append_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "feedback.txt")
	store := NewFileStore(path)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, store.Append(context.Background(), 42, "hello"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStore_Append_MissingDirectoryIsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "no-such-dir", "feedback.txt")
	store := NewFileStore(path)

	err := store.Append(context.Background(), 42, "hello")

	assert.Error(t, err)
}
