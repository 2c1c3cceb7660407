package adapters

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageRedis_LoadAll(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "usage")

	mock.ExpectScan(0, "usage:*", 200).SetVal([]string{"usage:42", "usage:7"}, 0)
	mock.ExpectGet("usage:42").SetVal("3")
	mock.ExpectGet("usage:7").SetVal("5")

	counts, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]int{42: 3, 7: 5}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestUsageRedis_LoadAll_SkipsForeignKeys はプレフィックス配下でも
// ユーザーIDとして解釈できないキーが無視されることを検証します。
func TestUsageRedis_LoadAll_SkipsForeignKeys(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "usage")

	mock.ExpectScan(0, "usage:*", 200).SetVal([]string{"usage:meta", "usage:42"}, 0)
	mock.ExpectGet("usage:42").SetVal("3")

	counts, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]int{42: 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRedis_LoadAll_BadCountIsError(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "usage")

	mock.ExpectScan(0, "usage:*", 200).SetVal([]string{"usage:42"}, 0)
	mock.ExpectGet("usage:42").SetVal("not-a-number")

	_, err := repo.LoadAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse count for usage:42")
}

func TestUsageRedis_SaveAll(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "usage")

	// 書き込みはユーザーID昇順
	mock.ExpectSet("usage:7", "5", 0).SetVal("OK")
	mock.ExpectSet("usage:42", "3", 0).SetVal("OK")

	err := repo.SaveAll(context.Background(), map[int64]int{42: 3, 7: 5})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageRedis_Reset(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "usage")

	mock.ExpectDel("usage:42").SetVal(1)

	err := repo.Reset(context.Background(), 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestNewUsageRedis_DefaultPrefix は空プレフィックスがデフォルト値に
// 置き換わることを検証します。
func TestNewUsageRedis_DefaultPrefix(t *testing.T) {
	t.Parallel()

	client, mock := redismock.NewClientMock()
	repo := NewUsageRedis(client, "")

	mock.ExpectDel("usage:42").SetVal(1)

	require.NoError(t, repo.Reset(context.Background(), 42))
	assert.NoError(t, mock.ExpectationsWereMet())
}
