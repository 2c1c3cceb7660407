package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はインメモリSQLiteでテスト用DBをセットアップします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&UsageCountModel{}))
	return db
}

func TestUsageGorm_LoadAll_EmptyTable(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))

	counts, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestUsageGorm_SaveAll_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))

	want := map[int64]int{42: 3, 7: 5}
	require.NoError(t, repo.SaveAll(context.Background(), want))

	got, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestUsageGorm_SaveAll_Upsert は既存レコードが上書きされることを検証します。
func TestUsageGorm_SaveAll_Upsert(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))

	require.NoError(t, repo.SaveAll(context.Background(), map[int64]int{42: 1}))
	require.NoError(t, repo.SaveAll(context.Background(), map[int64]int{42: 2, 7: 1}))

	got, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[int64]int{42: 2, 7: 1}, got)
}

func TestUsageGorm_SaveAll_EmptyMapIsNoop(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))

	require.NoError(t, repo.SaveAll(context.Background(), map[int64]int{}))
}

func TestUsageGorm_Reset(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))
	require.NoError(t, repo.SaveAll(context.Background(), map[int64]int{42: 5, 7: 2}))

	require.NoError(t, repo.Reset(context.Background(), 42))

	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{7: 2}, got)
}

func TestUsageGorm_Reset_UnknownUserIsNoop(t *testing.T) {
	t.Parallel()

	repo := NewUsageGorm(setupTestDB(t))
	require.NoError(t, repo.SaveAll(context.Background(), map[int64]int{7: 2}))

	require.NoError(t, repo.Reset(context.Background(), 999))

	got, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{7: 2}, got)
}
