package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockbot_backend/internal/feature/usage/usecase"
)

// UsageCountModel はusage_countsテーブルの1行です。ユーザーごとに1レコード。
type UsageCountModel struct {
	UserID int64 `gorm:"primaryKey;autoIncrement:false"`
	Count  int   `gorm:"not null;default:0"`
}

// TableName はgormが使用するテーブル名を返します。
func (UsageCountModel) TableName() string {
	return "usage_counts"
}

// usageGorm はRepositoryインターフェースのgorm実装です。
// SQLiteファイルまたはPostgresを背後に持ちます。
type usageGorm struct {
	db *gorm.DB
}

var _ usecase.Repository = (*usageGorm)(nil)

// NewUsageGorm は指定されたDB接続でusageGormリポジトリの新しいインスタンスを生成します。
func NewUsageGorm(db *gorm.DB) *usageGorm {
	return &usageGorm{db: db}
}

// LoadAll は全ユーザーの回数レコードを読み込みます。
func (r *usageGorm) LoadAll(ctx context.Context) (map[int64]int, error) {
	var rows []UsageCountModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int, len(rows))
	for _, m := range rows {
		counts[m.UserID] = m.Count
	}
	return counts, nil
}

// SaveAll はテーブル全体をアップサートで書き戻します。
func (r *usageGorm) SaveAll(ctx context.Context, counts map[int64]int) error {
	if len(counts) == 0 {
		return nil
	}
	ms := make([]UsageCountModel, 0, len(counts))
	for id, c := range counts {
		ms = append(ms, UsageCountModel{UserID: id, Count: c})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"count"}),
	}).Create(&ms).Error
}

// Reset は指定ユーザーのレコードを削除します。
func (r *usageGorm) Reset(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&UsageCountModel{}).Error
}
