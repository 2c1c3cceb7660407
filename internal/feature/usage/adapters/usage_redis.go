package adapters

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"stockbot_backend/internal/feature/usage/usecase"
)

// usageRedis はRepositoryインターフェースのRedis実装です。
// ユーザーごとに "<prefix>:<userId>" キーで回数を保持します。
type usageRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.Repository = (*usageRedis)(nil)

// NewUsageRedis は指定されたクライアントとキープレフィックスでリポジトリを生成します。
func NewUsageRedis(client *redis.Client, prefix string) *usageRedis {
	if prefix == "" {
		prefix = "usage"
	}
	return &usageRedis{client: client, prefix: prefix}
}

// key は指定ユーザーのRedisキーを返します。
func (r *usageRedis) key(userID int64) string {
	return fmt.Sprintf("%s:%d", r.prefix, userID)
}

// LoadAll はプレフィックス配下の全キーをSCANで集めて回数テーブルを構築します。
func (r *usageRedis) LoadAll(ctx context.Context) (map[int64]int, error) {
	counts := make(map[int64]int)

	var cursor uint64
	for {
		keys, cur, err := r.client.Scan(ctx, cursor, r.prefix+":*", 200).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			idPart := strings.TrimPrefix(k, r.prefix+":")
			userID, err := strconv.ParseInt(idPart, 10, 64)
			if err != nil {
				// 想定外のキーはスキップ
				continue
			}
			v, err := r.client.Get(ctx, k).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				return nil, err
			}
			count, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("parse count for %s: %w", k, err)
			}
			counts[userID] = count
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	return counts, nil
}

// SaveAll は全ユーザーの回数をキーごとに書き込みます。TTLは設定しません
// （回数に失効はなく、リセットは帯域外操作のみです）。
func (r *usageRedis) SaveAll(ctx context.Context, counts map[int64]int) error {
	// 書き込み順を決定的にするためユーザーIDでソート
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := r.client.Set(ctx, r.key(id), strconv.Itoa(counts[id]), 0).Err(); err != nil {
			return err
		}
	}
	return nil
}

// Reset は指定ユーザーのキーを削除します。
func (r *usageRedis) Reset(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}
