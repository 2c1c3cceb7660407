// Package adapters はusageフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"stockbot_backend/internal/feature/usage/usecase"
)

// usageFile はRepositoryインターフェースのテキストファイル実装です。
// 形式は1行1ユーザーの "userId=count"。変更のたびにファイル全体を
// 書き換えます（低リクエスト量では許容できる方式です）。
type usageFile struct {
	path string
}

var _ usecase.Repository = (*usageFile)(nil)

// NewUsageFile は指定されたパスのファイルを使うリポジトリを生成します。
// ファイルは最初の書き込み時に作成されるため、存在しなくても構いません。
func NewUsageFile(path string) *usageFile {
	return &usageFile{path: path}
}

// LoadAll はファイルから全ユーザーの回数を読み込みます。
// ファイルが存在しない場合は空のテーブルを返します。
func (r *usageFile) LoadAll(ctx context.Context) (map[int64]int, error) {
	counts := make(map[int64]int)

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return counts, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		// 空行とコメント行はスキップ
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		userID, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse user id %q: %w", key, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("parse count %q: %w", value, err)
		}
		counts[userID] = count
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// SaveAll はテーブル全体を一時ファイルへ書き出し、renameで置き換えます。
// 書き込み途中のクラッシュで台帳が壊れないようにするためです。
func (r *usageFile) SaveAll(ctx context.Context, counts map[int64]int) error {
	tmp := r.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	// 出力を決定的にするためユーザーIDでソート
	ids := make([]int64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d=%d\n", id, counts[id]); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, r.path)
}

// Reset は指定ユーザーのレコードを削除して書き戻します。
func (r *usageFile) Reset(ctx context.Context, userID int64) error {
	counts, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}
	delete(counts, userID)
	return r.SaveAll(ctx, counts)
}
