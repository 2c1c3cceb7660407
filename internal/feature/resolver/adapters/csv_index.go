// Package adapters はresolverフィーチャーのアダプター実装を提供します。
package adapters

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"stockbot_backend/internal/feature/resolver/domain/entity"
	"stockbot_backend/internal/feature/resolver/usecase"
)

// CSVIndex はローカルCSVデータセットに基づくSymbolIndex実装です。
// 列0がシンボル、列1が会社名。プロセス起動時に一度だけ読み込みます。
type CSVIndex struct {
	records []entity.SymbolRecord
}

var _ usecase.SymbolIndex = (*CSVIndex)(nil)

// NewCSVIndex は指定されたパスのデータセットを読み込みます。
// データセットが存在しない場合はエラーを返し、呼び出し元（main）が
// 起動失敗として扱います。
func NewCSVIndex(path string) (*CSVIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbol dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// 行ごとの列数は揃っていない可能性があるため検証しない
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read symbol dataset: %w", err)
	}

	records := make([]entity.SymbolRecord, 0, len(rows))
	for _, row := range rows {
		// 2列未満の行はスキップ
		if len(row) < 2 {
			continue
		}
		records = append(records, entity.SymbolRecord{
			Symbol:      strings.ToUpper(strings.TrimSpace(row[0])),
			CompanyName: row[1],
		})
	}

	return &CSVIndex{records: records}, nil
}

// Lookup はファイル順に走査し、会社名にfragmentを含む最初のレコードの
// シンボルを返します。大文字小文字は区別しません。複数一致のランキングは
// 行わず、先勝ちです。
func (i *CSVIndex) Lookup(companyFragment string) (string, bool) {
	needle := strings.ToLower(companyFragment)
	for _, rec := range i.records {
		if strings.Contains(strings.ToLower(rec.CompanyName), needle) {
			return rec.Symbol, true
		}
	}
	return "", false
}

// Len は読み込まれたレコード数を返します。起動ログ用です。
func (i *CSVIndex) Len() int {
	return len(i.records)
}
