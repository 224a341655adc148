package positions

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RequiredColumns 為上傳檔案必備的欄位，notes 為選配。
var RequiredColumns = []string{"date", "ticker", "notional", "type", "source"}

// Record 描述一筆已正規化的大額部位資料。
type Record struct {
	Date     time.Time
	Ticker   string
	Notional float64
	Type     string
	Source   string
	Notes    string
}

// RawTable 是上傳檔案解析後的原始表格：一列標頭加上純文字資料列。
// 欄位順序不限，多餘欄位允許存在。
type RawTable struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex 回傳欄位名稱（不分大小寫、修剪空白）對應的索引，找不到為 -1。
func (t RawTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// SchemaError 表示上傳資料缺少必要欄位，整批正規化視為失敗。
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %v", e.Missing)
}

// IsSchemaError 檢查錯誤是否為欄位缺漏錯誤。
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// ParseError 表示檔案本身無法解析為表格（ingestion 邊界錯誤）。
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse positions file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError 檢查錯誤是否為檔案層級的解析錯誤。
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
