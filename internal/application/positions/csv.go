package positions

import (
	"encoding/csv"
	"fmt"
	"io"

	"earnings-dashboard/internal/domain/positions"
)

// ReadTable 將上傳的 CSV 內容讀成 RawTable。檔案無法解析為表格時
// 回傳 ParseError（ingestion 邊界錯誤），缺欄位的判斷留給 Normalize。
func ReadTable(r io.Reader) (positions.RawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// 資料列欄位數不一致時不視為致命，逐列缺值由正規化階段淘汰。
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return positions.RawTable{}, &positions.ParseError{Err: err}
	}
	if len(all) == 0 {
		return positions.RawTable{}, &positions.ParseError{Err: fmt.Errorf("empty file")}
	}
	return positions.RawTable{
		Header: all[0],
		Rows:   all[1:],
	}, nil
}
