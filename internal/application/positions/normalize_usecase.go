package positions

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"earnings-dashboard/internal/domain/earnings"
	"earnings-dashboard/internal/domain/positions"
)

// NormalizeUseCase 將原始表格清洗為標準部位紀錄。
type NormalizeUseCase struct{}

func NewNormalizeUseCase() *NormalizeUseCase {
	return &NormalizeUseCase{}
}

// Execute 驗證欄位齊備後逐列正規化。date/ticker/notional 解析失敗的列
// 靜默淘汰（觀察訊號只有列數減少），存活列保留原始順序。
// 缺少必要欄位時回傳 SchemaError，整批失敗。
func (u *NormalizeUseCase) Execute(raw positions.RawTable) ([]positions.Record, error) {
	missing := make([]string, 0)
	idx := make(map[string]int, len(positions.RequiredColumns))
	for _, col := range positions.RequiredColumns {
		i := raw.ColumnIndex(col)
		if i < 0 {
			missing = append(missing, col)
			continue
		}
		idx[col] = i
	}
	if len(missing) > 0 {
		return nil, &positions.SchemaError{Missing: missing}
	}
	notesIdx := raw.ColumnIndex("notes")

	records := make([]positions.Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		date, ok := parseDate(cell(row, idx["date"]))
		if !ok {
			continue
		}
		ticker := earnings.NormalizeTicker(cell(row, idx["ticker"]))
		if ticker == "" {
			continue
		}
		notional, ok := parseNotional(cell(row, idx["notional"]))
		if !ok {
			continue
		}

		rec := positions.Record{
			Date:     date,
			Ticker:   ticker,
			Notional: notional,
			Type:     cell(row, idx["type"]),
			Source:   cell(row, idx["source"]),
		}
		if notesIdx >= 0 {
			rec.Notes = cell(row, notesIdx)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Filter 回傳名目金額達門檻的紀錄，順序不變。
func Filter(records []positions.Record, notionalMin float64) []positions.Record {
	out := make([]positions.Record, 0, len(records))
	for _, r := range records {
		if r.Notional >= notionalMin {
			out = append(out, r)
		}
	}
	return out
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseDate 接受常見日期文字表示（不限 ISO-8601），並捨去時分秒。
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

func parseNotional(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
