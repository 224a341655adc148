package earnings

import (
	"strings"
	"time"
)

// Status 標記 earnings 日期的可信度來源。
// 行事曆/排程來源可能回傳自訂旗標字串，因此保留原文透傳，不強制收斂到列舉值。
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusEstimated Status = "estimated"
	StatusUnknown   Status = "unknown"
	StatusError     Status = "error"
)

// NormalizeTicker 將使用者輸入整理為標準代號（去空白、轉大寫）。
// 不驗證代號是否存在，缺乏主檔比對是刻意的。
func NormalizeTicker(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Record 描述單一代號的下次財報日解析結果。
// DaysUntil 與 NextEarnings 同進同退：日期存在時一定有天數，反之皆為 nil。
// 上游若回傳過期日期，DaysUntil 可能為負，不做修剪。
type Record struct {
	Ticker       string
	NextEarnings *time.Time
	Status       Status
	DaysUntil    *int
}

// DaysBetween 回傳兩個時間點之間的日曆天數差，忽略時分秒。
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// NewRecord 以解析結果建立一筆 Record，並計算距今天數。
func NewRecord(ticker string, date *time.Time, status Status, today time.Time) Record {
	rec := Record{
		Ticker: ticker,
		Status: status,
	}
	if date != nil {
		d := *date
		rec.NextEarnings = &d
		days := DaysBetween(today, d)
		rec.DaysUntil = &days
	}
	return rec
}
