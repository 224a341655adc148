package timeline

import (
	"fmt"
	"time"
)

// KindEarnings 是財報事件的固定類別；部位事件沿用 CSV 的 type 欄位值。
const KindEarnings = "Earnings"

// DefaultSize 為沒有名目金額的事件（財報日）在圖上的顯示權重。
const DefaultSize = 10.0

// Event 是時間軸上的單一事件，由財報列或部位列一對一導出。
// Size 為 nil 時表示顯示時套用 DefaultSize，僅影響視覺權重。
type Event struct {
	Ticker  string
	Kind    string
	Date    time.Time
	Size    *float64
	Details string
}

// Label 產生顯示用標籤："{kind} · {ticker}"，details 非空時附帶 "(details)"。
func (e Event) Label() string {
	label := fmt.Sprintf("%s · %s", e.Kind, e.Ticker)
	if e.Details != "" {
		label += fmt.Sprintf(" (%s)", e.Details)
	}
	return label
}

// DisplaySize 回傳繪圖用的大小，Size 缺席時套用預設值。
func (e Event) DisplaySize() float64 {
	if e.Size == nil {
		return DefaultSize
	}
	return *e.Size
}
