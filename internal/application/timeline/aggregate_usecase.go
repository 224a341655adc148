package timeline

import (
	"earnings-dashboard/internal/domain/earnings"
	"earnings-dashboard/internal/domain/positions"
	"earnings-dashboard/internal/domain/timeline"
)

// AggregateUseCase 將財報表與部位表合併為單一事件清單，供時間軸繪圖。
type AggregateUseCase struct{}

func NewAggregateUseCase() *AggregateUseCase {
	return &AggregateUseCase{}
}

// Execute 先輸出有日期的財報事件（維持財報表順序），再輸出達到
// notionalMin 門檻的部位事件（維持部位表順序）。兩邊互不過濾，
// 也不做日期排序；排序是呈現層的責任。
func (u *AggregateUseCase) Execute(earningsRows []earnings.Record, positionRows []positions.Record, notionalMin float64) []timeline.Event {
	events := make([]timeline.Event, 0, len(earningsRows)+len(positionRows))

	for _, r := range earningsRows {
		if r.NextEarnings == nil {
			continue
		}
		events = append(events, timeline.Event{
			Ticker:  r.Ticker,
			Kind:    timeline.KindEarnings,
			Date:    *r.NextEarnings,
			Details: string(r.Status),
		})
	}

	for _, p := range positionRows {
		if p.Notional < notionalMin {
			continue
		}
		size := p.Notional
		events = append(events, timeline.Event{
			Ticker:  p.Ticker,
			Kind:    p.Type,
			Date:    p.Date,
			Size:    &size,
			Details: p.Source,
		})
	}
	return events
}
