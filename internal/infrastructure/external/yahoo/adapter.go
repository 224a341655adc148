package yahoo

import (
	"context"

	appEarnings "earnings-dashboard/internal/application/earnings"
)

// SourceAdapter implements the earnings.EarningsSource interface.
type SourceAdapter struct {
	client *Client
}

func NewSourceAdapter(client *Client) *SourceAdapter {
	return &SourceAdapter{client: client}
}

func (a *SourceAdapter) Calendar(ctx context.Context, ticker string) (*appEarnings.CalendarSnapshot, error) {
	cal, err := a.client.GetCalendar(ctx, ticker)
	if err != nil {
		return nil, err
	}
	snap := &appEarnings.CalendarSnapshot{}
	if cal != nil && len(cal.EarningsDates) > 0 {
		// 行事曆視圖可能回傳一段候選區間，一律取第一個日期。
		d := cal.EarningsDates[0]
		snap.EarningsDate = &d
	}
	return snap, nil
}

func (a *SourceAdapter) Schedule(ctx context.Context, ticker string) ([]appEarnings.ScheduleEntry, error) {
	rows, err := a.client.GetEarningsDates(ctx, ticker)
	if err != nil {
		return nil, err
	}
	entries := make([]appEarnings.ScheduleEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, appEarnings.ScheduleEntry{
			Date:       r.Date,
			Confidence: r.EventType,
		})
	}
	return entries, nil
}
