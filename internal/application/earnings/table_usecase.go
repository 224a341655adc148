package earnings

import (
	"context"
	"sort"
	"time"

	"earnings-dashboard/internal/domain/earnings"
)

// TableUseCase 對一串代號套用 Resolver，產出依日期排序的財報表。
type TableUseCase struct {
	resolver *Resolver
	now      func() time.Time
}

func NewTableUseCase(resolver *Resolver) *TableUseCase {
	return &TableUseCase{
		resolver: resolver,
		now:      time.Now,
	}
}

// WithClock 覆寫時鐘，僅供測試。
func (u *TableUseCase) WithClock(now func() time.Time) *TableUseCase {
	u.now = now
	return u
}

// Build 每個輸入代號恰好解析一次（重複代號產生重複列），
// 依 NextEarnings 升冪穩定排序，無日期的列固定排在最後並保留輸入順序。
func (u *TableUseCase) Build(ctx context.Context, tickers []string) []earnings.Record {
	records := make([]earnings.Record, 0, len(tickers))
	today := u.now()
	for _, t := range tickers {
		date, status := u.resolver.Resolve(ctx, t)
		records = append(records, earnings.NewRecord(t, date, status, today))
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].NextEarnings, records[j].NextEarnings
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return records
}
