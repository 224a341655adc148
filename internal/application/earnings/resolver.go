package earnings

import (
	"context"
	"log"
	"time"

	"earnings-dashboard/internal/domain/earnings"
)

// CalendarSnapshot 是供應商「行事曆」視圖的回傳：可能帶有下次財報日。
type CalendarSnapshot struct {
	EarningsDate *time.Time
}

// ScheduleEntry 是供應商「財報排程」視圖的單列：日期可帶時區，旗標可為空。
type ScheduleEntry struct {
	Date       time.Time
	Confidence string
}

// EarningsSource 抽象化外部市場資料供應商的兩種查詢形狀。
// 任一查詢都允許回傳空資料；錯誤由 Resolver 吸收，不外漏。
type EarningsSource interface {
	Calendar(ctx context.Context, ticker string) (*CalendarSnapshot, error)
	Schedule(ctx context.Context, ticker string) ([]ScheduleEntry, error)
}

// Resolution 是單一代號的解析結果，也是快取的儲存單位。
type Resolution struct {
	Date   *time.Time
	Status earnings.Status
}

// ResolutionCache 為可抽換的備忘錄協作者；保留期限由實作自行決定。
type ResolutionCache interface {
	Get(ticker string) (Resolution, bool)
	Set(ticker string, res Resolution)
}

// NopCache 不快取任何結果，測試時注入以取得確定性行為。
type NopCache struct{}

func (NopCache) Get(string) (Resolution, bool) { return Resolution{}, false }
func (NopCache) Set(string, Resolution)        {}

// Resolver 以兩段式遞補策略解析單一代號的下次財報日。
type Resolver struct {
	source EarningsSource
	cache  ResolutionCache
	now    func() time.Time
}

// NewResolver 建立 Resolver；cache 傳 nil 時不做備忘。
func NewResolver(source EarningsSource, cache ResolutionCache) *Resolver {
	if cache == nil {
		cache = NopCache{}
	}
	return &Resolver{
		source: source,
		cache:  cache,
		now:    time.Now,
	}
}

// WithClock 覆寫時鐘，僅供測試。
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// resolveStrategy 回傳 (結果, 是否命中)；依序嘗試，first success wins。
// 新增供應商時在 strategies() 追加一個函式即可。
type resolveStrategy func(ctx context.Context, ticker string) (Resolution, bool, error)

func (r *Resolver) strategies() []resolveStrategy {
	return []resolveStrategy{
		r.fromCalendar,
		r.fromSchedule,
	}
}

// Resolve 解析代號的下次財報日與狀態。供應商錯誤一律轉為
// (nil, error) 結果，不重試也不中斷批次中其他代號的解析。
func (r *Resolver) Resolve(ctx context.Context, ticker string) (*time.Time, earnings.Status) {
	if res, ok := r.cache.Get(ticker); ok {
		return res.Date, res.Status
	}

	for _, strategy := range r.strategies() {
		res, hit, err := strategy(ctx, ticker)
		if err != nil {
			log.Printf("earnings resolve failed ticker=%s: %v", ticker, err)
			return nil, earnings.StatusError
		}
		if hit {
			r.cache.Set(ticker, res)
			return res.Date, res.Status
		}
	}

	res := Resolution{Status: earnings.StatusUnknown}
	r.cache.Set(ticker, res)
	return res.Date, res.Status
}

func (r *Resolver) fromCalendar(ctx context.Context, ticker string) (Resolution, bool, error) {
	cal, err := r.source.Calendar(ctx, ticker)
	if err != nil {
		return Resolution{}, false, err
	}
	if cal == nil || cal.EarningsDate == nil {
		return Resolution{}, false, nil
	}
	d := *cal.EarningsDate
	return Resolution{Date: &d, Status: earnings.StatusEstimated}, true, nil
}

func (r *Resolver) fromSchedule(ctx context.Context, ticker string) (Resolution, bool, error) {
	entries, err := r.source.Schedule(ctx, ticker)
	if err != nil {
		return Resolution{}, false, err
	}

	// 以 UTC 當日零時為界。排程日期若帶時區，time.Time 的瞬時比較
	// 仍然成立，不會出現 naive/aware 混用的比較問題。
	now := r.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var best *ScheduleEntry
	for i := range entries {
		e := entries[i]
		if e.Date.Before(cutoff) {
			continue
		}
		if best == nil || e.Date.Before(best.Date) {
			best = &e
		}
	}
	if best == nil {
		return Resolution{}, false, nil
	}

	status := earnings.Status(best.Confidence)
	if best.Confidence == "" {
		status = earnings.StatusEstimated
	}
	d := best.Date
	return Resolution{Date: &d, Status: status}, true, nil
}
