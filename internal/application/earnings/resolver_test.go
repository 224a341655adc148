package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "earnings-dashboard/internal/domain/earnings"
)

type fakeSource struct {
	calendar      *CalendarSnapshot
	calendarErr   error
	schedule      []ScheduleEntry
	scheduleErr   error
	calendarCalls int
	scheduleCalls int
}

func (f *fakeSource) Calendar(_ context.Context, _ string) (*CalendarSnapshot, error) {
	f.calendarCalls++
	if f.calendarErr != nil {
		return nil, f.calendarErr
	}
	return f.calendar, nil
}

func (f *fakeSource) Schedule(_ context.Context, _ string) ([]ScheduleEntry, error) {
	f.scheduleCalls++
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return f.schedule, nil
}

type mapCache struct {
	entries map[string]Resolution
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]Resolution)}
}

func (c *mapCache) Get(ticker string) (Resolution, bool) {
	res, ok := c.entries[ticker]
	return res, ok
}

func (c *mapCache) Set(ticker string, res Resolution) {
	c.entries[ticker] = res
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestResolver_CalendarWins(t *testing.T) {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{calendar: &CalendarSnapshot{EarningsDate: &date}}
	resolver := NewResolver(source, nil)

	got, status := resolver.Resolve(context.Background(), "AAPL")
	if got == nil || !got.Equal(date) {
		t.Fatalf("unexpected date: %v", got)
	}
	if status != domain.StatusEstimated {
		t.Fatalf("expected estimated, got %s", status)
	}
	if source.scheduleCalls != 0 {
		t.Fatal("schedule view must not be queried when calendar resolves")
	}
}

func TestResolver_ScheduleFallback_FlagPassthrough(t *testing.T) {
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2030, 9, 1, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{
		calendar: &CalendarSnapshot{},
		schedule: []ScheduleEntry{
			{Date: later, Confidence: "estimated"},
			{Date: past, Confidence: "confirmed"},
			{Date: future, Confidence: "EPS Call"},
		},
	}
	resolver := NewResolver(source, nil).
		WithClock(fixedClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)))

	got, status := resolver.Resolve(context.Background(), "AAPL")
	if got == nil || !got.Equal(future) {
		t.Fatalf("expected earliest future entry %v, got %v", future, got)
	}
	// 供應商旗標原文透傳，不收斂到列舉值
	if status != domain.Status("EPS Call") {
		t.Fatalf("expected verbatim flag, got %s", status)
	}
}

func TestResolver_ScheduleFallback_EmptyFlagDefaultsEstimated(t *testing.T) {
	future := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{
		calendar: &CalendarSnapshot{},
		schedule: []ScheduleEntry{{Date: future}},
	}
	resolver := NewResolver(source, nil).
		WithClock(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, status := resolver.Resolve(context.Background(), "AAPL")
	if status != domain.StatusEstimated {
		t.Fatalf("expected estimated, got %s", status)
	}
}

func TestResolver_TimezoneAwareScheduleNeverErrors(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	aware := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).In(tokyo)
	source := &fakeSource{
		calendar: &CalendarSnapshot{},
		schedule: []ScheduleEntry{{Date: aware}},
	}
	resolver := NewResolver(source, nil).
		WithClock(fixedClock(time.Date(2029, 12, 30, 23, 0, 0, 0, time.Local)))

	got, status := resolver.Resolve(context.Background(), "AAPL")
	if got == nil || !got.Equal(aware) {
		t.Fatalf("expected tz-aware entry returned, got %v (status=%s)", got, status)
	}
	if status == domain.StatusError {
		t.Fatal("timezone-aware schedule must not produce an error status")
	}
}

func TestResolver_NothingResolves(t *testing.T) {
	source := &fakeSource{calendar: &CalendarSnapshot{}}
	resolver := NewResolver(source, nil)

	got, status := resolver.Resolve(context.Background(), "ZZZZ")
	if got != nil || status != domain.StatusUnknown {
		t.Fatalf("expected (nil, unknown), got (%v, %s)", got, status)
	}
}

func TestResolver_ProviderFailureAbsorbed(t *testing.T) {
	source := &fakeSource{calendarErr: errors.New("connection refused")}
	resolver := NewResolver(source, nil)

	got, status := resolver.Resolve(context.Background(), "AAPL")
	if got != nil || status != domain.StatusError {
		t.Fatalf("expected (nil, error), got (%v, %s)", got, status)
	}
}

func TestResolver_CacheShortCircuitsSource(t *testing.T) {
	date := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	source := &fakeSource{calendar: &CalendarSnapshot{EarningsDate: &date}}
	resolver := NewResolver(source, newMapCache())

	resolver.Resolve(context.Background(), "AAPL")
	resolver.Resolve(context.Background(), "AAPL")

	if source.calendarCalls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", source.calendarCalls)
	}
}

func TestResolver_ErrorResultsNotCached(t *testing.T) {
	source := &fakeSource{calendarErr: errors.New("boom")}
	cache := newMapCache()
	resolver := NewResolver(source, cache)

	resolver.Resolve(context.Background(), "AAPL")
	if len(cache.entries) != 0 {
		t.Fatal("error results must not be memoized")
	}
}
