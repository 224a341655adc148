package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"earnings-dashboard/internal/application/earnings"
)

// MemoStore 以 go-cache 實作 earnings.ResolutionCache。
// 保留時間由設定決定；到期後的下一次查詢會重新打供應商。
type MemoStore struct {
	inner *gocache.Cache
}

func NewMemoStore(ttl time.Duration) *MemoStore {
	return &MemoStore{
		inner: gocache.New(ttl, 2*ttl),
	}
}

func (s *MemoStore) Get(ticker string) (earnings.Resolution, bool) {
	v, ok := s.inner.Get(ticker)
	if !ok {
		return earnings.Resolution{}, false
	}
	res, ok := v.(earnings.Resolution)
	return res, ok
}

func (s *MemoStore) Set(ticker string, res earnings.Resolution) {
	s.inner.SetDefault(ticker, res)
}
