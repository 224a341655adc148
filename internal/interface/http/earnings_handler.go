package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"earnings-dashboard/internal/domain/earnings"
)

type earningsItem struct {
	Ticker       string  `json:"ticker"`
	NextEarnings *string `json:"next_earnings"`
	Status       string  `json:"status"`
	DaysTo       *int    `json:"days_to"`
	Urgency      string  `json:"urgency,omitempty"`
}

func earningsItems(records []earnings.Record) []earningsItem {
	items := make([]earningsItem, 0, len(records))
	for _, r := range records {
		item := earningsItem{
			Ticker: r.Ticker,
			Status: string(r.Status),
			DaysTo: r.DaysUntil,
		}
		if r.NextEarnings != nil {
			s := r.NextEarnings.Format(time.RFC3339)
			item.NextEarnings = &s
		}
		item.Urgency = urgencyFor(r.DaysUntil)
		items = append(items, item)
	}
	return items
}

// handleEarnings 回傳代號清單的財報表。每次請求都重新解析（快取層
// 可能吸收重複的供應商查詢），單一代號失敗以 status=error 呈現，
// 不影響其他列。
func (s *Server) handleEarnings(c *gin.Context) {
	tickers := s.getTickers(c)
	records := s.tableUC.Build(c.Request.Context(), tickers)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"total_count": len(records),
		"items":       earningsItems(records),
	})
}
