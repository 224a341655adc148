package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"earnings-dashboard/internal/infrastructure/config"
)

// getTickers 取出 tickers 參數（query 優先，其次 form），未提供時
// 回退到設定的預設清單。重複代號保留，順序保留。
func (s *Server) getTickers(c *gin.Context) []string {
	raw := c.Query("tickers")
	if raw == "" {
		raw = c.PostForm("tickers")
	}
	if raw == "" {
		return s.cfg.Dashboard.DefaultTickers
	}
	return config.SplitTickers(raw)
}

// getNotionalMin 允許單次請求以 notional_min 覆寫門檻，未給時用設定值。
func (s *Server) getNotionalMin(c *gin.Context) float64 {
	raw := c.Query("notional_min")
	if raw == "" {
		raw = c.PostForm("notional_min")
	}
	if raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			return v
		}
	}
	return s.cfg.Dashboard.NotionalMin
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// urgencyFor 依距財報天數給出前端標色提示：7 天內 critical、14 天內 warning。
func urgencyFor(daysTo *int) string {
	if daysTo == nil {
		return ""
	}
	switch {
	case *daysTo <= 7:
		return "critical"
	case *daysTo <= 14:
		return "warning"
	default:
		return ""
	}
}
