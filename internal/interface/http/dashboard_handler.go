package httpapi

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	appPositions "earnings-dashboard/internal/application/positions"
	"earnings-dashboard/internal/domain/positions"
	"earnings-dashboard/internal/domain/timeline"
)

type timelineItem struct {
	Ticker  string  `json:"ticker"`
	Event   string  `json:"event"`
	Date    string  `json:"date"`
	Size    float64 `json:"size"`
	Label   string  `json:"label"`
	Details string  `json:"details"`
}

func timelineItems(events []timeline.Event) []timelineItem {
	items := make([]timelineItem, 0, len(events))
	for _, e := range events {
		items = append(items, timelineItem{
			Ticker:  e.Ticker,
			Event:   e.Kind,
			Date:    formatDate(e.Date),
			Size:    e.DisplaySize(),
			Label:   e.Label(),
			Details: e.Details,
		})
	}
	return items
}

// handleDashboard 組合一次儀表板刷新所需的所有資料：財報表、
// 部位表與時間軸。部位檔為選配；CSV 壞掉時錯誤放進 positions_error，
// 財報表照常回傳，兩個區塊互不阻斷。
func (s *Server) handleDashboard(c *gin.Context) {
	tickers := s.getTickers(c)
	notionalMin := s.getNotionalMin(c)

	records := s.tableUC.Build(c.Request.Context(), tickers)

	var normalized []positions.Record
	var positionsErr string
	if fh, err := c.FormFile("file"); err == nil {
		f, openErr := fh.Open()
		if openErr != nil {
			positionsErr = "cannot open uploaded file"
		} else {
			defer f.Close()
			if normalized, err = s.normalizeUpload(f); err != nil {
				_, _, positionsErr = positionsErrorResponse(err)
				normalized = nil
			}
		}
	}

	filtered := appPositions.Filter(normalized, notionalMin)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	events := s.aggregateUC.Execute(records, normalized, notionalMin)

	resp := gin.H{
		"success":      true,
		"notional_min": notionalMin,
		"earnings":     earningsItems(records),
		"positions":    positionItems(filtered),
		"timeline":     timelineItems(events),
	}
	if positionsErr != "" {
		resp["positions_error"] = positionsErr
	}
	c.JSON(http.StatusOK, resp)
}
