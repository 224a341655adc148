package httpapi

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	appPositions "earnings-dashboard/internal/application/positions"
	"earnings-dashboard/internal/domain/positions"
)

type positionItem struct {
	Date     string  `json:"date"`
	Ticker   string  `json:"ticker"`
	Notional float64 `json:"notional"`
	Type     string  `json:"type"`
	Source   string  `json:"source"`
	Notes    string  `json:"notes"`
}

func positionItems(records []positions.Record) []positionItem {
	items := make([]positionItem, 0, len(records))
	for _, r := range records {
		items = append(items, positionItem{
			Date:     formatDate(r.Date),
			Ticker:   r.Ticker,
			Notional: r.Notional,
			Type:     r.Type,
			Source:   r.Source,
			Notes:    r.Notes,
		})
	}
	return items
}

// normalizeUpload 讀取 multipart 檔案並正規化。回傳值依序為
// 全部存活列、正規化錯誤。
func (s *Server) normalizeUpload(file multipart.File) ([]positions.Record, error) {
	table, err := appPositions.ReadTable(file)
	if err != nil {
		return nil, err
	}
	return s.normalizeUC.Execute(table)
}

// handlePositionsUpload 接收部位 CSV，回傳達門檻的正規化列（依日期排序）。
// 缺必要欄位時以 400 回報缺漏欄位名稱；檔案不可解析時回報一般性錯誤。
func (s *Server) handlePositionsUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "positions file required (multipart field 'file')", "error_code": errCodeBadRequest})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cannot open uploaded file", "error_code": errCodeBadRequest})
		return
	}
	defer f.Close()

	records, err := s.normalizeUpload(f)
	if err != nil {
		status, code, msg := positionsErrorResponse(err)
		c.JSON(status, gin.H{"success": false, "error": msg, "error_code": code})
		return
	}

	notionalMin := s.getNotionalMin(c)
	filtered := appPositions.Filter(records, notionalMin)
	// 呈現用排序；正規化結果本身維持原始列順序。
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"notional_min": notionalMin,
		"parsed_rows":  len(records),
		"total_count":  len(filtered),
		"items":        positionItems(filtered),
	})
}

func positionsErrorResponse(err error) (int, string, string) {
	switch {
	case positions.IsSchemaError(err):
		return http.StatusBadRequest, errCodeSchemaError, err.Error()
	case positions.IsParseError(err):
		return http.StatusBadRequest, errCodeParseFailure, fmt.Sprintf("error parsing CSV: %v", err)
	default:
		return http.StatusInternalServerError, errCodeInternal, "internal error"
	}
}

// handlePositionsTemplate 提供範例 CSV，欄位順序與必要欄位一致。
func (s *Server) handlePositionsTemplate(c *gin.Context) {
	body := fmt.Sprintf("date,ticker,notional,type,source,notes\n%s,AAPL,15000000,block_trade,manual,dark pool print\n",
		time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="positions_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(body))
}
