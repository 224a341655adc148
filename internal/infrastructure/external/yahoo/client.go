package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://query2.finance.yahoo.com"

// Client 包裝 Yahoo Finance quoteSummary API 的兩種查詢。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) call(ctx context.Context, path string, params url.Values) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	// 沒有 UA 會被擋下
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; earnings-dashboard/1.0)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo api error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

type epochValue struct {
	Raw int64  `json:"raw"`
	Fmt string `json:"fmt"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CalendarEvents 是行事曆視圖的回傳：可能帶零或多個候選財報日。
type CalendarEvents struct {
	EarningsDates []time.Time
}

type calendarResponse struct {
	QuoteSummary struct {
		Result []struct {
			CalendarEvents struct {
				Earnings struct {
					EarningsDate []epochValue `json:"earningsDate"`
				} `json:"earnings"`
			} `json:"calendarEvents"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// GetCalendar 查詢 calendarEvents 模組。查無資料回傳空結果，不視為錯誤。
func (c *Client) GetCalendar(ctx context.Context, symbol string) (*CalendarEvents, error) {
	params := url.Values{}
	params.Set("modules", "calendarEvents")
	body, err := c.call(ctx, fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol)), params)
	if err != nil {
		return nil, err
	}

	var res calendarResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}
	if res.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", res.QuoteSummary.Error.Description)
	}

	out := &CalendarEvents{}
	for _, r := range res.QuoteSummary.Result {
		for _, d := range r.CalendarEvents.Earnings.EarningsDate {
			if d.Raw == 0 {
				continue
			}
			out.EarningsDates = append(out.EarningsDates, time.Unix(d.Raw, 0).UTC())
		}
	}
	return out, nil
}

// EarningsDateRow 是財報排程視圖的單列；EventType 為供應商自訂旗標，可能為空。
type EarningsDateRow struct {
	Date      time.Time
	EventType string
}

type scheduleResponse struct {
	QuoteSummary struct {
		Result []struct {
			EarningsDates struct {
				Rows []struct {
					EarningsDate epochValue `json:"earningsDate"`
					EventType    string     `json:"eventType"`
					Timezone     string     `json:"timezone"`
				} `json:"rows"`
			} `json:"earningsDates"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"quoteSummary"`
}

// GetEarningsDates 查詢 earningsDates 模組（歷史與未來排程混列）。
// 列上若帶時區名稱，日期轉到該時區表示。
func (c *Client) GetEarningsDates(ctx context.Context, symbol string) ([]EarningsDateRow, error) {
	params := url.Values{}
	params.Set("modules", "earningsDates")
	body, err := c.call(ctx, fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol)), params)
	if err != nil {
		return nil, err
	}

	var res scheduleResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode schedule response: %w", err)
	}
	if res.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", res.QuoteSummary.Error.Description)
	}

	var rows []EarningsDateRow
	for _, r := range res.QuoteSummary.Result {
		for _, row := range r.EarningsDates.Rows {
			if row.EarningsDate.Raw == 0 {
				continue
			}
			date := time.Unix(row.EarningsDate.Raw, 0).UTC()
			if row.Timezone != "" {
				if loc, err := time.LoadLocation(row.Timezone); err == nil {
					date = date.In(loc)
				}
			}
			rows = append(rows, EarningsDateRow{
				Date:      date,
				EventType: row.EventType,
			})
		}
	}
	return rows, nil
}
