package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存 HTTP API 及外部相依的執行設定。
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Provider  ProviderConfig  `yaml:"provider"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Cache     CacheConfig     `yaml:"cache"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// ProviderConfig 設定外部市場資料供應商的連線參數。
type ProviderConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DashboardConfig 控制儀表板的預設輸入與門檻。
type DashboardConfig struct {
	DefaultTickers []string `yaml:"default_tickers"`
	NotionalMin    float64  `yaml:"notional_min"`
}

// CacheConfig 控制財報日解析結果的備忘保留時間。
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://query2.finance.yahoo.com"
	}
	if cfg.Provider.Timeout == 0 {
		cfg.Provider.Timeout = 10 * time.Second
	}
	if len(cfg.Dashboard.DefaultTickers) == 0 {
		cfg.Dashboard.DefaultTickers = []string{"AAPL", "MSFT", "NVDA", "AMZN", "META"}
	}
	if cfg.Dashboard.NotionalMin == 0 {
		cfg.Dashboard.NotionalMin = 5_000_000
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Hour
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("PROVIDER_BASE_URL"); val != "" {
		cfg.Provider.BaseURL = val
	}
	if val := os.Getenv("PROVIDER_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Provider.Timeout = d
		}
	}
	if val := os.Getenv("DEFAULT_TICKERS"); val != "" {
		cfg.Dashboard.DefaultTickers = SplitTickers(val)
	}
	if val := os.Getenv("NOTIONAL_MIN"); val != "" {
		if v, err := strconv.ParseFloat(val, 64); err == nil && v > 0 {
			cfg.Dashboard.NotionalMin = v
		}
	}
	if val := os.Getenv("CACHE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Cache.TTL = d
		}
	}
	return cfg
}

// SplitTickers 將逗號分隔的代號文字切成已修剪、轉大寫的清單，
// 保留輸入順序，允許重複。
func SplitTickers(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToUpper(strings.TrimSpace(p))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
