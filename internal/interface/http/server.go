package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appEarnings "earnings-dashboard/internal/application/earnings"
	appPositions "earnings-dashboard/internal/application/positions"
	appTimeline "earnings-dashboard/internal/application/timeline"
	"earnings-dashboard/internal/infrastructure/cache"
	"earnings-dashboard/internal/infrastructure/config"
)

const (
	errCodeBadRequest   = "BAD_REQUEST"
	errCodeSchemaError  = "POSITIONS_SCHEMA_ERROR"
	errCodeParseFailure = "POSITIONS_PARSE_FAILURE"
	errCodeInternal     = "INTERNAL_ERROR"
)

// Server 封裝 HTTP 路由與依賴。
type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	tableUC     *appEarnings.TableUseCase
	normalizeUC *appPositions.NormalizeUseCase
	aggregateUC *appTimeline.AggregateUseCase
}

// NewServer 建立 API 伺服器。source 為外部財報資料來源；解析結果經由
// go-cache 備忘，保留時間取自設定。
func NewServer(cfg config.Config, source appEarnings.EarningsSource) *Server {
	memo := cache.NewMemoStore(cfg.Cache.TTL)
	resolver := appEarnings.NewResolver(source, memo)

	s := &Server{
		cfg:         cfg,
		tableUC:     appEarnings.NewTableUseCase(resolver),
		normalizeUC: appPositions.NewNormalizeUseCase(),
		aggregateUC: appTimeline.NewAggregateUseCase(),
	}
	s.buildEngine()
	return s
}

// newServerWithTable 供測試注入自訂 use case（例如固定時鐘、假資料來源）。
func newServerWithTable(cfg config.Config, tableUC *appEarnings.TableUseCase) *Server {
	s := &Server{
		cfg:         cfg,
		tableUC:     tableUC,
		normalizeUC: appPositions.NewNormalizeUseCase(),
		aggregateUC: appTimeline.NewAggregateUseCase(),
	}
	s.buildEngine()
	return s
}

func (s *Server) buildEngine() {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.ginLogger())
	engine.Use(corsMiddleware())
	s.engine = engine
	s.registerRoutes()
}

// Handler 回傳路由處理器，供 HTTP server 掛載。
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.GET("/ping", s.handlePing)
	api.GET("/health", s.handleHealth)
	api.GET("/earnings", s.handleEarnings)
	api.POST("/positions", s.handlePositionsUpload)
	api.GET("/positions/template", s.handlePositionsTemplate)
	api.POST("/dashboard", s.handleDashboard)
}
