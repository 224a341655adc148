package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "pong",
		"timestamp": time.Now().Unix(),
		"status":    "alive",
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"health":        "ok",
		"provider":      s.cfg.Provider.BaseURL,
		"cache_ttl_sec": int(s.cfg.Cache.TTL.Seconds()),
		"time":          time.Now().Format(time.RFC3339),
	})
}
