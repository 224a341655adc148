package main

import (
	"log"
	"net/http"

	"earnings-dashboard/internal/infrastructure/config"
	"earnings-dashboard/internal/infrastructure/external/yahoo"
	httpapi "earnings-dashboard/internal/interface/http"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}
	log.Printf("configuration loaded (HTTP_ADDR=%s provider=%s notional_min=%.0f)",
		cfg.HTTP.Addr, cfg.Provider.BaseURL, cfg.Dashboard.NotionalMin)

	client := yahoo.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout)
	source := yahoo.NewSourceAdapter(client)

	apiServer := httpapi.NewServer(cfg, source)
	addr := cfg.HTTP.Addr
	log.Printf("starting HTTP server on %s", addr)
	if err := http.ListenAndServe(addr, apiServer.Handler()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
