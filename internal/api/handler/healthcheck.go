package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

func HealthcheckHandler(strategy domain.InsightStrategy) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":   "ok",
			"strategy": strategy,
			"time":     time.Now().Format(time.RFC3339),
		})
	})
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
