package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/smartshop-insights/internal/scheduler"
	"github.com/vfg2006/smartshop-insights/pkg/apiErrors"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

type CacheRefresher interface {
	RunNow() ([]string, error)
	GetStatus() scheduler.CacheRefreshStatus
}

// RunCacheRefresh executa o job de atualização do cache fora do agendamento
func RunCacheRefresh(service CacheRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.WithField("job", "cache-refresh").Info("cron: execução manual solicitada")

		pruned, err := service.RunNow()
		if err != nil {
			if errors.Is(err, scheduler.ErrRefreshRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("cron: falha na execução manual")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Falha ao atualizar o cache", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    "cache-refresh",
			"pruned":  pruned,
		})
	})
}

func GetCronStatus(service CacheRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"cache-refresh": service.GetStatus(),
		})
	})
}
