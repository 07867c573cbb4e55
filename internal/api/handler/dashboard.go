package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/presenting"
	"github.com/vfg2006/smartshop-insights/pkg/apiErrors"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

func GetDashboard(service presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.BuildDashboard(r.Context(), raw)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCustomerID) {
				rejectCustomer(r.Context(), w, raw, err)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("dashboard: falha ao montar visão")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o painel", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetForecast(service presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerFromPath(w, r)
		if !ok {
			return
		}

		writeSection(w, r, customerID, service.Forecast(r.Context(), customerID))
	})
}

// GetRecommendations aceita ?limit=N para devolver apenas as N primeiras
func GetRecommendations(service presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerFromPath(w, r)
		if !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit must be a positive integer", map[string]string{"limit": raw})
				return
			}
			limit = n
		}

		section := service.Recommendations(r.Context(), customerID)
		if limit > 0 && len(section.Data) > limit {
			section.Data = section.Data[:limit]
		}

		writeSection(w, r, customerID, section)
	})
}

func GetInsight(service presenting.Presenter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := customerFromPath(w, r)
		if !ok {
			return
		}

		writeSection(w, r, customerID, service.Insight(r.Context(), customerID))
	})
}
