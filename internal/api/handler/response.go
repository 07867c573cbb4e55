package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/apiErrors"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao serializar resposta")
	}
}

// customerFromPath valida o :id da rota; em caso de erro a resposta já foi escrita
func customerFromPath(w http.ResponseWriter, r *http.Request) (domain.CustomerID, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := domain.ParseCustomerID(raw)
	if err != nil {
		rejectCustomer(r.Context(), w, raw, err)
		return 0, false
	}

	return id, true
}

func rejectCustomer(ctx context.Context, w http.ResponseWriter, raw string, err error) {
	log.ForContext(ctx).WithField("customer_input", raw).Warn("dashboard: id de cliente inválido")
	apiErrors.WriteError(w, apiErrors.ErrInvalidCustomerID, "Please enter a valid numeric customer id.", map[string]string{
		"customer_id": raw,
		"error":       err.Error(),
	})
}

// writeSection responde a seção; estado de erro vira DATA_001
func writeSection[T any](w http.ResponseWriter, r *http.Request, customerID domain.CustomerID, section domain.Section[T]) {
	if section.Status == domain.SectionError {
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, section.Message, map[string]string{
			"customer_id": customerID.String(),
		})
		return
	}

	writeJSON(w, r, http.StatusOK, struct {
		CustomerID domain.CustomerID `json:"customer_id"`
		domain.Section[T]
	}{
		CustomerID: customerID,
		Section:    section,
	})
}
