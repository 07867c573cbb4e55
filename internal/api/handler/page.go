package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/presenting"
	"github.com/vfg2006/smartshop-insights/pkg/log"
	"github.com/vfg2006/smartshop-insights/pkg/utils"
)

const (
	pageTitle              = "SmartShopAI Insight Dashboard"
	invalidCustomerMessage = "Please enter a valid numeric customer id."
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"number": utils.FormatNumber,
			"inc":    func(i int) int { return i + 1 },
		}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

type pageView struct {
	Title         string
	CustomerInput string
	InvalidInput  string
	View          *domain.DashboardView
	Chart         *lineChart
}

// DashboardPage renderiza o painel HTML. Sem customer_id usa o cliente padrão.
func DashboardPage(service presenting.Presenter, defaultCustomerID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := strings.TrimSpace(r.URL.Query().Get("customer_id"))
		if input == "" {
			input = defaultCustomerID
		}

		page := pageView{
			Title:         pageTitle,
			CustomerInput: input,
		}
		status := http.StatusOK

		view, err := service.BuildDashboard(r.Context(), input)
		switch {
		case errors.Is(err, domain.ErrInvalidCustomerID):
			page.InvalidInput = invalidCustomerMessage
			status = http.StatusBadRequest
		case err != nil:
			logger.WithError(err).Error("dashboard: falha ao montar visão")
			http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
			return
		default:
			page.View = view
			if view.Forecast.OK() {
				page.Chart = newLineChart(view.Forecast.Data)
			}
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			logger.WithError(err).Error("dashboard: erro ao renderizar página")
			http.Error(w, "Erro ao renderizar o painel", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if _, err := buf.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: erro ao enviar página")
		}
	})
}
