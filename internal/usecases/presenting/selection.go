package presenting

import (
	"sort"

	"github.com/vfg2006/smartshop-insights/internal/domain"
)

// PresentForecast devolve as linhas do cliente ordenadas por dia.
// Em tabelas sem coluna de cliente todas as linhas são devolvidas.
// A tabela carregada não é alterada.
func PresentForecast(table *domain.ForecastTable, customerID domain.CustomerID) []domain.ForecastRow {
	if table == nil {
		return []domain.ForecastRow{}
	}

	points := make([]domain.ForecastRow, 0, len(table.Rows))
	for _, row := range table.Rows {
		if !table.CustomerScoped || row.BelongsTo(customerID) {
			points = append(points, row)
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})

	return points
}

// SelectRecommendations filtra pelo cliente e ordena por score decrescente.
// Empates mantêm a ordem original das linhas.
func SelectRecommendations(table *domain.RecommendationTable, customerID domain.CustomerID) []domain.RecommendationRow {
	if table == nil {
		return []domain.RecommendationRow{}
	}

	selected := make([]domain.RecommendationRow, 0)
	for _, row := range table.Rows {
		if !table.CustomerScoped || row.BelongsTo(customerID) {
			selected = append(selected, row)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})

	return selected
}
