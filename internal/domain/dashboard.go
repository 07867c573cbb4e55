package domain

import "time"

// DashboardView é a visão completa montada para um cliente em uma requisição
type DashboardView struct {
	ViewID          string                       `json:"view_id"`
	CustomerID      CustomerID                   `json:"customer_id"`
	Forecast        Section[ForecastSeries]      `json:"forecast"`
	Recommendations Section[[]RecommendationRow] `json:"recommendations"`
	Insight         Section[Insight]             `json:"insight"`
	Strategy        InsightStrategy              `json:"strategy"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}
