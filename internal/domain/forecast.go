package domain

// ForecastRow é uma linha da previsão de demanda produzida externamente
type ForecastRow struct {
	CustomerID     *CustomerID `json:"customer_id,omitempty"`
	Day            int         `json:"day" validate:"min=1"`
	PredictedValue float64     `json:"predicted_value" validate:"gte=0"`
}

// ForecastTable representa o arquivo (ou tabela) de previsão carregado em memória.
// CustomerScoped é falso quando a origem não possui coluna de cliente.
type ForecastTable struct {
	Rows           []ForecastRow `json:"rows"`
	CustomerScoped bool          `json:"customer_scoped"`
	Source         string        `json:"source"`
}

// ForecastSeries é a subsequência apresentada para um cliente, ordenada por dia
type ForecastSeries struct {
	Points  []ForecastRow `json:"points"`
	Horizon int           `json:"horizon"`
	Mean    float64       `json:"mean"`
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
}

// NewForecastSeries calcula o resumo da série. Os pontos já devem estar ordenados.
func NewForecastSeries(points []ForecastRow) ForecastSeries {
	series := ForecastSeries{
		Points:  points,
		Horizon: len(points),
	}

	if len(points) == 0 {
		return series
	}

	series.Min = points[0].PredictedValue
	series.Max = points[0].PredictedValue

	var sum float64
	for _, p := range points {
		sum += p.PredictedValue
		if p.PredictedValue < series.Min {
			series.Min = p.PredictedValue
		}
		if p.PredictedValue > series.Max {
			series.Max = p.PredictedValue
		}
	}
	series.Mean = sum / float64(len(points))

	return series
}

// Values retorna apenas os valores previstos, na ordem dos dias
func (s ForecastSeries) Values() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		values = append(values, p.PredictedValue)
	}
	return values
}
