package presenting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

func TestScoreInsight(t *testing.T) {
	table := &domain.RecommendationTable{
		CustomerScoped: true,
		Rows: []domain.RecommendationRow{
			{CustomerID: customer(42), ItemID: "7", CategoryID: "3", Score: 0.91},
			{CustomerID: customer(42), ItemID: "2", CategoryID: "1", Score: 0.91},
			{CustomerID: customer(42), ItemID: "9", CategoryID: "5", Score: 0.40},
		},
	}

	id, err := domain.ParseCustomerID("42")
	require.NoError(t, err)

	insight := ScoreInsight(SelectRecommendations(table, id))

	assert.Equal(t, domain.InsightByScore, insight.Strategy)
	assert.Equal(t, "7", insight.ItemID)
	assert.Equal(t, "3", insight.Category)
	assert.Equal(t, "Suggest offering a 10% discount for Item 7 (Category 3) to drive conversions.", insight.Message)
}

func TestScoreInsight_Empty(t *testing.T) {
	insight := ScoreInsight(nil)

	assert.Equal(t, domain.WaitingForDataMessage, insight.Message)
	assert.Empty(t, insight.ItemID)
}

func TestThresholdInsight_Bands(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   domain.EngagementBand
	}{
		{name: "Média exatamente 2.0 é alta", values: []float64{2.0, 2.0}, want: domain.EngagementHigh},
		{name: "Média acima de 2.0 é alta", values: []float64{3, 4}, want: domain.EngagementHigh},
		{name: "Média exatamente 1.0 é moderada", values: []float64{1.0}, want: domain.EngagementModerate},
		{name: "Média 1.667 é moderada", values: []float64{1.5, 2.5, 1.0}, want: domain.EngagementModerate},
		{name: "Média 0.999 é baixa", values: []float64{0.999}, want: domain.EngagementLow},
		{name: "Média zero é baixa", values: []float64{0, 0}, want: domain.EngagementLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]domain.ForecastRow, 0, len(tt.values))
			for i, v := range tt.values {
				points = append(points, domain.ForecastRow{Day: i + 1, PredictedValue: v})
			}

			insight, ok := ThresholdInsight(points, domain.DefaultThresholds)
			require.True(t, ok)
			assert.Equal(t, tt.want, insight.Band)
			assert.Equal(t, domain.InsightByThreshold, insight.Strategy)
			require.NotNil(t, insight.Mean)
			assert.Equal(t, domain.BandMessage(tt.want, *insight.Mean), insight.Message)
		})
	}
}

func TestThresholdInsight_CustomerExample(t *testing.T) {
	table := &domain.ForecastTable{
		CustomerScoped: true,
		Rows: []domain.ForecastRow{
			{CustomerID: customer(1532072415), Day: 1, PredictedValue: 1.5},
			{CustomerID: customer(1532072415), Day: 2, PredictedValue: 2.5},
			{CustomerID: customer(1532072415), Day: 3, PredictedValue: 1.0},
			{CustomerID: customer(5), Day: 1, PredictedValue: 10},
		},
	}

	insight, ok := ThresholdInsight(PresentForecast(table, 1532072415), domain.DefaultThresholds)
	require.True(t, ok)
	assert.Equal(t, domain.EngagementModerate, insight.Band)
	assert.InDelta(t, 1.667, *insight.Mean, 0.001)
}

func TestThresholdInsight_EmptyIsSkipped(t *testing.T) {
	_, ok := ThresholdInsight(nil, domain.DefaultThresholds)
	assert.False(t, ok)
}
