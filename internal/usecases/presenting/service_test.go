package presenting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartshop-insights/infrastructure/repository/mocks"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, strategy domain.InsightStrategy) (*Service, *mocks.MockForecastRepository, *mocks.MockRecommendationRepository) {
	ctrl := gomock.NewController(t)

	forecastRepo := mocks.NewMockForecastRepository(ctrl)
	recsRepo := mocks.NewMockRecommendationRepository(ctrl)

	service := NewService(forecastRepo, recsRepo, strategy, domain.DefaultThresholds).(*Service)
	service.now = func() time.Time { return time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC) }

	return service, forecastRepo, recsRepo
}

func sampleForecast() *domain.ForecastTable {
	return &domain.ForecastTable{
		CustomerScoped: true,
		Rows: []domain.ForecastRow{
			{CustomerID: customer(1532072415), Day: 1, PredictedValue: 1.5},
			{CustomerID: customer(1532072415), Day: 2, PredictedValue: 2.5},
			{CustomerID: customer(1532072415), Day: 3, PredictedValue: 1.0},
		},
	}
}

func sampleRecommendations() *domain.RecommendationTable {
	return &domain.RecommendationTable{
		CustomerScoped: true,
		Rows: []domain.RecommendationRow{
			{CustomerID: customer(1532072415), ItemID: "9", CategoryID: "5", Score: 0.40},
			{CustomerID: customer(1532072415), ItemID: "7", CategoryID: "3", Score: 0.91},
		},
	}
}

func TestService_BuildDashboard(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		strategy domain.InsightStrategy
		input    string
		setup    func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository)
		wantErr  error
		validate func(t *testing.T, view *domain.DashboardView)
	}{
		{
			name:     "Entrada não numérica - rejeitada antes de acessar os dados",
			strategy: domain.InsightByScore,
			input:    "abc",
			setup:    func(*mocks.MockForecastRepository, *mocks.MockRecommendationRepository) {},
			wantErr:  domain.ErrInvalidCustomerID,
		},
		{
			name:     "Estratégia por score - todas as seções ok",
			strategy: domain.InsightByScore,
			input:    "1532072415",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)
				r.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				assert.Equal(t, domain.CustomerID(1532072415), view.CustomerID)
				assert.Len(t, view.ViewID, 10)
				assert.Equal(t, domain.InsightByScore, view.Strategy)

				require.Equal(t, domain.SectionOK, view.Forecast.Status)
				assert.Equal(t, 3, view.Forecast.Data.Horizon)

				require.Equal(t, domain.SectionOK, view.Recommendations.Status)
				assert.Equal(t, "7", view.Recommendations.Data[0].ItemID)

				require.Equal(t, domain.SectionOK, view.Insight.Status)
				assert.Equal(t, domain.TopItemMessage("7", "3"), view.Insight.Data.Message)
			},
		},
		{
			name:     "Estratégia por limiar - faixa moderada",
			strategy: domain.InsightByThreshold,
			input:    "1532072415",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)
				r.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				require.Equal(t, domain.SectionOK, view.Insight.Status)
				assert.Equal(t, domain.EngagementModerate, view.Insight.Data.Band)
			},
		},
		{
			name:     "Falha ao carregar previsão não derruba as outras seções",
			strategy: domain.InsightByScore,
			input:    "1532072415",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(nil, errors.New("open forecast.csv: no such file"))
				r.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				assert.Equal(t, domain.SectionError, view.Forecast.Status)
				assert.Contains(t, view.Forecast.Message, "error loading forecast")
				assert.Equal(t, domain.SectionOK, view.Recommendations.Status)
				assert.Equal(t, domain.SectionOK, view.Insight.Status)
			},
		},
		{
			name:     "Falha nas recomendações com estratégia por score - insight indisponível",
			strategy: domain.InsightByScore,
			input:    "1532072415",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)
				r.EXPECT().GetRecommendations(gomock.Any()).Return(nil, errors.New("malformed"))
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				assert.Equal(t, domain.SectionOK, view.Forecast.Status)
				assert.Equal(t, domain.SectionError, view.Recommendations.Status)
				assert.Equal(t, domain.SectionError, view.Insight.Status)
			},
		},
		{
			name:     "Cliente sem dados - seções vazias e mensagem de espera",
			strategy: domain.InsightByScore,
			input:    "43",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)
				r.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				assert.Equal(t, domain.SectionEmpty, view.Forecast.Status)
				assert.Equal(t, NoForecastMessage, view.Forecast.Message)
				assert.Equal(t, domain.SectionEmpty, view.Recommendations.Status)
				assert.Equal(t, domain.SectionEmpty, view.Insight.Status)
				assert.Equal(t, domain.WaitingForDataMessage, view.Insight.Message)
			},
		},
		{
			name:     "Estratégia por limiar sem previsão - insight pulado",
			strategy: domain.InsightByThreshold,
			input:    "43",
			setup: func(f *mocks.MockForecastRepository, r *mocks.MockRecommendationRepository) {
				f.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)
				r.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)
			},
			validate: func(t *testing.T, view *domain.DashboardView) {
				assert.Equal(t, domain.SectionSkipped, view.Insight.Status)
				assert.Empty(t, view.Insight.Data.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, forecastRepo, recsRepo := newTestService(t, tt.strategy)
			tt.setup(forecastRepo, recsRepo)

			view, err := service.BuildDashboard(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC), view.GeneratedAt)
			tt.validate(t, view)
		})
	}
}

func TestService_InsightLoadsOnlyWhatTheStrategyNeeds(t *testing.T) {
	ctx := context.Background()

	t.Run("score lê apenas recomendações", func(t *testing.T) {
		service, _, recsRepo := newTestService(t, domain.InsightByScore)
		recsRepo.EXPECT().GetRecommendations(gomock.Any()).Return(sampleRecommendations(), nil)

		section := service.Insight(ctx, 1532072415)
		require.Equal(t, domain.SectionOK, section.Status)
		assert.Equal(t, "7", section.Data.ItemID)
	})

	t.Run("threshold lê apenas previsão", func(t *testing.T) {
		service, forecastRepo, _ := newTestService(t, domain.InsightByThreshold)
		forecastRepo.EXPECT().GetForecast(gomock.Any()).Return(sampleForecast(), nil)

		section := service.Insight(ctx, 1532072415)
		require.Equal(t, domain.SectionOK, section.Status)
		assert.Equal(t, domain.EngagementModerate, section.Data.Band)
	})
}

func TestService_InsightIsRecomputedPerCustomer(t *testing.T) {
	ctx := context.Background()
	service, _, recsRepo := newTestService(t, domain.InsightByScore)

	table := &domain.RecommendationTable{
		CustomerScoped: true,
		Rows: []domain.RecommendationRow{
			{CustomerID: customer(1), ItemID: "10", CategoryID: "1", Score: 1},
			{CustomerID: customer(2), ItemID: "20", CategoryID: "2", Score: 1},
		},
	}
	recsRepo.EXPECT().GetRecommendations(gomock.Any()).Return(table, nil).Times(2)

	assert.Equal(t, "10", service.Insight(ctx, 1).Data.ItemID)
	assert.Equal(t, "20", service.Insight(ctx, 2).Data.ItemID)
}
