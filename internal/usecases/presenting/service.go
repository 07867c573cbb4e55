// Package presenting monta o painel de um cliente: previsão, recomendações e
// a mensagem de marketing. Cada visão recarrega as tabelas e não guarda estado.
package presenting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/smartshop-insights/infrastructure/repository"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/log"
	"github.com/vfg2006/smartshop-insights/pkg/metrics"
	"github.com/vfg2006/smartshop-insights/pkg/utils"
)

type Presenter interface {
	Forecast(ctx context.Context, customerID domain.CustomerID) domain.Section[domain.ForecastSeries]
	Recommendations(ctx context.Context, customerID domain.CustomerID) domain.Section[[]domain.RecommendationRow]
	Insight(ctx context.Context, customerID domain.CustomerID) domain.Section[domain.Insight]
	// BuildDashboard só devolve erro para id de cliente inválido; falhas de
	// carga ficam na seção afetada.
	BuildDashboard(ctx context.Context, rawCustomerID string) (*domain.DashboardView, error)
	Strategy() domain.InsightStrategy
}

type Service struct {
	forecastRepository       repository.ForecastRepository
	recommendationRepository repository.RecommendationRepository
	strategy                 domain.InsightStrategy
	thresholds               domain.Thresholds
	now                      func() time.Time
}

func NewService(
	forecastRepo repository.ForecastRepository,
	recommendationRepo repository.RecommendationRepository,
	strategy domain.InsightStrategy,
	thresholds domain.Thresholds,
) Presenter {
	return &Service{
		forecastRepository:       forecastRepo,
		recommendationRepository: recommendationRepo,
		strategy:                 strategy,
		thresholds:               thresholds,
		now:                      time.Now,
	}
}

func (s *Service) Strategy() domain.InsightStrategy {
	return s.strategy
}

func (s *Service) Forecast(ctx context.Context, customerID domain.CustomerID) domain.Section[domain.ForecastSeries] {
	return s.forecastSection(ctx, customerID)
}

func (s *Service) Recommendations(ctx context.Context, customerID domain.CustomerID) domain.Section[[]domain.RecommendationRow] {
	return s.recommendationSection(ctx, customerID)
}

// Insight carrega apenas a tabela exigida pela estratégia configurada
func (s *Service) Insight(ctx context.Context, customerID domain.CustomerID) domain.Section[domain.Insight] {
	if s.strategy == domain.InsightByThreshold {
		return s.insightSection(s.forecastSection(ctx, customerID), domain.Section[[]domain.RecommendationRow]{})
	}
	return s.insightSection(domain.Section[domain.ForecastSeries]{}, s.recommendationSection(ctx, customerID))
}

func (s *Service) BuildDashboard(ctx context.Context, rawCustomerID string) (*domain.DashboardView, error) {
	logger := log.ForContext(ctx)

	customerID, err := domain.ParseCustomerID(rawCustomerID)
	if err != nil {
		metrics.InvalidCustomerInput.Inc()
		logger.WithField("customer_input", rawCustomerID).Warn("dashboard: id de cliente inválido")
		return nil, err
	}

	viewID, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Warn("dashboard: não foi possível gerar o id da visão")
	}

	forecast := s.forecastSection(ctx, customerID)
	recommendations := s.recommendationSection(ctx, customerID)
	insight := s.insightSection(forecast, recommendations)

	metrics.DashboardSections.WithLabelValues("forecast", string(forecast.Status)).Inc()
	metrics.DashboardSections.WithLabelValues("recommendations", string(recommendations.Status)).Inc()
	metrics.DashboardSections.WithLabelValues("insight", string(insight.Status)).Inc()

	logger.WithFields(log.Fields{
		"customer_id":     customerID.String(),
		"view_id":         viewID,
		"forecast":        forecast.Status,
		"recommendations": recommendations.Status,
		"insight":         insight.Status,
	}).Info("dashboard: visão montada")

	return &domain.DashboardView{
		ViewID:          viewID,
		CustomerID:      customerID,
		Forecast:        forecast,
		Recommendations: recommendations,
		Insight:         insight,
		Strategy:        s.strategy,
		GeneratedAt:     s.now(),
	}, nil
}

func (s *Service) forecastSection(ctx context.Context, customerID domain.CustomerID) domain.Section[domain.ForecastSeries] {
	table, err := s.forecastRepository.GetForecast(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("customer_id", customerID.String()).Error("dashboard: erro ao carregar previsão")
		return domain.FailedSection[domain.ForecastSeries](fmt.Errorf("%w: %v", ErrForecastUnavailable, err))
	}

	points := PresentForecast(table, customerID)
	if len(points) == 0 {
		return domain.EmptySection[domain.ForecastSeries](NoForecastMessage)
	}

	return domain.SectionWith(domain.NewForecastSeries(points))
}

func (s *Service) recommendationSection(ctx context.Context, customerID domain.CustomerID) domain.Section[[]domain.RecommendationRow] {
	table, err := s.recommendationRepository.GetRecommendations(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("customer_id", customerID.String()).Error("dashboard: erro ao carregar recomendações")
		return domain.FailedSection[[]domain.RecommendationRow](fmt.Errorf("%w: %v", ErrRecommendationsUnavailable, err))
	}

	recs := SelectRecommendations(table, customerID)
	if len(recs) == 0 {
		return domain.EmptySection[[]domain.RecommendationRow](NoRecommendationsMessage)
	}

	return domain.SectionWith(recs)
}

// insightSection deriva a mensagem das seções já carregadas, sem nova leitura
func (s *Service) insightSection(
	forecast domain.Section[domain.ForecastSeries],
	recommendations domain.Section[[]domain.RecommendationRow],
) domain.Section[domain.Insight] {
	switch s.strategy {
	case domain.InsightByThreshold:
		switch forecast.Status {
		case domain.SectionError:
			return domain.FailedSection[domain.Insight](ErrInsightUnavailable)
		case domain.SectionOK:
			insight, ok := ThresholdInsight(forecast.Data.Points, s.thresholds)
			if ok {
				metrics.InsightBands.WithLabelValues(string(s.strategy), string(insight.Band)).Inc()
				return domain.SectionWith(insight)
			}
		}
		return domain.SkippedSection[domain.Insight]()

	default:
		if recommendations.Status == domain.SectionError {
			return domain.FailedSection[domain.Insight](ErrInsightUnavailable)
		}

		insight := ScoreInsight(recommendations.Data)
		if recommendations.Status != domain.SectionOK {
			metrics.InsightBands.WithLabelValues(string(s.strategy), "waiting").Inc()
			return domain.Section[domain.Insight]{
				Status:  domain.SectionEmpty,
				Data:    insight,
				Message: insight.Message,
			}
		}

		metrics.InsightBands.WithLabelValues(string(s.strategy), "top_item").Inc()
		return domain.SectionWith(insight)
	}
}
