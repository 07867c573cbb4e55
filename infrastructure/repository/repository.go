// Package repository contém as origens das tabelas de previsão e recomendação.
// Todas são somente leitura.
package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
	"github.com/vfg2006/smartshop-insights/internal/domain"
)

const (
	sourceFile     = "file"
	sourcePostgres = "postgres"

	datasetForecast        = "forecast"
	datasetRecommendations = "recommendations"
)

type ForecastRepository interface {
	GetForecast(ctx context.Context) (*domain.ForecastTable, error)
}

type RecommendationRepository interface {
	GetRecommendations(ctx context.Context) (*domain.RecommendationTable, error)
}

// customerScope conta linhas com e sem customer_id.
// Uma tabela com as duas formas é rejeitada: linhas sem cliente
// acabariam exibidas para qualquer cliente.
type customerScope struct {
	scoped int
	global int
}

func (s *customerScope) add(hasCustomer bool) {
	if hasCustomer {
		s.scoped++
		return
	}
	s.global++
}

func (s customerScope) customerScoped() bool {
	return s.scoped > 0
}

func (s customerScope) check() error {
	if s.scoped > 0 && s.global > 0 {
		return fmt.Errorf("%w: %d linhas com customer_id e %d sem customer_id na mesma tabela",
			dataset.ErrMalformedRow, s.scoped, s.global)
	}
	return nil
}
