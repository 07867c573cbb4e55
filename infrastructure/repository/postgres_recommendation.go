package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sony/gobreaker/v2"
	"github.com/vfg2006/smartshop-insights/infrastructure/database/postgres"
	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/metrics"
)

const (
	recommendationTable = "recommendation r"
)

type postgresRecommendationRepository struct {
	conn    postgres.Queryer
	breaker *gobreaker.CircuitBreaker[*domain.RecommendationTable]
}

func NewPostgresRecommendationRepository(conn postgres.Queryer) RecommendationRepository {
	return &postgresRecommendationRepository{
		conn:    conn,
		breaker: gobreaker.NewCircuitBreaker[*domain.RecommendationTable](breakerSettings("postgres-recommendation")),
	}
}

// A ordem por id reproduz a ordem original das linhas, usada no desempate por score
func buildRecommendationQuery() (string, []any, error) {
	return squirrel.
		Select(
			"r.customer_id",
			"r.item_id",
			"r.category_id",
			"r.score",
		).
		From(recommendationTable).
		OrderBy("r.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *postgresRecommendationRepository) GetRecommendations(ctx context.Context) (*domain.RecommendationTable, error) {
	start := time.Now()
	defer func() {
		metrics.DatasetLoadDuration.WithLabelValues(datasetRecommendations, sourcePostgres).Observe(time.Since(start).Seconds())
	}()

	table, err := r.breaker.Execute(func() (*domain.RecommendationTable, error) {
		return r.query(ctx)
	})
	if err != nil {
		metrics.DatasetLoadErrors.WithLabelValues(datasetRecommendations, sourcePostgres).Inc()
		return nil, err
	}

	return table, nil
}

func (r *postgresRecommendationRepository) query(ctx context.Context) (*domain.RecommendationTable, error) {
	sqlQuery, args, err := buildRecommendationQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	table := &domain.RecommendationTable{
		Rows:   make([]domain.RecommendationRow, 0),
		Source: "postgres:recommendation",
	}

	var rowScope customerScope
	for rows.Next() {
		var (
			customerID sql.NullInt64
			row        domain.RecommendationRow
		)

		if err := rows.Scan(&customerID, &row.ItemID, &row.CategoryID, &row.Score); err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}

		rowScope.add(customerID.Valid)
		if customerID.Valid {
			id := domain.CustomerID(customerID.Int64)
			row.CustomerID = &id
		}

		if err := dataset.ValidateRow(row); err != nil {
			return nil, fmt.Errorf("%w: linha %d: %v", dataset.ErrMalformedRow, len(table.Rows)+1, err)
		}

		table.Rows = append(table.Rows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := rowScope.check(); err != nil {
		return nil, err
	}
	table.CustomerScoped = rowScope.customerScoped()

	return table, nil
}
