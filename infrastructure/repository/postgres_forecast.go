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
	forecastTable = "forecast f"
)

type postgresForecastRepository struct {
	conn    postgres.Queryer
	breaker *gobreaker.CircuitBreaker[*domain.ForecastTable]
}

func NewPostgresForecastRepository(conn postgres.Queryer) ForecastRepository {
	return &postgresForecastRepository{
		conn:    conn,
		breaker: gobreaker.NewCircuitBreaker[*domain.ForecastTable](breakerSettings("postgres-forecast")),
	}
}

func buildForecastQuery() (string, []any, error) {
	return squirrel.
		Select(
			"f.customer_id",
			"f.day",
			"f.predicted_value",
		).
		From(forecastTable).
		OrderBy("f.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *postgresForecastRepository) GetForecast(ctx context.Context) (*domain.ForecastTable, error) {
	start := time.Now()
	defer func() {
		metrics.DatasetLoadDuration.WithLabelValues(datasetForecast, sourcePostgres).Observe(time.Since(start).Seconds())
	}()

	table, err := r.breaker.Execute(func() (*domain.ForecastTable, error) {
		return r.query(ctx)
	})
	if err != nil {
		metrics.DatasetLoadErrors.WithLabelValues(datasetForecast, sourcePostgres).Inc()
		return nil, err
	}

	return table, nil
}

func (r *postgresForecastRepository) query(ctx context.Context) (*domain.ForecastTable, error) {
	sqlQuery, args, err := buildForecastQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	table := &domain.ForecastTable{
		Rows:   make([]domain.ForecastRow, 0),
		Source: "postgres:forecast",
	}

	var rowScope customerScope
	for rows.Next() {
		var (
			customerID sql.NullInt64
			row        domain.ForecastRow
		)

		if err := rows.Scan(&customerID, &row.Day, &row.PredictedValue); err != nil {
			return nil, fmt.Errorf("erro ao escanear previsão: %w", err)
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
