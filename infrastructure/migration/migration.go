// Package migration prepara o banco usado por DATASET_SOURCE=postgres:
// cria as tabelas e carrega previsões e recomendações a partir de arquivos.
// O painel só lê essas tabelas; a carga é uma ferramenta de operação.
package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

const batchSize = 500

// id BIGSERIAL preserva a ordem de inserção, que é a ordem do arquivo
var schema = []string{
	`CREATE TABLE IF NOT EXISTS forecast (
		id              BIGSERIAL PRIMARY KEY,
		customer_id     BIGINT,
		day             INTEGER NOT NULL CHECK (day >= 1),
		predicted_value DOUBLE PRECISION NOT NULL CHECK (predicted_value >= 0)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS forecast_customer_day_idx ON forecast (COALESCE(customer_id, 0), day)`,
	`CREATE TABLE IF NOT EXISTS recommendation (
		id          BIGSERIAL PRIMARY KEY,
		customer_id BIGINT,
		item_id     TEXT NOT NULL,
		category_id TEXT NOT NULL,
		score       DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS recommendation_customer_idx ON recommendation (customer_id)`,
}

var (
	// ErrScopeMismatch: a tabela já guarda linhas com (ou sem) customer_id e a carga traz o contrário
	ErrScopeMismatch   = errors.New("escopo de cliente diferente do já gravado")
	// ErrAlreadyImported: sem replace, cada cliente (ou a tabela global) só é carregado uma vez
	ErrAlreadyImported = errors.New("dados já importados")
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type RowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Result struct {
	Forecast        int `json:"forecast"`
	Recommendations int `json:"recommendations"`
}

func EnsureSchema(ctx context.Context, db Execer) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}

// Import grava as duas tabelas em uma única transação.
// Com replace, o conteúdo anterior é apagado antes da carga. Sem replace a carga
// só acrescenta clientes novos: cliente já gravado, tabela global já preenchida ou
// escopo diferente do gravado fazem a carga falhar sem alterar nada.
func Import(ctx context.Context, db *sql.DB, forecast *domain.ForecastTable, recs *domain.RecommendationTable, replace bool) (Result, error) {
	var result Result
	start := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.L.WithError(rbErr).Error("migration: erro ao reverter transação")
			}
		}
	}()

	if err = EnsureSchema(ctx, tx); err != nil {
		return result, err
	}

	if replace {
		if _, err = tx.ExecContext(ctx, "TRUNCATE forecast, recommendation RESTART IDENTITY"); err != nil {
			return result, fmt.Errorf("erro ao limpar tabelas: %w", err)
		}
	} else {
		if forecast != nil {
			if err = checkAppend(ctx, tx, "forecast", forecast.CustomerScoped, forecastCustomers(forecast.Rows)); err != nil {
				return result, err
			}
		}
		if recs != nil {
			if err = checkAppend(ctx, tx, "recommendation", recs.CustomerScoped, recommendationCustomers(recs.Rows)); err != nil {
				return result, err
			}
		}
	}

	if forecast != nil {
		if result.Forecast, err = insertBatches(ctx, tx, len(forecast.Rows), func(from, to int) (string, []any, error) {
			return buildForecastInsert(forecast.Rows[from:to])
		}); err != nil {
			return result, err
		}
	}

	if recs != nil {
		if result.Recommendations, err = insertBatches(ctx, tx, len(recs.Rows), func(from, to int) (string, []any, error) {
			return buildRecommendationInsert(recs.Rows[from:to])
		}); err != nil {
			return result, err
		}
	}

	if err = tx.Commit(); err != nil {
		return result, fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	log.L.WithFields(log.Fields{
		"forecast":        result.Forecast,
		"recommendations": result.Recommendations,
		"duration_ms":     time.Since(start).Milliseconds(),
	}).Info("migration: carga concluída")

	return result, nil
}

// checkAppend compara a carga com o que a tabela já guarda
func checkAppend(ctx context.Context, db RowQueryer, table string, scoped bool, customers []int64) error {
	query, args, err := squirrel.
		Select("COUNT(*)", "COUNT(customer_id)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total, withCustomer int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&total, &withCustomer); err != nil {
		return fmt.Errorf("erro ao contar linhas de %s: %w", table, err)
	}

	if total == 0 {
		return nil
	}

	storedScoped := withCustomer > 0
	if storedScoped != scoped || (storedScoped && withCustomer < total) {
		return fmt.Errorf("%w: %s tem %d linhas, %d com customer_id", ErrScopeMismatch, table, total, withCustomer)
	}

	if !scoped {
		return fmt.Errorf("%w: %s global já tem %d linhas, use replace", ErrAlreadyImported, table, total)
	}

	query, args, err = squirrel.
		Select("COUNT(DISTINCT customer_id)").
		From(table).
		Where("customer_id = ANY(?)", pq.Array(customers)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var existing int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&existing); err != nil {
		return fmt.Errorf("erro ao procurar clientes em %s: %w", table, err)
	}

	if existing > 0 {
		return fmt.Errorf("%w: %d clientes já estão em %s, use replace", ErrAlreadyImported, existing, table)
	}

	return nil
}

func forecastCustomers(rows []domain.ForecastRow) []int64 {
	return distinctCustomers(rows, func(r domain.ForecastRow) *domain.CustomerID { return r.CustomerID })
}

func recommendationCustomers(rows []domain.RecommendationRow) []int64 {
	return distinctCustomers(rows, func(r domain.RecommendationRow) *domain.CustomerID { return r.CustomerID })
}

func distinctCustomers[R any](rows []R, customerOf func(R) *domain.CustomerID) []int64 {
	ids := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, row := range rows {
		c := customerOf(row)
		if c == nil {
			continue
		}
		if _, ok := seen[int64(*c)]; !ok {
			seen[int64(*c)] = struct{}{}
			ids = append(ids, int64(*c))
		}
	}
	return ids
}

func insertBatches(ctx context.Context, db Execer, total int, build func(from, to int) (string, []any, error)) (int, error) {
	inserted := 0
	for from := 0; from < total; from += batchSize {
		to := min(from+batchSize, total)

		query, args, err := build(from, to)
		if err != nil {
			return inserted, fmt.Errorf("erro ao construir insert: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return inserted, fmt.Errorf("erro ao inserir linhas %d-%d: %w", from+1, to, err)
		}
		inserted = to

		log.L.Debugf("migration: %d/%d linhas inseridas", inserted, total)
	}
	return inserted, nil
}

func buildForecastInsert(rows []domain.ForecastRow) (string, []any, error) {
	insert := squirrel.Insert("forecast").
		Columns("customer_id", "day", "predicted_value").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		insert = insert.Values(customerValue(row.CustomerID), row.Day, row.PredictedValue)
	}

	return insert.ToSql()
}

func buildRecommendationInsert(rows []domain.RecommendationRow) (string, []any, error) {
	insert := squirrel.Insert("recommendation").
		Columns("customer_id", "item_id", "category_id", "score").
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		insert = insert.Values(customerValue(row.CustomerID), row.ItemID, row.CategoryID, row.Score)
	}

	return insert.ToSql()
}

func customerValue(id *domain.CustomerID) any {
	if id == nil {
		return nil
	}
	return int64(*id)
}
