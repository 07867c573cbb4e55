// Package app monta as dependências compartilhadas pelo servidor HTTP e pelo
// relatório de linha de comando.
package app

import (
	"context"
	"fmt"

	"github.com/vfg2006/smartshop-insights/infrastructure/cache"
	"github.com/vfg2006/smartshop-insights/infrastructure/database/postgres"
	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
	"github.com/vfg2006/smartshop-insights/infrastructure/repository"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/internal/usecases/presenting"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

type App struct {
	Presenter presenting.Presenter
	Caches    cache.Group

	conn *postgres.Connection
}

// New escolhe a origem dos dados (arquivo ou postgres) e monta o presenter
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Caches: cache.Group{}}

	var (
		forecastRepo       repository.ForecastRepository
		recommendationRepo repository.RecommendationRepository
	)

	switch cfg.Dataset.Source {
	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")

		a.conn = conn
		forecastRepo = repository.NewPostgresForecastRepository(conn)
		recommendationRepo = repository.NewPostgresRecommendationRepository(conn)

	default:
		opts := dataset.Options{Sheet: cfg.Dataset.XLSXSheet}

		var (
			forecastCache       *cache.FileCache[*domain.ForecastTable]
			recommendationCache *cache.FileCache[*domain.RecommendationTable]
		)
		if cfg.Cache.Enabled {
			forecastCache = cache.NewFileCache[*domain.ForecastTable]("forecast")
			recommendationCache = cache.NewFileCache[*domain.RecommendationTable]("recommendations")
			a.Caches = cache.Group{forecastCache, recommendationCache}
		}

		forecastRepo = repository.NewFileForecastRepository(cfg.Dataset.ForecastPath, opts, forecastCache)
		recommendationRepo = repository.NewFileRecommendationRepository(cfg.Dataset.RecommendationPath, opts, recommendationCache)

		log.L.WithFields(log.Fields{
			"dataset":        cfg.Dataset.Source,
			"forecast":       cfg.Dataset.ForecastPath,
			"recommendation": cfg.Dataset.RecommendationPath,
			"cache":          cfg.Cache.Enabled,
		}).Info("Tabelas lidas de arquivos")
	}

	a.Presenter = presenting.NewService(forecastRepo, recommendationRepo, cfg.InsightStrategy(), cfg.Thresholds())

	return a, nil
}

func (a *App) Close() error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}
