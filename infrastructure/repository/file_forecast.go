package repository

import (
	"context"
	"time"

	"github.com/vfg2006/smartshop-insights/infrastructure/cache"
	"github.com/vfg2006/smartshop-insights/infrastructure/dataset"
	"github.com/vfg2006/smartshop-insights/internal/domain"
	"github.com/vfg2006/smartshop-insights/pkg/log"
	"github.com/vfg2006/smartshop-insights/pkg/metrics"
)

type fileForecastRepository struct {
	path  string
	opts  dataset.Options
	cache *cache.FileCache[*domain.ForecastTable]
}

// NewFileForecastRepository lê a previsão de um arquivo csv ou xlsx.
// Com fileCache nil o arquivo é relido a cada visão.
func NewFileForecastRepository(path string, opts dataset.Options, fileCache *cache.FileCache[*domain.ForecastTable]) ForecastRepository {
	return &fileForecastRepository{
		path:  path,
		opts:  opts,
		cache: fileCache,
	}
}

func (r *fileForecastRepository) GetForecast(ctx context.Context) (*domain.ForecastTable, error) {
	start := time.Now()
	defer func() {
		metrics.DatasetLoadDuration.WithLabelValues(datasetForecast, sourceFile).Observe(time.Since(start).Seconds())
	}()

	load := func(path string) (*domain.ForecastTable, error) {
		log.ForContext(ctx).WithField("path", path).Debug("repository: carregando arquivo de previsão")
		return dataset.LoadForecast(path, r.opts)
	}

	var (
		table *domain.ForecastTable
		err   error
	)
	if r.cache != nil {
		table, err = r.cache.Get(r.path, load)
	} else {
		table, err = load(r.path)
	}

	if err != nil {
		metrics.DatasetLoadErrors.WithLabelValues(datasetForecast, sourceFile).Inc()
		return nil, err
	}

	return table, nil
}
