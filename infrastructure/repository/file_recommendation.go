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

type fileRecommendationRepository struct {
	path  string
	opts  dataset.Options
	cache *cache.FileCache[*domain.RecommendationTable]
}

func NewFileRecommendationRepository(path string, opts dataset.Options, fileCache *cache.FileCache[*domain.RecommendationTable]) RecommendationRepository {
	return &fileRecommendationRepository{
		path:  path,
		opts:  opts,
		cache: fileCache,
	}
}

func (r *fileRecommendationRepository) GetRecommendations(ctx context.Context) (*domain.RecommendationTable, error) {
	start := time.Now()
	defer func() {
		metrics.DatasetLoadDuration.WithLabelValues(datasetRecommendations, sourceFile).Observe(time.Since(start).Seconds())
	}()

	load := func(path string) (*domain.RecommendationTable, error) {
		log.ForContext(ctx).WithField("path", path).Debug("repository: carregando arquivo de recomendações")
		return dataset.LoadRecommendations(path, r.opts)
	}

	var (
		table *domain.RecommendationTable
		err   error
	)
	if r.cache != nil {
		table, err = r.cache.Get(r.path, load)
	} else {
		table, err = load(r.path)
	}

	if err != nil {
		metrics.DatasetLoadErrors.WithLabelValues(datasetRecommendations, sourceFile).Inc()
		return nil, err
	}

	return table, nil
}
