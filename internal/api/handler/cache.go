package handler

import (
	"net/http"

	"github.com/vfg2006/smartshop-insights/infrastructure/cache"
	"github.com/vfg2006/smartshop-insights/pkg/log"
)

// CacheAdmin é a visão administrativa dos caches de arquivo
type CacheAdmin interface {
	Invalidate(path string) int
	InvalidateAll() int
	Stats() []cache.Stats
}

// InvalidateCache remove ?path= de todos os caches, ou tudo quando path é omitido
func InvalidateCache(caches CacheAdmin) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")

		var removed int
		if path == "" {
			removed = caches.InvalidateAll()
		} else {
			removed = caches.Invalidate(path)
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"cache":   path,
			"removed": removed,
		}).Info("cache: invalidação manual")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"path":    path,
			"removed": removed,
		})
	})
}

func GetCacheStats(caches CacheAdmin) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"caches": caches.Stats(),
		})
	})
}
