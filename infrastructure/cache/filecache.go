// Package cache guarda tabelas carregadas de arquivos, identificadas pelo caminho
// e válidas apenas enquanto a data de modificação e o tamanho do arquivo não mudarem.
package cache

import (
	"os"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/smartshop-insights/pkg/metrics"
)

// Loader carrega o valor a partir do arquivo
type Loader[T any] func(path string) (T, error)

type entry[T any] struct {
	value    T
	modTime  time.Time
	size     int64
	loadedAt time.Time
}

// FileCache nunca é indexado por cliente: o arquivo é o mesmo para todos.
// Os valores guardados devem ser tratados como somente leitura.
type FileCache[T any] struct {
	name    string
	mu      sync.RWMutex
	entries map[string]entry[T]
	hits    int64
	misses  int64
	stat    func(string) (os.FileInfo, error)
}

type EntryStats struct {
	Path     string    `json:"path"`
	ModTime  time.Time `json:"mod_time"`
	Size     int64     `json:"size"`
	LoadedAt time.Time `json:"loaded_at"`
}

type Stats struct {
	Name    string       `json:"name"`
	Hits    int64        `json:"hits"`
	Misses  int64        `json:"misses"`
	Entries []EntryStats `json:"entries"`
}

func NewFileCache[T any](name string) *FileCache[T] {
	return &FileCache[T]{
		name:    name,
		entries: make(map[string]entry[T]),
		stat:    os.Stat,
	}
}

// Get devolve o valor em cache se o arquivo não mudou, senão recarrega.
// Falhas de carga não são guardadas.
func (c *FileCache[T]) Get(path string, load Loader[T]) (T, error) {
	var zero T

	info, err := c.stat(path)
	if err != nil {
		c.remove(path, "missing")
		return zero, err
	}

	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()

	if ok && sameFile(e, info) {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		metrics.CacheHits.WithLabelValues(c.name).Inc()
		return e.value, nil
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	metrics.CacheMisses.WithLabelValues(c.name).Inc()

	value, err := load(path)
	if err != nil {
		c.remove(path, "load_error")
		return zero, err
	}

	c.mu.Lock()
	c.entries[path] = entry[T]{
		value:    value,
		modTime:  info.ModTime(),
		size:     info.Size(),
		loadedAt: time.Now(),
	}
	c.mu.Unlock()

	return value, nil
}

// Invalidate remove o arquivo do cache e informa se havia entrada
func (c *FileCache[T]) Invalidate(path string) bool {
	return c.remove(path, "invalidated")
}

// InvalidateAll esvazia o cache e devolve quantas entradas foram removidas
func (c *FileCache[T]) InvalidateAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]entry[T])
	if n > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name, "invalidated").Add(float64(n))
	}
	return n
}

// Prune remove as entradas cujo arquivo mudou ou sumiu
func (c *FileCache[T]) Prune() []string {
	c.mu.RLock()
	snapshot := make(map[string]entry[T], len(c.entries))
	for path, e := range c.entries {
		snapshot[path] = e
	}
	c.mu.RUnlock()

	pruned := make([]string, 0)
	for path, e := range snapshot {
		info, err := c.stat(path)
		if err == nil && sameFile(e, info) {
			continue
		}

		c.mu.Lock()
		current, ok := c.entries[path]
		if ok && current.loadedAt.Equal(e.loadedAt) {
			delete(c.entries, path)
			pruned = append(pruned, path)
		}
		c.mu.Unlock()
	}

	if len(pruned) > 0 {
		metrics.CacheEvictions.WithLabelValues(c.name, "stale").Add(float64(len(pruned)))
	}

	sort.Strings(pruned)
	return pruned
}

func (c *FileCache[T]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Name:    c.name,
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: make([]EntryStats, 0, len(c.entries)),
	}

	for path, e := range c.entries {
		stats.Entries = append(stats.Entries, EntryStats{
			Path:     path,
			ModTime:  e.modTime,
			Size:     e.size,
			LoadedAt: e.loadedAt,
		})
	}

	sort.Slice(stats.Entries, func(i, j int) bool {
		return stats.Entries[i].Path < stats.Entries[j].Path
	})

	return stats
}

func (c *FileCache[T]) Name() string {
	return c.name
}

func (c *FileCache[T]) remove(path, reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[path]; !ok {
		return false
	}

	delete(c.entries, path)
	metrics.CacheEvictions.WithLabelValues(c.name, reason).Inc()
	return true
}

func sameFile[T any](e entry[T], info os.FileInfo) bool {
	return e.modTime.Equal(info.ModTime()) && e.size == info.Size()
}

// Store é a parte administrativa de um FileCache, independente do tipo guardado
type Store interface {
	Name() string
	Invalidate(path string) bool
	InvalidateAll() int
	Prune() []string
	Stats() Stats
}

// Group agrupa os caches da aplicação para as rotas administrativas e o agendador
type Group []Store

// Invalidate remove o caminho de todos os caches e devolve quantas entradas saíram
func (g Group) Invalidate(path string) int {
	n := 0
	for _, s := range g {
		if s.Invalidate(path) {
			n++
		}
	}
	return n
}

func (g Group) InvalidateAll() int {
	n := 0
	for _, s := range g {
		n += s.InvalidateAll()
	}
	return n
}

func (g Group) Prune() []string {
	pruned := make([]string, 0)
	for _, s := range g {
		pruned = append(pruned, s.Prune()...)
	}
	return pruned
}

func (g Group) Stats() []Stats {
	stats := make([]Stats, 0, len(g))
	for _, s := range g {
		stats = append(stats, s.Stats())
	}
	return stats
}
