package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartshop-insights/infrastructure/cache"
	"github.com/vfg2006/smartshop-insights/internal/config"
)

type blockingPruner struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingPruner) Prune() []string {
	close(p.started)
	<-p.release
	return nil
}

func TestCacheRefreshService_RunNow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forecast.csv")
	require.NoError(t, os.WriteFile(path, []byte("day,predicted_value\n1,1.5\n"), 0o600))

	fileCache := cache.NewFileCache[string]("forecast")
	_, err := fileCache.Get(path, func(string) (string, error) { return "carregado", nil })
	require.NoError(t, err)

	service := NewCacheRefreshService(cache.Group{fileCache}, config.CacheRefresh{CronSchedule: "*/5 * * * *"})

	// Arquivo inalterado: nada a remover
	pruned, err := service.RunNow()
	require.NoError(t, err)
	assert.Empty(t, pruned)

	require.NoError(t, os.Remove(path))

	pruned, err = service.RunNow()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, pruned)

	status := service.GetStatus()
	assert.Equal(t, 2, status.Runs)
	assert.Equal(t, TriggerManual, status.LastTrigger)
	assert.False(t, status.Running)
	assert.Equal(t, []string{path}, status.LastPruned)
	assert.False(t, status.LastCompletedAt.Before(status.LastStartedAt))
}

func TestCacheRefreshService_RejectsConcurrentRun(t *testing.T) {
	pruner := &blockingPruner{started: make(chan struct{}), release: make(chan struct{})}
	service := NewCacheRefreshService(pruner, config.CacheRefresh{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.RunNow()
	}()

	<-pruner.started
	assert.True(t, service.GetStatus().Running)

	_, err := service.RunNow()
	assert.ErrorIs(t, err, ErrRefreshRunning)

	close(pruner.release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("execução bloqueada não terminou")
	}
	assert.Equal(t, 1, service.GetStatus().Runs)
}

func TestCacheRefreshService_StartDisabled(t *testing.T) {
	service := NewCacheRefreshService(cache.Group{}, config.CacheRefresh{Enabled: false})
	assert.NoError(t, service.Start(context.Background()))
}

func TestCacheRefreshService_StartInvalidCron(t *testing.T) {
	service := NewCacheRefreshService(cache.Group{}, config.CacheRefresh{Enabled: true, CronSchedule: "não é cron"})
	assert.Error(t, service.Start(context.Background()))
}
