package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/smartshop-insights/internal/config"
	"github.com/vfg2006/smartshop-insights/pkg/log"
	"github.com/vfg2006/smartshop-insights/pkg/metrics"
)

const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

var ErrRefreshRunning = errors.New("atualização do cache já em andamento")

// Pruner remove entradas cujo arquivo mudou ou sumiu
type Pruner interface {
	Prune() []string
}

type CacheRefreshStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron"`
	Running         bool      `json:"running"`
	Runs            int       `json:"runs"`
	LastTrigger     string    `json:"last_trigger,omitempty"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastPruned      []string  `json:"last_pruned"`
}

// CacheRefreshService agenda a limpeza periódica do cache de arquivos.
// O painel continua correto sem ele; o job só libera memória mais cedo.
type CacheRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.CacheRefresh
	pruner    Pruner

	mu              sync.Mutex
	running         bool
	runs            int
	lastTrigger     string
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastPruned      []string
}

func NewCacheRefreshService(pruner Pruner, cfg config.CacheRefresh) *CacheRefreshService {
	log.L.WithFields(log.Fields{
		"job":     "cache-refresh",
		"cron":    cfg.CronSchedule,
		"enabled": cfg.Enabled,
	}).Info("scheduler: configuração da atualização do cache carregada")

	return &CacheRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		pruner:    pruner,
	}
}

// Start agenda o job e para o agendador quando ctx é cancelado
func (s *CacheRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.WithField("job", "cache-refresh").Info("scheduler: atualização do cache desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.run(TriggerCron); err != nil {
			log.L.WithField("job", "cache-refresh").Info("scheduler: execução ignorada, job em andamento")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.WithField("job", "cache-refresh").Info("scheduler: parando atualização do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow executa a limpeza imediatamente e devolve os caminhos removidos
func (s *CacheRefreshService) RunNow() ([]string, error) {
	return s.run(TriggerManual)
}

func (s *CacheRefreshService) run(trigger string) ([]string, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		metrics.CacheRefreshRuns.WithLabelValues(trigger, "skipped").Inc()
		return nil, ErrRefreshRunning
	}
	s.running = true
	s.lastTrigger = trigger
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	pruned := s.pruner.Prune()

	s.mu.Lock()
	s.running = false
	s.runs++
	s.lastCompletedAt = time.Now()
	s.lastPruned = pruned
	s.mu.Unlock()

	metrics.CacheRefreshRuns.WithLabelValues(trigger, "ok").Inc()
	log.L.WithFields(log.Fields{
		"job":     "cache-refresh",
		"trigger": trigger,
		"pruned":  len(pruned),
	}).Info("scheduler: atualização do cache concluída")

	return pruned, nil
}

func (s *CacheRefreshService) GetStatus() CacheRefreshStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := make([]string, len(s.lastPruned))
	copy(pruned, s.lastPruned)

	return CacheRefreshStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.running,
		Runs:            s.runs,
		LastTrigger:     s.lastTrigger,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
		LastPruned:      pruned,
	}
}
