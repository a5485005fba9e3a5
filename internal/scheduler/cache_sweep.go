// Package scheduler contém os jobs agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
)

const CacheSweepJobName = "cache-sweep"

// Purger remove as entradas expiradas e devolve quantas foram removidas
type Purger interface {
	Purge() int
}

type JobTracker interface {
	TrackJobRun(name string, duration time.Duration)
}

type CacheSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type CacheSweepService struct {
	scheduler        *gocron.Scheduler
	cache            Purger
	tracker          JobTracker
	config           CacheSweepConfig
	sweepRunning     bool
	sweepMutex       sync.Mutex
	lastSweepStarted time.Time
	lastSweepEnded   time.Time
	lastRemoved      int
}

func NewCacheSweepService(cache Purger, tracker JobTracker, cfg *config.Config) *CacheSweepService {
	sweepConfig := CacheSweepConfig{
		CronSchedule: cfg.Cache.SweepCron,
		SyncEnabled:  cfg.Cache.SweepEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
	}).Info("Configuração do agendador de limpeza do cache carregada")

	return &CacheSweepService{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     cache,
		tracker:   tracker,
		config:    sweepConfig,
	}
}

func (s *CacheSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de limpeza do cache desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do cache")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep remove as entradas expiradas do cache. Devolve -1 quando outra limpeza já está em
// andamento.
func (s *CacheSweepService) Sweep() int {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("Limpeza do cache já está em execução")
		return -1
	}
	s.sweepRunning = true
	s.lastSweepStarted = time.Now()
	s.sweepMutex.Unlock()

	started := time.Now()
	removed := s.cache.Purge()
	duration := time.Since(started)

	if s.tracker != nil {
		s.tracker.TrackJobRun(CacheSweepJobName, duration)
	}

	s.sweepMutex.Lock()
	s.sweepRunning = false
	s.lastSweepEnded = time.Now()
	s.lastRemoved = removed
	s.sweepMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"job":     CacheSweepJobName,
		"removed": removed,
	}).Info("Limpeza do cache concluída")

	return removed
}

// TriggerManualSync dispara uma limpeza fora do agendamento. Devolve false quando uma limpeza
// já está em andamento.
func (s *CacheSweepService) TriggerManualSync() bool {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Limpeza do cache já em andamento, ignorando solicitação manual")
		return false
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando limpeza manual do cache")
	go s.Sweep()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *CacheSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.sweepRunning,
		"last_sync_started_at":   s.lastSweepStarted,
		"last_sync_completed_at": s.lastSweepEnded,
		"last_removed":           s.lastRemoved,
	}
}
