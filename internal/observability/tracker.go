package observability

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/cache"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

//go:generate mockgen -source=tracker.go -destination=mocks/job_run_store.go -package=mocks

const (
	maxLatencies = 1000
	maxJobs      = 20
)

// JobRunStore persiste o histórico das rotinas internas
type JobRunStore interface {
	Save(ctx context.Context, run domain.JobRun) error
}

type CacheSnapshot struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	Size    int     `json:"size"`
	TTLMs   int64   `json:"ttlMs"`
	HitRate float64 `json:"hitRate"`
}

type LatencySnapshot struct {
	P50 int64 `json:"p50"`
	P90 int64 `json:"p90"`
	P95 int64 `json:"p95"`
}

type HealthSnapshot struct {
	Requests int64           `json:"requests"`
	Cache    CacheSnapshot   `json:"cache"`
	Errors   int64           `json:"errors"`
	Latency  LatencySnapshot `json:"latency"`
	LastJobs []domain.JobRun `json:"lastJobs"`
}

// Tracker guarda as contagens em memória para o health check. As latências ficam em um buffer
// circular das últimas 1000 requisições e os jobs nas últimas 20 execuções.
type Tracker struct {
	mu          sync.Mutex
	requests    int64
	cacheHits   int64
	cacheMisses int64
	errors      int64
	latencies   []float64
	next        int
	lastJobs    []domain.JobRun

	metrics *Metrics
	store   JobRunStore
	now     func() time.Time
}

type Option func(*Tracker)

func WithMetrics(metrics *Metrics) Option {
	return func(t *Tracker) {
		t.metrics = metrics
	}
}

// WithJobRunStore grava cada execução de job no store informado
func WithJobRunStore(store JobRunStore) Option {
	return func(t *Tracker) {
		t.store = store
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		latencies: make([]float64, 0, maxLatencies),
		lastJobs:  make([]domain.JobRun, 0, maxJobs),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tracker) TrackRequest(route string, duration time.Duration, cacheHit bool) {
	t.mu.Lock()
	t.requests++
	if cacheHit {
		t.cacheHits++
	} else {
		t.cacheMisses++
	}
	t.addLatency(float64(duration.Milliseconds()))
	t.mu.Unlock()

	if t.metrics != nil {
		result := "miss"
		if cacheHit {
			result = "hit"
		}
		t.metrics.RequestsTotal.WithLabelValues(route, result).Inc()
		t.metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
	}
}

func (t *Tracker) addLatency(ms float64) {
	if len(t.latencies) < maxLatencies {
		t.latencies = append(t.latencies, ms)
		return
	}
	t.latencies[t.next] = ms
	t.next = (t.next + 1) % maxLatencies
}

func (t *Tracker) TrackError() {
	t.mu.Lock()
	t.errors++
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.ErrorsTotal.Inc()
	}
}

// TrackJobRun registra a execução mais recente no início da lista
func (t *Tracker) TrackJobRun(name string, duration time.Duration) {
	run := domain.JobRun{
		Name:       name,
		DurationMs: duration.Milliseconds(),
		RanAt:      t.now().UTC(),
	}

	if t.store != nil {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Warn("Erro ao gerar ID da execução do job")
		}
		run.ID = id
	}

	t.mu.Lock()
	t.lastJobs = append([]domain.JobRun{run}, t.lastJobs...)
	if len(t.lastJobs) > maxJobs {
		t.lastJobs = t.lastJobs[:maxJobs]
	}
	t.mu.Unlock()

	if t.metrics != nil {
		t.metrics.JobDuration.WithLabelValues(name).Observe(duration.Seconds())
	}

	if t.store != nil {
		if err := t.store.Save(context.Background(), run); err != nil {
			logrus.WithError(err).WithField("job", name).Error("Erro ao salvar execução do job")
		}
	}
}

// Snapshot monta o estado atual para o health check interno
func (t *Tracker) Snapshot(stats cache.Stats) HealthSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	jobs := make([]domain.JobRun, len(t.lastJobs))
	copy(jobs, t.lastJobs)

	hitRate := 0.0
	if total := t.cacheHits + t.cacheMisses; total > 0 {
		hitRate = utils.Round(float64(t.cacheHits)/float64(total)*100, 2)
	}

	return HealthSnapshot{
		Requests: t.requests,
		Cache: CacheSnapshot{
			Hits:    t.cacheHits,
			Misses:  t.cacheMisses,
			Size:    stats.Size,
			TTLMs:   stats.TTLMs,
			HitRate: hitRate,
		},
		Errors: t.errors,
		Latency: LatencySnapshot{
			P50: int64(utils.Percentile(t.latencies, 0.5)),
			P90: int64(utils.Percentile(t.latencies, 0.9)),
			P95: int64(utils.Percentile(t.latencies, 0.95)),
		},
		LastJobs: jobs,
	}
}
