package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/cache"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
	"github.com/vfg2006/ticket-analytics-api/internal/dataset/mocks"
	"go.uber.org/mock/gomock"
)

type purgerFunc func() int

func (f purgerFunc) Purge() int { return f() }

func newConfig(enabled bool, cron string) *config.Config {
	return &config.Config{Cache: config.Cache{SweepEnabled: enabled, SweepCron: cron}}
}

func TestCacheSweepService_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	responses := cache.New(time.Second, cache.WithClock(func() time.Time { return now }))
	responses.Set("admin:/v1/analytics/summary?tenant_id=t1", 1)
	responses.SetWithTTL("admin:/v1/analytics/top?tenant_id=t1", 2, time.Hour)

	tracker := mocks.NewMockJobTracker(ctrl)
	tracker.EXPECT().TrackJobRun(CacheSweepJobName, gomock.Any()).Times(1)

	service := NewCacheSweepService(responses, tracker, newConfig(false, "* * * * *"))

	now = now.Add(2 * time.Second)
	removed := service.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, responses.Stats().Size)

	status := service.GetStatus()
	assert.Equal(t, 1, status["last_removed"])
	assert.Equal(t, false, status["running"])
}

func TestCacheSweepService_SemTracker(t *testing.T) {
	service := NewCacheSweepService(purgerFunc(func() int { return 3 }), nil, newConfig(false, ""))

	assert.Equal(t, 3, service.Sweep())
}

func TestCacheSweepService_IgnoraLimpezaConcorrente(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0

	service := NewCacheSweepService(purgerFunc(func() int {
		calls++
		close(started)
		<-release
		return 0
	}), nil, newConfig(false, ""))

	done := make(chan int)
	go func() { done <- service.Sweep() }()
	<-started

	assert.Equal(t, -1, service.Sweep())
	assert.False(t, service.TriggerManualSync())

	close(release)
	assert.Equal(t, 0, <-done)
	assert.Equal(t, 1, calls)
}

func TestCacheSweepService_Start(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
	}{
		{name: "desabilitado não agenda", cfg: newConfig(false, "expressão inválida")},
		{name: "expressão válida", cfg: newConfig(true, "*/15 * * * *")},
		{name: "expressão inválida", cfg: newConfig(true, "nunca"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewCacheSweepService(purgerFunc(func() int { return 0 }), nil, tt.cfg)
			err := service.Start(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
