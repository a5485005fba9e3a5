package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

func TestBuildInsertJobRun(t *testing.T) {
	ranAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	run := domain.JobRun{ID: "abc123", Name: "cache-sweep", DurationMs: 12, RanAt: ranAt}

	sqlQuery, args, err := buildInsertJobRun(run).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO analytics_job_runs (id,name,duration_ms,ran_at) VALUES ($1,$2,$3,$4)", sqlQuery)
	assert.Equal(t, []interface{}{"abc123", "cache-sweep", int64(12), ranAt}, args)
}

func TestBuildListJobRuns(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected string
	}{
		{
			name:     "limite informado",
			limit:    5,
			expected: "SELECT id, name, duration_ms, ran_at FROM analytics_job_runs ORDER BY ran_at DESC LIMIT 5",
		},
		{
			name:     "limite zero usa o padrão",
			limit:    0,
			expected: "SELECT id, name, duration_ms, ran_at FROM analytics_job_runs ORDER BY ran_at DESC LIMIT 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlQuery, args, err := buildListJobRuns(tt.limit).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, sqlQuery)
			assert.Empty(t, args)
		})
	}
}
