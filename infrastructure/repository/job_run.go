// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

const (
	jobRunTable = "analytics_job_runs"

	DefaultJobRunListLimit = 20
)

type JobRunRepository interface {
	Save(ctx context.Context, run domain.JobRun) error
	ListRecent(ctx context.Context, limit int) ([]domain.JobRun, error)
}

type jobRunRepository struct {
	conn postgres.Queryer
}

func NewJobRunRepository(conn postgres.Queryer) JobRunRepository {
	return &jobRunRepository{
		conn: conn,
	}
}

func buildInsertJobRun(run domain.JobRun) squirrel.InsertBuilder {
	return squirrel.
		Insert(jobRunTable).
		Columns("id", "name", "duration_ms", "ran_at").
		Values(run.ID, run.Name, run.DurationMs, run.RanAt).
		PlaceholderFormat(squirrel.Dollar)
}

func buildListJobRuns(limit int) squirrel.SelectBuilder {
	if limit <= 0 {
		limit = DefaultJobRunListLimit
	}

	return squirrel.
		Select("id", "name", "duration_ms", "ran_at").
		From(jobRunTable).
		OrderBy("ran_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *jobRunRepository) Save(ctx context.Context, run domain.JobRun) error {
	sqlQuery, args, err := buildInsertJobRun(run).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução do job %s: %w", run.Name, err)
	}

	return nil
}

func (r *jobRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.JobRun, error) {
	sqlQuery, args, err := buildListJobRuns(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.JobRun, 0)
	for rows.Next() {
		var run domain.JobRun
		if err := rows.Scan(&run.ID, &run.Name, &run.DurationMs, &run.RanAt); err != nil {
			return nil, fmt.Errorf("erro ao ler execução do job: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar execuções dos jobs: %w", err)
	}

	return runs, nil
}
