package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
)

const createJobRunsTable = `
	CREATE TABLE IF NOT EXISTS analytics_job_runs (
		id          VARCHAR(32) PRIMARY KEY,
		name        VARCHAR(64) NOT NULL,
		duration_ms BIGINT      NOT NULL,
		ran_at      TIMESTAMPTZ NOT NULL
	)
`

const createJobRunsIndex = `CREATE INDEX IF NOT EXISTS analytics_job_runs_ran_at_idx ON analytics_job_runs (ran_at DESC)`

func tableExists(ctx context.Context, tx *sql.Tx, table string) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_name = $1
		)
	`, table).Scan(&exists)
	return exists, err
}

func migrateJobRuns(ctx context.Context, tx *sql.Tx) error {
	exists, err := tableExists(ctx, tx, "analytics_job_runs")
	if err != nil {
		return err
	}
	if exists {
		logrus.Info("Tabela analytics_job_runs já existe")
	}

	if _, err := tx.ExecContext(ctx, createJobRunsTable); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, createJobRunsIndex); err != nil {
		return err
	}

	logrus.Info("Tabela analytics_job_runs pronta")
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return migrateJobRuns(ctx, tx)
	}); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}

	logrus.Infof("Migração concluída em %s", time.Since(startTime))
}
