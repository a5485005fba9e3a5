package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ticket-analytics-api/infrastructure/repository"
	"github.com/vfg2006/ticket-analytics-api/internal/api"
	"github.com/vfg2006/ticket-analytics-api/internal/api/handler"
	"github.com/vfg2006/ticket-analytics-api/internal/cache"
	"github.com/vfg2006/ticket-analytics-api/internal/config"
	"github.com/vfg2006/ticket-analytics-api/internal/dataset"
	"github.com/vfg2006/ticket-analytics-api/internal/observability"
	"github.com/vfg2006/ticket-analytics-api/internal/scheduler"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authorizing"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ticket-analytics-api/pkg/log"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	trackerOpts := []observability.Option{
		observability.WithMetrics(observability.NewMetrics(registry)),
	}
	if cfg.JobRuns.PersistEnabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		trackerOpts = append(trackerOpts, observability.WithJobRunStore(repository.NewJobRunRepository(pgConn)))
	}
	tracker := observability.NewTracker(trackerOpts...)

	tenants, err := cfg.Analytics.ParseTenants()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler ANALYTICS_TENANTS")
	}

	store := dataset.NewStore(dataset.NewGenerator(tracker), dataset.Options{
		Tenants: tenants,
		Days:    cfg.Analytics.Days,
		Seed:    cfg.Analytics.Seed,
	})

	// gera o dataset antes de aceitar requisições
	ds := store.Dataset()
	logrus.WithFields(logrus.Fields{
		"tenants": len(ds.Tenants),
		"tickets": len(ds.Tickets),
		"orders":  len(ds.Orders),
	}).Info("Dataset de analytics gerado")

	responses := cache.New(cfg.Cache.TTL)

	reports := reporting.NewReportService(store, reporting.Config{
		PointsLimit: cfg.Analytics.PointsLimit,
		Location:    cfg.Analytics.Location(),
	})

	cacheSweepService := scheduler.NewCacheSweepService(responses, tracker, cfg)
	if err := cacheSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza do cache")
	} else {
		logrus.Info("Agendador de limpeza do cache iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Analytics: handler.AnalyticsDeps{
			Reports: reports,
			Cache:   responses,
			Tracker: tracker,
		},
		CronJobs: handler.CronJobServices{
			CacheSweepService: cacheSweepService,
		},
		Resolver: authorizing.NewRoleResolver(cfg.Analytics.UnknownRoleFallback),
		Gatherer: registry,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// changeToSourceDir faz o .env ao lado do binário ser encontrado em execuções locais
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	if err := os.Chdir(dir); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório do main")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
