package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/ticket-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/ticket-analytics-api/pkg/middleware"
)

const AnalyticsPrefix = "/v1/analytics"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Analytics(deps AnalyticsDeps) []router.Route {
	return []router.Route{
		{
			Path:        AnalyticsPrefix + "/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/timeseries",
			Method:      http.MethodGet,
			Handler:     GetTimeseries(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/breakdown",
			Method:      http.MethodGet,
			Handler:     GetBreakdown(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/geo/heatmap",
			Method:      http.MethodGet,
			Handler:     GetHeatmap(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/geo/points",
			Method:      http.MethodGet,
			Handler:     GetPoints(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOrAdmin()},
		},
		{
			Path:        AnalyticsPrefix + "/top",
			Method:      http.MethodGet,
			Handler:     GetTop(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/operations",
			Method:      http.MethodGet,
			Handler:     GetOperations(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOrAdmin()},
		},
		{
			Path:        AnalyticsPrefix + "/cohorts",
			Method:      http.MethodGet,
			Handler:     GetCohorts(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        AnalyticsPrefix + "/whatsapp/templates",
			Method:      http.MethodGet,
			Handler:     GetTemplates(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOrAdmin()},
		},
		{
			Path:        AnalyticsPrefix + "/filters",
			Method:      http.MethodGet,
			Handler:     GetFiltersCatalog(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    AnalyticsPrefix + "/internal/health",
			Method:  http.MethodGet,
			Handler: GetHealth(deps),
		},
		{
			Path:        AnalyticsPrefix + "/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidateCache(deps),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
