package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/cache"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/observability"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authorizing"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/ticket-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const CacheHeader = "X-Cache"

// AnalyticsDeps reúne o que as rotas de analytics precisam para responder
type AnalyticsDeps struct {
	Reports reporting.ReportService
	Cache   *cache.ResponseCache
	Tracker *observability.Tracker
	Now     func() time.Time
}

type resolver func(f domain.Filters) any

// analyticsHandler valida os filtros, consulta o cache e só calcula o relatório em caso de miss.
// O papel já foi verificado pelo middleware da rota; aqui ele define a chave do cache e a
// redação da resposta.
func analyticsHandler(deps AnalyticsDeps, route string, resolve resolver) http.HandlerFunc {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		role := middleware.RoleFromContext(r.Context())
		query := r.URL.Query()

		filters, err := filtering.ParseFilters(query, now())
		if err != nil {
			deps.Tracker.TrackError()
			writeFilterError(w, err)
			return
		}

		key := cache.BuildKey(role, r.URL.Path, query)
		payload, hit, err := deps.Cache.GetOrCompute(key, func() (any, error) {
			return authorizing.Sanitize(role, resolve(filters))
		})
		if err != nil {
			deps.Tracker.TrackError()
			logrus.WithError(err).WithFields(logrus.Fields{
				"route":     route,
				"tenant_id": filters.TenantID,
			}).Error("Erro ao calcular relatório de analytics")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno en el módulo de analítica", nil)
			return
		}

		deps.Tracker.TrackRequest(route, time.Since(start), hit)

		if hit {
			w.Header().Set(CacheHeader, "HIT")
		} else {
			w.Header().Set(CacheHeader, "MISS")
		}
		writeJSON(w, http.StatusOK, payload)
	}
}

func writeFilterError(w http.ResponseWriter, err error) {
	var validationErr *filtering.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), map[string]string{
			"field": validationErr.Field,
		})
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func GetSummary(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "summary", func(f domain.Filters) any {
		return deps.Reports.Summary(f)
	})
}

func GetTimeseries(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "timeseries", func(f domain.Filters) any {
		return deps.Reports.Timeseries(f)
	})
}

func GetBreakdown(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "breakdown", func(f domain.Filters) any {
		return deps.Reports.Breakdown(f)
	})
}

func GetHeatmap(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "geo_heatmap", func(f domain.Filters) any {
		return deps.Reports.Heatmap(f)
	})
}

func GetPoints(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "geo_points", func(f domain.Filters) any {
		return deps.Reports.Points(f)
	})
}

func GetTop(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "top", func(f domain.Filters) any {
		return deps.Reports.Top(f)
	})
}

func GetOperations(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "operations", func(f domain.Filters) any {
		return deps.Reports.Operations(f)
	})
}

func GetCohorts(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "cohorts", func(f domain.Filters) any {
		return deps.Reports.Cohorts(f)
	})
}

func GetTemplates(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "whatsapp_templates", func(f domain.Filters) any {
		return deps.Reports.Templates(f)
	})
}

func GetFiltersCatalog(deps AnalyticsDeps) http.HandlerFunc {
	return analyticsHandler(deps, "filters", func(f domain.Filters) any {
		return deps.Reports.FiltersCatalog(f)
	})
}

type healthResponse struct {
	Status string `json:"status"`
	observability.HealthSnapshot
}

// GetHealth devolve o retrato do tracker e do cache
func GetHealth(deps AnalyticsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:         "ok",
			HealthSnapshot: deps.Tracker.Snapshot(deps.Cache.Stats()),
		})
	}
}

// InvalidateCache remove as entradas com o prefixo informado; sem prefixo limpa tudo
func InvalidateCache(deps AnalyticsDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		removed := deps.Cache.Invalidate(prefix)

		logrus.WithFields(logrus.Fields{
			"prefix":  prefix,
			"removed": removed,
		}).Info("Cache de analytics invalidado")

		writeJSON(w, http.StatusOK, map[string]any{
			"prefix":  prefix,
			"removed": removed,
		})
	}
}
