// Package observability acompanha requisições, uso do cache e rotinas internas, e exporta os
// mesmos contadores para o Prometheus
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "ticket_analytics"

// Metrics agrupa os coletores Prometheus do serviço
type Metrics struct {
	// RequestsTotal conta requisições por rota e resultado do cache (hit, miss)
	RequestsTotal *prometheus.CounterVec

	// RequestDuration mede a latência das rotas de analytics
	RequestDuration *prometheus.HistogramVec

	// ErrorsTotal conta erros de validação e de cálculo
	ErrorsTotal prometheus.Counter

	// JobDuration mede a duração das rotinas internas por nome
	JobDuration *prometheus.HistogramVec
}

// NewMetrics registra os coletores no registry informado. Um registry nil usa o padrão global.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total de requisições de analytics por rota e resultado do cache",
		}, []string{"route", "cache"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Latência das requisições de analytics",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route"}),
		ErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "errors_total",
			Help:      "Total de erros nas rotas de analytics",
		}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "job_duration_seconds",
			Help:      "Duração das rotinas internas",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"job"}),
	}
}
