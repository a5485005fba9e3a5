// Package reporting compõe filtros e redutores em cada relatório exposto pela API
package reporting

import (
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/dataset"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/filtering"
)

type TimeseriesReport struct {
	Metric string               `json:"metric"`
	Group  string               `json:"group,omitempty"`
	Series []domain.SeriesPoint `json:"series"`
}

type BreakdownReport struct {
	Dimension string              `json:"dimension"`
	Items     []domain.LabelValue `json:"items"`
}

type HeatmapReport struct {
	Cells    []domain.HeatCell    `json:"cells"`
	Hotspots []domain.Hotspot     `json:"hotspots"`
	Chronic  []domain.ChronicZone `json:"chronic"`
}

type PointsReport struct {
	Points []domain.GeoPoint `json:"points"`
}

type TopReport struct {
	Subject string              `json:"subject"`
	Items   []domain.LabelValue `json:"items"`
}

type CohortsReport struct {
	Cohorts []domain.Cohort `json:"cohorts"`
}

type TemplatesReport struct {
	Templates []domain.TemplateStat `json:"templates"`
}

type ReportService interface {
	Summary(f domain.Filters) domain.Summary
	Timeseries(f domain.Filters) TimeseriesReport
	Breakdown(f domain.Filters) BreakdownReport
	Heatmap(f domain.Filters) HeatmapReport
	Points(f domain.Filters) PointsReport
	Top(f domain.Filters) TopReport
	Operations(f domain.Filters) domain.Operations
	Cohorts(f domain.Filters) CohortsReport
	Templates(f domain.Filters) TemplatesReport
	FiltersCatalog(f domain.Filters) domain.FiltersCatalog
}

type Config struct {
	PointsLimit int
	Location    *time.Location // fuso das horas de pico
	Now         func() time.Time
}

type reportService struct {
	store  *dataset.Store
	config Config
}

func NewReportService(store *dataset.Store, cfg Config) ReportService {
	if cfg.PointsLimit <= 0 {
		cfg.PointsLimit = aggregating.DefaultPoints
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &reportService{
		store:  store,
		config: cfg,
	}
}

func (s *reportService) tickets(f domain.Filters) (*dataset.Dataset, []domain.Ticket) {
	ds := s.store.Dataset()
	return ds, filtering.Tickets(ds, f)
}

func (s *reportService) Summary(f domain.Filters) domain.Summary {
	ds, tickets := s.tickets(f)
	interactions := filtering.Interactions(ds, tickets)
	orders := filtering.Orders(ds, f, tickets)
	surveys := filtering.Surveys(ds, f, tickets)

	return domain.Summary{
		GeneratedAt: ds.GeneratedAt,
		TenantID:    f.TenantID,
		Filters: domain.SummaryFilters{
			From:      f.From,
			To:        f.To,
			Canal:     f.Canal,
			Categoria: f.Categoria,
			Estado:    f.Estado,
			Agente:    f.Agente,
			Zona:      f.Zona,
		},
		Totals:     aggregating.Totals(tickets),
		SLA:        aggregating.SLA(tickets),
		Efficiency: aggregating.Efficiency(tickets),
		Volume:     aggregating.Volume(tickets),
		Quality:    aggregating.Quality(surveys, tickets),
		Pyme:       aggregating.Commerce(orders, tickets, interactions, s.config.Location),
	}
}

func (s *reportService) Timeseries(f domain.Filters) TimeseriesReport {
	_, tickets := s.tickets(f)
	return TimeseriesReport{
		Metric: f.Metric,
		Group:  f.Group,
		Series: aggregating.Timeseries(tickets, f.Metric, f.Group),
	}
}

func (s *reportService) Breakdown(f domain.Filters) BreakdownReport {
	_, tickets := s.tickets(f)
	return BreakdownReport{
		Dimension: f.Dimension,
		Items:     aggregating.Breakdown(tickets, f.Dimension),
	}
}

func (s *reportService) Heatmap(f domain.Filters) HeatmapReport {
	_, tickets := s.tickets(f)
	return HeatmapReport{
		Cells:    aggregating.Heatmap(tickets),
		Hotspots: aggregating.Hotspots(tickets),
		Chronic:  aggregating.Chronic(tickets),
	}
}

func (s *reportService) Points(f domain.Filters) PointsReport {
	_, tickets := s.tickets(f)
	return PointsReport{Points: aggregating.Points(tickets, s.config.PointsLimit)}
}

func (s *reportService) Top(f domain.Filters) TopReport {
	ds, tickets := s.tickets(f)
	return TopReport{
		Subject: f.Subject,
		Items:   aggregating.Top(tickets, f.Subject, ds.OrdersByTenant),
	}
}

func (s *reportService) Operations(f domain.Filters) domain.Operations {
	ds, tickets := s.tickets(f)
	surveys := filtering.Surveys(ds, f, tickets)
	return aggregating.Operations(tickets, surveys, s.config.Now())
}

// Cohorts considera todos os pedidos dos tickets filtrados, sem checar a data do pedido
func (s *reportService) Cohorts(f domain.Filters) CohortsReport {
	ds, tickets := s.tickets(f)
	return CohortsReport{Cohorts: aggregating.Cohorts(filtering.OrdersForTickets(ds, f, tickets))}
}

func (s *reportService) Templates(f domain.Filters) TemplatesReport {
	ds, tickets := s.tickets(f)
	return TemplatesReport{Templates: aggregating.Templates(filtering.Interactions(ds, tickets))}
}

// FiltersCatalog lista os valores de todo o tenant, ignorando os demais filtros
func (s *reportService) FiltersCatalog(f domain.Filters) domain.FiltersCatalog {
	return aggregating.FiltersCatalog(s.store.Dataset().TicketsByTenant(f.TenantID))
}
