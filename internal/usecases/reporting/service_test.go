package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/dataset"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/filtering"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newService(t *testing.T) (ReportService, *dataset.Dataset) {
	t.Helper()
	ds := dataset.NewGenerator(nil).Generate(dataset.Options{Days: 20, Now: now})
	service := NewReportService(dataset.NewStaticStore(ds), Config{
		PointsLimit: 50,
		Now:         func() time.Time { return now },
	})
	return service, ds
}

func filtersFor(tenantID string) domain.Filters {
	return domain.Filters{
		TenantID:  tenantID,
		From:      now.Add(-10 * 24 * time.Hour),
		To:        now,
		Metric:    filtering.DefaultMetric,
		Dimension: filtering.DefaultDimension,
		Subject:   filtering.DefaultSubject,
	}
}

func TestReportService_Summary(t *testing.T) {
	service, ds := newService(t)
	f := filtersFor("tenant-pyme-1")

	summary := service.Summary(f)
	tickets := filtering.Tickets(ds, f)
	orders := filtering.Orders(ds, f, tickets)

	require.NotEmpty(t, tickets)
	assert.Equal(t, "tenant-pyme-1", summary.TenantID)
	assert.Equal(t, now, summary.GeneratedAt)
	assert.Equal(t, len(tickets), summary.Totals.Tickets)
	assert.Equal(t, len(orders), summary.Pyme.TotalOrders)

	perDay := 0.0
	for _, point := range summary.Volume.PerDay {
		perDay += point.Value
	}
	assert.Equal(t, float64(len(tickets)), perDay)
	assert.Greater(t, summary.Pyme.Conversion, 0.0)
	assert.LessOrEqual(t, summary.SLA.Ack.P50, summary.SLA.Ack.P95)
}

func TestReportService_MunicipioSemPedidos(t *testing.T) {
	service, _ := newService(t)

	summary := service.Summary(filtersFor("tenant-municipio-1"))
	assert.Equal(t, 0, summary.Pyme.TotalOrders)
	assert.Equal(t, 0.0, summary.Pyme.Conversion)
	assert.Empty(t, service.Cohorts(filtersFor("tenant-municipio-1")).Cohorts)
}

func TestReportService_Relatorios(t *testing.T) {
	service, ds := newService(t)
	f := filtersFor("tenant-pyme-2")

	t.Run("points respeita o limite configurado", func(t *testing.T) {
		assert.Len(t, service.Points(f).Points, 50)
	})

	t.Run("top de produtos usa todos os pedidos do tenant", func(t *testing.T) {
		f := f
		f.Subject = "productos"
		f.From = now.Add(-time.Hour)

		total := 0
		for _, order := range ds.OrdersByTenant("tenant-pyme-2") {
			for _, item := range order.Items {
				total += item.Qty
			}
		}

		report := service.Top(f)
		assert.Equal(t, "productos", report.Subject)
		require.NotEmpty(t, report.Items)
		assert.LessOrEqual(t, len(report.Items), 20)

		// o catálogo tem 40 SKUs, então os 20 primeiros cobrem parte do volume
		sum := 0
		for _, item := range report.Items {
			sum += item.Value
		}
		assert.LessOrEqual(t, sum, total)
		assert.Greater(t, sum, total/4)
	})

	t.Run("timeseries ordenada por data", func(t *testing.T) {
		f := f
		f.Group = "estado"
		report := service.Timeseries(f)
		require.NotEmpty(t, report.Series)
		for i := 1; i < len(report.Series); i++ {
			assert.Less(t, report.Series[i-1].Date, report.Series[i].Date)
		}
		assert.NotEmpty(t, report.Series[0].Breakdown)
	})

	t.Run("heatmap e breakdown", func(t *testing.T) {
		heatmap := service.Heatmap(f)
		assert.NotEmpty(t, heatmap.Cells)
		assert.LessOrEqual(t, len(heatmap.Hotspots), 10)

		breakdown := service.Breakdown(f)
		assert.Equal(t, "categoria", breakdown.Dimension)
		assert.LessOrEqual(t, len(breakdown.Items), 4)
	})

	t.Run("operations conta a fila em aberto", func(t *testing.T) {
		ops := service.Operations(f)
		buckets := ops.AgingBuckets
		assert.Equal(t, ops.Abiertos, buckets.UpTo4h+buckets.UpTo24h+buckets.UpTo3d+buckets.UpTo7d+buckets.Over7d)
		assert.NotEmpty(t, ops.Agents)
	})

	t.Run("catálogo ignora o período", func(t *testing.T) {
		f := f
		f.From = now.Add(24 * time.Hour)
		catalog := service.FiltersCatalog(f)
		assert.ElementsMatch(t, []string{"soporte", "ventas", "logistica", "posventa"}, catalog.Categorias)
		assert.Len(t, catalog.Agentes, 10)
	})

	t.Run("templates", func(t *testing.T) {
		templates := service.Templates(f).Templates
		require.NotEmpty(t, templates)
		for _, template := range templates {
			assert.Greater(t, template.Envios, 0)
		}
	})
}
