package filtering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/dataset"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func fixtureDataset() *dataset.Dataset {
	tickets := []domain.Ticket{
		{
			ID: "T-a-1", TenantID: "a", Canal: "web", Categoria: "limpieza", Subcategoria: "limpieza-sub-1",
			Estado: domain.EstadoAbierto, CreadoEn: base, AsignadoA: "a-agent-1",
			Ubicacion: domain.Location{Lat: -34.6, Lon: -58.4, Barrio: "zona-sur", Zona: "zona-norte"},
			Etiquetas: []string{"prioritario", "manual"},
		},
		{
			ID: "T-a-2", TenantID: "a", Canal: "whatsapp", Categoria: "calles", Subcategoria: "calles-sub-2",
			Estado: domain.EstadoResuelto, CreadoEn: base.Add(24 * time.Hour), AsignadoA: "a-agent-2",
			Ubicacion: domain.Location{Lat: -34.7, Lon: -58.5, Barrio: "zona-oeste"},
			Etiquetas: []string{"prioritario"},
		},
		{
			ID: "T-a-3", TenantID: "a", Canal: "web", Categoria: "limpieza", Subcategoria: "limpieza-sub-3",
			Estado: domain.EstadoBacklog, CreadoEn: base.Add(-20 * 24 * time.Hour), AsignadoA: "a-agent-1",
			Ubicacion: domain.Location{Lat: -34.5, Lon: -58.3, Zona: "zona-centro"},
		},
		{
			ID: "T-b-4", TenantID: "b", Canal: "web", Categoria: "ventas", Estado: domain.EstadoAbierto,
			CreadoEn: base, Ubicacion: domain.Location{Zona: "zona-norte"},
		},
	}

	interactions := []domain.Interaction{
		{ID: 1, TicketID: "T-a-1", TenantID: "a"},
		{ID: 2, TicketID: "T-a-1", TenantID: "a"},
		{ID: 3, TicketID: "T-a-2", TenantID: "a"},
		{ID: 4, TicketID: "T-b-4", TenantID: "b"},
	}

	orders := []domain.Order{
		{ID: "O-a-1", TenantID: "a", TicketID: "T-a-1", CreadoEn: base},
		{ID: "O-a-2", TenantID: "a", TicketID: "T-a-2", CreadoEn: base.Add(60 * 24 * time.Hour)},
	}

	surveys := []domain.Survey{
		{ID: "S-1", TenantID: "a", TicketID: "T-a-1", Timestamp: base.Add(time.Hour)},
		{ID: "S-2", TenantID: "a", TicketID: "T-a-2", Timestamp: base.Add(90 * 24 * time.Hour)},
	}

	return dataset.New(base, tickets, interactions, orders, surveys)
}

func ticketIDs(tickets []domain.Ticket) []string {
	ids := make([]string, 0, len(tickets))
	for _, ticket := range tickets {
		ids = append(ids, ticket.ID)
	}
	return ids
}

func window() domain.Filters {
	return domain.Filters{
		TenantID: "a",
		From:     base.Add(-7 * 24 * time.Hour),
		To:       base.Add(7 * 24 * time.Hour),
	}
}

func TestTickets(t *testing.T) {
	ds := fixtureDataset()

	tests := []struct {
		name     string
		filters  func() domain.Filters
		expected []string
	}{
		{
			name:     "somente tenant e período",
			filters:  window,
			expected: []string{"T-a-1", "T-a-2"},
		},
		{
			name: "sem limites de data devolve todo o tenant",
			filters: func() domain.Filters {
				return domain.Filters{TenantID: "a"}
			},
			expected: []string{"T-a-1", "T-a-2", "T-a-3"},
		},
		{
			name: "canal por pertinência",
			filters: func() domain.Filters {
				f := window()
				f.Canal = []string{"whatsapp", "email"}
				return f
			},
			expected: []string{"T-a-2"},
		},
		{
			name: "etiquetas exige todas as tags",
			filters: func() domain.Filters {
				f := window()
				f.Etiquetas = []string{"prioritario", "manual"}
				return f
			},
			expected: []string{"T-a-1"},
		},
		{
			name: "zona usa barrio quando a zona está vazia",
			filters: func() domain.Filters {
				f := window()
				f.Zona = []string{"zona-oeste"}
				return f
			},
			expected: []string{"T-a-2"},
		},
		{
			name: "zona tem prioridade sobre barrio",
			filters: func() domain.Filters {
				f := window()
				f.Zona = []string{"zona-sur"}
				return f
			},
			expected: []string{},
		},
		{
			name: "bbox inclui as bordas",
			filters: func() domain.Filters {
				f := window()
				f.BBox = &domain.BBox{MinLng: -58.45, MinLat: -34.6, MaxLng: -58.4, MaxLat: -34.55}
				return f
			},
			expected: []string{"T-a-1"},
		},
		{
			name: "busca sem diferenciar maiúsculas",
			filters: func() domain.Filters {
				f := window()
				f.Search = "CALLES-SUB"
				return f
			},
			expected: []string{"T-a-2"},
		},
		{
			name: "agente",
			filters: func() domain.Filters {
				f := domain.Filters{TenantID: "a"}
				f.Agente = []string{"a-agent-1"}
				return f
			},
			expected: []string{"T-a-1", "T-a-3"},
		},
		{
			name: "tenant inexistente",
			filters: func() domain.Filters {
				return domain.Filters{TenantID: "z"}
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ticketIDs(Tickets(ds, tt.filters())))
		})
	}
}

func TestTickets_SemFiltrosDevolveTenantCompleto(t *testing.T) {
	ds := dataset.NewGenerator(nil).Generate(dataset.Options{Days: 3, Now: base})

	tickets := Tickets(ds, domain.Filters{TenantID: "tenant-pyme-1"})
	assert.Equal(t, ds.TicketsByTenant("tenant-pyme-1"), tickets)
}

func TestJoins(t *testing.T) {
	ds := fixtureDataset()
	f := window()
	tickets := Tickets(ds, f)
	require.Len(t, tickets, 2)

	interactions := Interactions(ds, tickets)
	assert.Len(t, interactions, 3)

	orders := Orders(ds, f, tickets)
	require.Len(t, orders, 1)
	assert.Equal(t, "O-a-1", orders[0].ID)

	assert.Len(t, OrdersForTickets(ds, f, tickets), 2)

	surveys := Surveys(ds, f, tickets)
	require.Len(t, surveys, 1)
	assert.Equal(t, "S-1", surveys[0].ID)

	empty := Orders(ds, f, nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
