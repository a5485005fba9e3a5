package aggregating

import (
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

const (
	SubjectZonas     = "zonas"
	SubjectCalles    = "calles"
	SubjectProductos = "productos"

	topTicketsLimit = 10
)

// OrderBook devolve todos os pedidos de um tenant, sem filtro de período
type OrderBook func(tenantID string) []domain.Order

// Top ranqueia zonas, ruas ou produtos. Produtos usam todos os pedidos do tenant do primeiro
// ticket do conjunto, independente do período filtrado.
func Top(tickets []domain.Ticket, subject string, book OrderBook) []domain.LabelValue {
	switch subject {
	case SubjectZonas:
		return firstN(Breakdown(tickets, "zona"), topTicketsLimit)
	case SubjectCalles:
		streets := newCounter()
		for i := range tickets {
			street := tickets[i].Ubicacion.Barrio
			if street == "" {
				street = noBarrio
			}
			streets.add(street, 1)
		}
		return streets.sortedDesc(topTicketsLimit)
	case SubjectProductos:
		products := newCounter()
		if len(tickets) > 0 && book != nil {
			for _, order := range book(tickets[0].TenantID) {
				for _, item := range order.Items {
					products.add(item.SKU, item.Qty)
				}
			}
		}
		return products.sortedDesc(topProductsLimit)
	}
	return []domain.LabelValue{}
}

func firstN(items []domain.LabelValue, n int) []domain.LabelValue {
	if len(items) > n {
		return items[:n]
	}
	return items
}
