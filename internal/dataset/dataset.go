package dataset

import (
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

// Dataset é somente leitura depois de gerado. Deve ser criado por Generate ou New para que os
// índices existam.
type Dataset struct {
	GeneratedAt  time.Time            `json:"generatedAt"`
	Tenants      []domain.Tenant      `json:"tenants"`
	Agents       []domain.Agent       `json:"agents"`
	Tickets      []domain.Ticket      `json:"tickets"`
	Interactions []domain.Interaction `json:"interactions"`
	Orders       []domain.Order       `json:"orders"`
	Surveys      []domain.Survey      `json:"surveys"`
	GeoCells     []domain.GeoCell     `json:"geoCells"`

	ticketsByTenant      map[string][]int
	ordersByTenant       map[string][]int
	interactionsByTicket map[string][]int
	ordersByTicket       map[string][]int
	surveysByTicket      map[string][]int
	ticketIndex          map[string]int
}

func (ds *Dataset) buildIndexes() {
	ds.ticketsByTenant = make(map[string][]int)
	ds.ordersByTenant = make(map[string][]int)
	ds.interactionsByTicket = make(map[string][]int)
	ds.ordersByTicket = make(map[string][]int)
	ds.surveysByTicket = make(map[string][]int)
	ds.ticketIndex = make(map[string]int, len(ds.Tickets))

	for i := range ds.Tickets {
		ds.ticketsByTenant[ds.Tickets[i].TenantID] = append(ds.ticketsByTenant[ds.Tickets[i].TenantID], i)
		ds.ticketIndex[ds.Tickets[i].ID] = i
	}
	for i := range ds.Interactions {
		ds.interactionsByTicket[ds.Interactions[i].TicketID] = append(ds.interactionsByTicket[ds.Interactions[i].TicketID], i)
	}
	for i := range ds.Orders {
		ds.ordersByTenant[ds.Orders[i].TenantID] = append(ds.ordersByTenant[ds.Orders[i].TenantID], i)
		ds.ordersByTicket[ds.Orders[i].TicketID] = append(ds.ordersByTicket[ds.Orders[i].TicketID], i)
	}
	for i := range ds.Surveys {
		ds.surveysByTicket[ds.Surveys[i].TicketID] = append(ds.surveysByTicket[ds.Surveys[i].TicketID], i)
	}
}

// New monta um dataset a partir de entidades já existentes, usado em testes e por fontes externas
func New(generatedAt time.Time, tickets []domain.Ticket, interactions []domain.Interaction, orders []domain.Order, surveys []domain.Survey) *Dataset {
	ds := &Dataset{
		GeneratedAt:  generatedAt,
		Tickets:      tickets,
		Interactions: interactions,
		Orders:       orders,
		Surveys:      surveys,
	}
	ds.buildIndexes()
	return ds
}

// TicketsByTenant devolve os tickets do tenant na ordem de geração
func (ds *Dataset) TicketsByTenant(tenantID string) []domain.Ticket {
	return pickTickets(ds.Tickets, ds.ticketsByTenant[tenantID])
}

func (ds *Dataset) Ticket(id string) (domain.Ticket, bool) {
	idx, ok := ds.ticketIndex[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return ds.Tickets[idx], true
}

// OrdersByTenant devolve todos os pedidos do tenant, sem considerar período
func (ds *Dataset) OrdersByTenant(tenantID string) []domain.Order {
	return pickOrders(ds.Orders, ds.ordersByTenant[tenantID])
}

func (ds *Dataset) InteractionsByTicket(ticketID string) []domain.Interaction {
	positions := ds.interactionsByTicket[ticketID]
	result := make([]domain.Interaction, 0, len(positions))
	for _, idx := range positions {
		result = append(result, ds.Interactions[idx])
	}
	return result
}

func (ds *Dataset) OrdersByTicket(ticketID string) []domain.Order {
	return pickOrders(ds.Orders, ds.ordersByTicket[ticketID])
}

func (ds *Dataset) SurveysByTicket(ticketID string) []domain.Survey {
	positions := ds.surveysByTicket[ticketID]
	result := make([]domain.Survey, 0, len(positions))
	for _, idx := range positions {
		result = append(result, ds.Surveys[idx])
	}
	return result
}

func pickTickets(source []domain.Ticket, positions []int) []domain.Ticket {
	result := make([]domain.Ticket, 0, len(positions))
	for _, idx := range positions {
		result = append(result, source[idx])
	}
	return result
}

func pickOrders(source []domain.Order, positions []int) []domain.Order {
	result := make([]domain.Order, 0, len(positions))
	for _, idx := range positions {
		result = append(result, source[idx])
	}
	return result
}
