// Package filtering aplica os filtros da consulta sobre o dataset em memória
package filtering

import (
	"slices"
	"strings"
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/dataset"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

// Tickets devolve os tickets do tenant que atendem a todos os filtros, na ordem do dataset
func Tickets(ds *dataset.Dataset, f domain.Filters) []domain.Ticket {
	tenantTickets := ds.TicketsByTenant(f.TenantID)
	result := make([]domain.Ticket, 0, len(tenantTickets))
	for i := range tenantTickets {
		if Matches(&tenantTickets[i], f) {
			result = append(result, tenantTickets[i])
		}
	}
	return result
}

// Matches avalia um ticket contra os filtros, exceto o tenant
func Matches(ticket *domain.Ticket, f domain.Filters) bool {
	if !inRange(ticket.CreadoEn, f.From, f.To) {
		return false
	}
	if f.BBox != nil && !f.BBox.Contains(ticket.Ubicacion.Lat, ticket.Ubicacion.Lon) {
		return false
	}
	if !matchesAny(f.Canal, ticket.Canal) ||
		!matchesAny(f.Categoria, ticket.Categoria) ||
		!matchesAny(f.Estado, ticket.Estado) ||
		!matchesAny(f.Agente, ticket.AsignadoA) {
		return false
	}
	if len(f.Zona) > 0 {
		zone := ticket.Ubicacion.ZoneOr("")
		if zone == "" || !slices.Contains(f.Zona, zone) {
			return false
		}
	}
	for _, tag := range f.Etiquetas {
		if !slices.Contains(ticket.Etiquetas, tag) {
			return false
		}
	}
	if f.Search != "" && !strings.Contains(searchText(ticket), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Interactions devolve as interações dos tickets já filtrados
func Interactions(ds *dataset.Dataset, tickets []domain.Ticket) []domain.Interaction {
	var result []domain.Interaction
	for i := range tickets {
		result = append(result, ds.InteractionsByTicket(tickets[i].ID)...)
	}
	return orEmpty(result)
}

// Orders devolve os pedidos ligados aos tickets filtrados e criados dentro do período
func Orders(ds *dataset.Dataset, f domain.Filters, tickets []domain.Ticket) []domain.Order {
	var result []domain.Order
	for i := range tickets {
		for _, order := range ds.OrdersByTicket(tickets[i].ID) {
			if order.TenantID == f.TenantID && inRange(order.CreadoEn, f.From, f.To) {
				result = append(result, order)
			}
		}
	}
	return orEmpty(result)
}

// Surveys devolve as pesquisas ligadas aos tickets filtrados e respondidas dentro do período
func Surveys(ds *dataset.Dataset, f domain.Filters, tickets []domain.Ticket) []domain.Survey {
	var result []domain.Survey
	for i := range tickets {
		for _, survey := range ds.SurveysByTicket(tickets[i].ID) {
			if survey.TenantID == f.TenantID && inRange(survey.Timestamp, f.From, f.To) {
				result = append(result, survey)
			}
		}
	}
	return orEmpty(result)
}

// OrdersForTickets devolve os pedidos dos tickets sem aplicar o período
func OrdersForTickets(ds *dataset.Dataset, f domain.Filters, tickets []domain.Ticket) []domain.Order {
	var result []domain.Order
	for i := range tickets {
		for _, order := range ds.OrdersByTicket(tickets[i].ID) {
			if order.TenantID == f.TenantID {
				result = append(result, order)
			}
		}
	}
	return orEmpty(result)
}

func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}

func matchesAny(allowed []string, value string) bool {
	return len(allowed) == 0 || slices.Contains(allowed, value)
}

func searchText(ticket *domain.Ticket) string {
	parts := make([]string, 0, 7)
	for _, value := range []string{
		ticket.ID,
		ticket.Categoria,
		ticket.Subcategoria,
		ticket.Estado,
		ticket.AsignadoA,
		ticket.Ubicacion.Barrio,
		ticket.Ubicacion.Zona,
	} {
		if value != "" {
			parts = append(parts, strings.ToLower(value))
		}
	}
	return strings.Join(parts, " ")
}

func orEmpty[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
