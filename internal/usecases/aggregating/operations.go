package aggregating

import (
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

type agentAccumulator struct {
	abiertos        int
	resolvedMinutes float64
	resolved        int
	scores          []int
}

// Operations resume a fila em aberto. A idade de cada ticket é medida contra now.
func Operations(tickets []domain.Ticket, surveys []domain.Survey, now time.Time) domain.Operations {
	result := domain.Operations{Agents: []domain.AgentLoad{}}

	scoresByTicket := make(map[string][]int)
	for _, survey := range surveys {
		scoresByTicket[survey.TicketID] = append(scoresByTicket[survey.TicketID], survey.Score)
	}

	agentKeys := make([]string, 0)
	agents := make(map[string]*agentAccumulator)

	for i := range tickets {
		ticket := &tickets[i]

		if !ticket.IsResolved() {
			result.Abiertos++
			addAging(&result.AgingBuckets, now.Sub(ticket.CreadoEn))
		}
		if ticket.SLABreach {
			result.SLABreaches++
		}
		if ticket.Automatizado {
			result.Automated++
		}

		if ticket.AsignadoA == "" {
			continue
		}
		acc, ok := agents[ticket.AsignadoA]
		if !ok {
			acc = &agentAccumulator{}
			agents[ticket.AsignadoA] = acc
			agentKeys = append(agentKeys, ticket.AsignadoA)
		}
		if !ticket.IsResolved() {
			acc.abiertos++
		}
		if d, ok := ticket.ResolutionTime(); ok {
			acc.resolvedMinutes += d.Minutes()
			acc.resolved++
		}
		acc.scores = append(acc.scores, scoresByTicket[ticket.ID]...)
	}

	for _, key := range agentKeys {
		acc := agents[key]
		load := domain.AgentLoad{
			Agente:       key,
			Abiertos:     acc.abiertos,
			Satisfaccion: utils.Round(mean(acc.scores), 2),
		}
		if acc.resolved > 0 {
			load.TiempoMedio = utils.Round(acc.resolvedMinutes/float64(acc.resolved), 2)
		}
		result.Agents = append(result.Agents, load)
	}

	return result
}

func addAging(buckets *domain.AgingBuckets, age time.Duration) {
	switch {
	case age <= 4*time.Hour:
		buckets.UpTo4h++
	case age <= 24*time.Hour:
		buckets.UpTo24h++
	case age <= 72*time.Hour:
		buckets.UpTo3d++
	case age <= 168*time.Hour:
		buckets.UpTo7d++
	default:
		buckets.Over7d++
	}
}

// Totals conta tickets, abertos, backlog e anexos
func Totals(tickets []domain.Ticket) domain.Totals {
	var totals domain.Totals
	for i := range tickets {
		totals.Tickets++
		if !tickets[i].IsResolved() {
			totals.Abiertos++
		}
		if tickets[i].Estado == domain.EstadoBacklog {
			totals.Backlog++
		}
		totals.Adjuntos += tickets[i].AdjuntosCount
	}
	return totals
}

// FiltersCatalog lista os valores distintos disponíveis para cada filtro, na ordem de aparição
func FiltersCatalog(tickets []domain.Ticket) domain.FiltersCatalog {
	canales := newDistinct()
	categorias := newDistinct()
	estados := newDistinct()
	agentes := newDistinct()
	zonas := newDistinct()
	etiquetas := newDistinct()

	for i := range tickets {
		ticket := &tickets[i]
		canales.add(ticket.Canal)
		categorias.add(ticket.Categoria)
		estados.add(ticket.Estado)
		agentes.add(ticket.AsignadoA)
		zonas.add(ticket.Ubicacion.ZoneOr(""))
		for _, tag := range ticket.Etiquetas {
			etiquetas.add(tag)
		}
	}

	return domain.FiltersCatalog{
		Canales:    canales.values,
		Categorias: categorias.values,
		Estados:    estados.values,
		Agentes:    agentes.values,
		Zonas:      zonas.values,
		Etiquetas:  etiquetas.values,
	}
}

type distinct struct {
	seen   map[string]struct{}
	values []string
}

func newDistinct() *distinct {
	return &distinct{seen: make(map[string]struct{}), values: []string{}}
}

func (d *distinct) add(value string) {
	if value == "" {
		return
	}
	if _, ok := d.seen[value]; ok {
		return
	}
	d.seen[value] = struct{}{}
	d.values = append(d.values, value)
}
