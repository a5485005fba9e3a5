package aggregating

import (
	"sort"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

const (
	MetricTicketsTotal = "tickets_total"
	MetricSLATTR       = "sla_ttr"

	noZone     = "sin_zona"
	noBarrio   = "sin_barrio"
	noAgent    = "sin_asignar"
	otherGroup = "otros"
)

// Volume agrupa os tickets por dia, canal, categoria e zona na ordem de aparição
func Volume(tickets []domain.Ticket) domain.Volume {
	byDay := newCounter()
	byChannel := newCounter()
	byCategory := newCounter()
	byZone := newCounter()

	for i := range tickets {
		byDay.add(utils.DayLabel(tickets[i].CreadoEn), 1)
		byChannel.add(tickets[i].Canal, 1)
		byCategory.add(tickets[i].Categoria, 1)
		byZone.add(tickets[i].Ubicacion.ZoneOr(noZone), 1)
	}

	perDay := make([]domain.DatePoint, 0, len(byDay.keys))
	for _, item := range byDay.items() {
		perDay = append(perDay, domain.DatePoint{Date: item.Label, Value: float64(item.Value)})
	}

	return domain.Volume{
		PerDay:     perDay,
		ByChannel:  byChannel.items(),
		ByCategory: byCategory.items(),
		ByZone:     byZone.items(),
	}
}

// Timeseries monta a série diária da métrica, ordenada por data. sla_ttr soma as horas de
// resolução do dia; qualquer outra métrica conta tickets.
func Timeseries(tickets []domain.Ticket, metric, group string) []domain.SeriesPoint {
	index := make(map[string]int)
	series := make([]domain.SeriesPoint, 0)

	for i := range tickets {
		ticket := &tickets[i]
		date := utils.DayLabel(ticket.CreadoEn)

		idx, ok := index[date]
		if !ok {
			idx = len(series)
			index[date] = idx
			series = append(series, domain.SeriesPoint{Date: date, Breakdown: map[string]int{}})
		}
		point := &series[idx]

		if metric == MetricSLATTR {
			if d, ok := ticket.ResolutionTime(); ok {
				point.Value += d.Hours()
			}
		} else {
			point.Value++
		}

		switch group {
		case "categoria":
			point.Breakdown[ticket.Categoria]++
		case "canal":
			point.Breakdown[ticket.Canal]++
		case "estado":
			point.Breakdown[ticket.Estado]++
		}
	}

	for i := range series {
		series[i].Value = utils.Round(series[i].Value, 2)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

// Breakdown conta tickets pela dimensão pedida em ordem decrescente. Dimensões desconhecidas
// caem todas em "otros".
func Breakdown(tickets []domain.Ticket, dimension string) []domain.LabelValue {
	groups := newCounter()
	for i := range tickets {
		groups.add(dimensionKey(&tickets[i], dimension), 1)
	}
	return groups.sortedDesc(0)
}

func dimensionKey(ticket *domain.Ticket, dimension string) string {
	switch dimension {
	case "categoria":
		return ticket.Categoria
	case "canal":
		return ticket.Canal
	case "estado":
		return ticket.Estado
	case "agente":
		if ticket.AsignadoA == "" {
			return noAgent
		}
		return ticket.AsignadoA
	case "zona":
		if ticket.Ubicacion.Zona == "" {
			return noZone
		}
		return ticket.Ubicacion.Zona
	}
	return otherGroup
}
