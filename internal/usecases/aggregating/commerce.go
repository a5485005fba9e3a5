package aggregating

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

const (
	topProductsLimit = 20
	unknownTemplate  = "desconocida"
)

// Commerce calcula as métricas de pedidos. loc define o fuso usado nas horas de pico.
func Commerce(orders []domain.Order, tickets []domain.Ticket, interactions []domain.Interaction, loc *time.Location) domain.Commerce {
	metrics := domain.Commerce{
		Ingresos:     []domain.DatePoint{},
		TopProductos: []domain.LabelValue{},
		HorasPico:    []domain.HourCount{},
		Canales:      []domain.LabelValue{},
		Plantillas:   Templates(interactions),
	}
	if len(orders) == 0 {
		return metrics
	}
	if loc == nil {
		loc = time.UTC
	}

	revenueKeys := make([]string, 0)
	revenue := make(map[string]float64)
	products := newCounter()
	channels := newCounter()
	peakHours := make(map[int]int)
	customers := make(map[string][]time.Time)

	var total float64
	for _, order := range orders {
		total += order.Total

		day := utils.DayLabel(order.CreadoEn)
		if _, ok := revenue[day]; !ok {
			revenueKeys = append(revenueKeys, day)
		}
		revenue[day] += order.Total

		for _, item := range order.Items {
			products.add(item.SKU, item.Qty)
		}
		channels.add(order.Canal, 1)
		peakHours[order.CreadoEn.In(loc).Hour()]++
		customers[order.TicketID] = append(customers[order.TicketID], order.CreadoEn)
	}

	for _, day := range revenueKeys {
		metrics.Ingresos = append(metrics.Ingresos, domain.DatePoint{Date: day, Value: utils.Round(revenue[day], 2)})
	}
	for hour, count := range peakHours {
		metrics.HorasPico = append(metrics.HorasPico, domain.HourCount{Hour: hour, Value: count})
	}
	sort.Slice(metrics.HorasPico, func(i, j int) bool {
		return metrics.HorasPico[i].Hour < metrics.HorasPico[j].Hour
	})

	metrics.TotalOrders = len(orders)
	metrics.TicketMedio = utils.Round(total/float64(len(orders)), 2)
	metrics.TopProductos = products.sortedDesc(topProductsLimit)
	metrics.Conversion = utils.Ratio(len(orders), len(tickets))
	metrics.Recurrencia = Recurrence(customers)
	metrics.Canales = channels.items()

	return metrics
}

// Recurrence conta, para cada cliente, as compras posteriores à primeira dentro de 30, 60 e 90
// dias. As janelas são cumulativas.
func Recurrence(purchases map[string][]time.Time) domain.Recurrence {
	var result domain.Recurrence
	for _, dates := range purchases {
		if len(dates) <= 1 {
			continue
		}

		sorted := make([]time.Time, len(dates))
		copy(sorted, dates)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

		first := sorted[0]
		for _, date := range sorted[1:] {
			days := int(math.Floor(date.Sub(first).Hours() / 24))
			if days <= 30 {
				result.D30++
			}
			if days <= 60 {
				result.D60++
			}
			if days <= 90 {
				result.D90++
			}
		}
	}
	return result
}

// Templates mede envios e respostas de cada plantilla. Um envio é qualquer interação do tipo
// plantilla; uma resposta é uma plantilla cujo ator é o usuário.
func Templates(interactions []domain.Interaction) []domain.TemplateStat {
	index := make(map[string]int)
	stats := make([]domain.TemplateStat, 0)

	for _, interaction := range interactions {
		if interaction.Tipo != domain.TipoPlantilla {
			continue
		}

		key := interaction.Plantilla
		if key == "" {
			key = unknownTemplate
		}

		idx, ok := index[key]
		if !ok {
			idx = len(stats)
			index[key] = idx
			stats = append(stats, domain.TemplateStat{Plantilla: key})
		}

		stats[idx].Envios++
		if interaction.Actor == domain.ActorUsuario {
			stats[idx].Respuestas++
		}
	}

	for i := range stats {
		stats[i].CTR = utils.Ratio(stats[i].Respuestas, stats[i].Envios)
	}
	return stats
}

// Cohorts agrupa os pedidos pelo mês de criação, em ordem crescente
func Cohorts(orders []domain.Order) []domain.Cohort {
	index := make(map[string]int)
	cohorts := make([]domain.Cohort, 0)

	for _, order := range orders {
		month := utils.MonthLabel(order.CreadoEn)
		idx, ok := index[month]
		if !ok {
			idx = len(cohorts)
			index[month] = idx
			cohorts = append(cohorts, domain.Cohort{Cohort: month})
		}
		cohorts[idx].Pedidos++
		cohorts[idx].Ingresos += order.Total
	}

	for i := range cohorts {
		cohorts[i].Ingresos = utils.Round(cohorts[i].Ingresos, 2)
	}
	sort.Slice(cohorts, func(i, j int) bool {
		return cohorts[i].Cohort < cohorts[j].Cohort
	})
	return cohorts
}
