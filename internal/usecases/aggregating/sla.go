// Package aggregating reúne os redutores de métricas. Todas as funções são puras e devolvem
// valores zerados ou coleções vazias quando a entrada é vazia.
package aggregating

import (
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

const firstContactWindow = 60 * time.Minute

// SLA calcula os percentis de tempo até a primeira resposta e até o fechamento, em horas.
// Tickets sem fechamento ficam fora do cálculo de resolução.
func SLA(tickets []domain.Ticket) domain.SLAMetrics {
	ack := make([]float64, 0, len(tickets))
	resolve := make([]float64, 0, len(tickets))

	for i := range tickets {
		ack = append(ack, hours(tickets[i].PrimerRespuestaEn.Sub(tickets[i].CreadoEn)))
		if d, ok := tickets[i].ResolutionTime(); ok {
			resolve = append(resolve, hours(d))
		}
	}

	return domain.SLAMetrics{
		Ack:     percentiles(ack),
		Resolve: percentiles(resolve),
	}
}

// Efficiency calcula resolução no primeiro contato, reabertura e automação em porcentagem
func Efficiency(tickets []domain.Ticket) domain.Efficiency {
	if len(tickets) == 0 {
		return domain.Efficiency{}
	}

	var firstContact, reopened, automated int
	for i := range tickets {
		ticket := &tickets[i]
		if ticket.CerradoEn != nil && ticket.CerradoEn.Sub(ticket.PrimerRespuestaEn) <= firstContactWindow {
			firstContact++
		}
		if ticket.Reapertura {
			reopened++
		}
		if ticket.Automatizado {
			automated++
		}
	}

	return domain.Efficiency{
		FirstContact:   utils.Ratio(firstContact, len(tickets)),
		ReopenRate:     utils.Ratio(reopened, len(tickets)),
		AutomationRate: utils.Ratio(automated, len(tickets)),
	}
}

func percentiles(values []float64) domain.Percentiles {
	return domain.Percentiles{
		P50: utils.Round(utils.Percentile(values, 0.5), 2),
		P90: utils.Round(utils.Percentile(values, 0.9), 2),
		P95: utils.Round(utils.Percentile(values, 0.95), 2),
	}
}

func hours(d time.Duration) float64 {
	return utils.Round(d.Hours(), 2)
}
