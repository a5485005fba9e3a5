package aggregating

import (
	"strings"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

// scoreGroups acumula notas por chave preservando a ordem de aparição
type scoreGroups struct {
	keys   []string
	scores map[string][]int
}

func newScoreGroups() *scoreGroups {
	return &scoreGroups{scores: make(map[string][]int)}
}

func (g *scoreGroups) add(key string, score int) {
	if _, ok := g.scores[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.scores[key] = append(g.scores[key], score)
}

func (g *scoreGroups) stats() []domain.ScoreStat {
	stats := make([]domain.ScoreStat, 0, len(g.keys))
	for _, key := range g.keys {
		stats = append(stats, domain.ScoreStat{
			Label:     key,
			Average:   utils.Round(mean(g.scores[key]), 2),
			Responses: len(g.scores[key]),
		})
	}
	return stats
}

// Quality agrupa as notas das pesquisas por tipo e pelo agente do ticket. Pesquisas cujo ticket
// não está no conjunto ou não tem agente ficam fora da visão por agente.
func Quality(surveys []domain.Survey, tickets []domain.Ticket) domain.Quality {
	agents := agentsByTicket(tickets)
	byType := newScoreGroups()
	byAgent := newScoreGroups()

	for _, survey := range surveys {
		byType.add(strings.ToLower(survey.Tipo), survey.Score)
		if agent := agents[survey.TicketID]; agent != "" {
			byAgent.add(agent, survey.Score)
		}
	}

	return domain.Quality{
		ByType:  byType.stats(),
		ByAgent: byAgent.stats(),
	}
}

func agentsByTicket(tickets []domain.Ticket) map[string]string {
	agents := make(map[string]string, len(tickets))
	for i := range tickets {
		agents[tickets[i].ID] = tickets[i].AsignadoA
	}
	return agents
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
