package aggregating

import (
	"sort"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

// counter conta ocorrências preservando a ordem em que cada chave apareceu
type counter struct {
	keys   []string
	values map[string]int
}

func newCounter() *counter {
	return &counter{values: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] += n
}

func (c *counter) items() []domain.LabelValue {
	items := make([]domain.LabelValue, 0, len(c.keys))
	for _, key := range c.keys {
		items = append(items, domain.LabelValue{Label: key, Value: c.values[key]})
	}
	return items
}

// sortedDesc ordena por valor decrescente mantendo a ordem de aparição nos empates
func (c *counter) sortedDesc(limit int) []domain.LabelValue {
	items := c.items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value > items[j].Value
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
