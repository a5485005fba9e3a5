package filtering

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

const (
	DefaultWindow    = 30 * 24 * time.Hour
	DefaultMetric    = "tickets_total"
	DefaultDimension = "categoria"
	DefaultSubject   = "zonas"
)

// ParseFilters monta os filtros a partir da query string. Datas inválidas caem nos valores padrão;
// apenas a ausência de tenant_id é erro.
func ParseFilters(query url.Values, now time.Time) (domain.Filters, error) {
	now = now.UTC()

	filters := domain.Filters{
		TenantID:  strings.TrimSpace(query.Get("tenant_id")),
		From:      utils.ParseDateOr(query.Get("from"), now.Add(-DefaultWindow)),
		To:        utils.ParseDateOr(query.Get("to"), now),
		Context:   firstNonEmpty(query.Get("context"), query.Get("view")),
		Canal:     parseList(query, "canal"),
		Categoria: parseList(query, "categoria", "rubro"),
		Estado:    parseList(query, "estado"),
		Agente:    parseList(query, "agente"),
		Zona:      parseList(query, "zona", "barrio"),
		Etiquetas: parseList(query, "etiquetas"),
		BBox:      parseBBox(query.Get("bbox")),
		Search:    strings.TrimSpace(query.Get("search")),
		Metric:    firstNonEmpty(query.Get("metric"), DefaultMetric),
		Group:     strings.TrimSpace(query.Get("group")),
		Dimension: firstNonEmpty(query.Get("dimension"), DefaultDimension),
		Subject:   firstNonEmpty(query.Get("subject"), DefaultSubject),
	}

	if filters.TenantID == "" {
		return filters, NewValidationError(ErrTenantRequired, "tenant_id", "")
	}

	return filters, nil
}

// parseList usa o primeiro parâmetro presente entre os nomes informados (nome principal e aliases).
// Aceita valores repetidos e listas separadas por vírgula.
func parseList(query url.Values, names ...string) []string {
	for _, name := range names {
		values, ok := query[name]
		if !ok {
			continue
		}

		result := make([]string, 0, len(values))
		for _, value := range values {
			for _, item := range strings.Split(value, ",") {
				if item = strings.TrimSpace(item); item != "" {
					result = append(result, item)
				}
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return []string{}
}

// parseBBox espera minLng,minLat,maxLng,maxLat e normaliza os limites
func parseBBox(value string) *domain.BBox {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	if len(parts) != 4 {
		return nil
	}

	numbers := make([]float64, 4)
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(n) {
			return nil
		}
		numbers[i] = n
	}

	return &domain.BBox{
		MinLng: min(numbers[0], numbers[2]),
		MinLat: min(numbers[1], numbers[3]),
		MaxLng: max(numbers[0], numbers[2]),
		MaxLat: max(numbers[1], numbers[3]),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
