package utils

import (
	"strings"
	"time"
)

var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDateOr aceita datas ISO 8601 (com ou sem horário) e devolve fallback se o valor
// estiver vazio ou não puder ser interpretado
func ParseDateOr(value string, fallback time.Time) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	for _, layout := range acceptedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}

	return fallback
}

// DayLabel formata a data no padrão yyyy-mm-dd em UTC
func DayLabel(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// MonthLabel formata a data no padrão yyyy-mm em UTC
func MonthLabel(t time.Time) string {
	return t.UTC().Format("2006-01")
}
