package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 1.23, Round(1.2345, 2))
	assert.Equal(t, -34.12346, Round(-34.123456, 5))
	assert.Equal(t, 0.0, Round(0, 2))
	assert.Equal(t, 2.5, RoundWithTwoDecimalPlace(2.499999))
}

func TestPercentile(t *testing.T) {
	values := []float64{50, 10, 40, 20, 30}

	assert.Equal(t, 30.0, Percentile(values, 0.5))
	assert.Equal(t, 40.0, Percentile(values, 0.9))
	assert.Equal(t, 40.0, Percentile(values, 0.95))
	assert.Equal(t, 0.0, Percentile(nil, 0.5))
	// a entrada original não deve ser reordenada
	assert.Equal(t, []float64{50, 10, 40, 20, 30}, values)
}

func TestPercentileIndex(t *testing.T) {
	assert.Equal(t, 3, PercentileIndex(5, 0.9))
	assert.Equal(t, 0, PercentileIndex(1, 0.95))
	assert.Equal(t, 0, PercentileIndex(0, 0.5))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 30.0, Ratio(3, 10))
	assert.Equal(t, 33.33, Ratio(1, 3))
	assert.Equal(t, 0.0, Ratio(5, 0))
}

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{name: "vazio usa fallback", value: "", want: fallback},
		{name: "data simples", value: "2024-03-10", want: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339 com fuso", value: "2024-03-10T12:00:00-03:00", want: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)},
		{name: "valor inválido usa fallback", value: "ontem", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseDateOr(tt.value, fallback)))
		})
	}
}

func TestLabels(t *testing.T) {
	date := time.Date(2024, 2, 29, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", DayLabel(date))
	assert.Equal(t, "2024-02", MonthLabel(date))
}
