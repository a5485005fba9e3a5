package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		role     string
		required string
		expected bool
	}{
		{role: "visor", required: "operador", expected: false},
		{role: "viewer", required: "visor", expected: true},
		{role: "operator", required: "operador", expected: true},
		{role: "operador", required: "admin", expected: false},
		{role: "admin", required: "admin", expected: true},
		{role: "admin", required: "visor", expected: true},
		{role: "admin", required: "qualquer", expected: true},
		{role: "desconhecido", required: "visor", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"->"+tt.required, func(t *testing.T) {
			assert.Equal(t, tt.expected, Authorize(tt.role, tt.required))
		})
	}
}

func TestRoleResolver_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		fallback   string
		candidates []string
		expected   string
	}{
		{name: "sem candidatos assume admin", fallback: "", candidates: nil, expected: "admin"},
		{name: "cabeçalho tem prioridade", fallback: "", candidates: []string{"Visor", "operador"}, expected: "visor"},
		{name: "cabeçalho vazio usa a claim", fallback: "", candidates: []string{"  ", "OPERATOR"}, expected: "operator"},
		{name: "desconhecido cai em admin por padrão", fallback: "", candidates: []string{"root"}, expected: "admin"},
		{name: "desconhecido usa fallback configurado", fallback: "visor", candidates: []string{"root"}, expected: "visor"},
		{name: "fallback inválido vira admin", fallback: "superuser", candidates: []string{"root"}, expected: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewRoleResolver(tt.fallback)
			assert.Equal(t, tt.expected, resolver.Resolve(tt.candidates...))
		})
	}
}

type pointsPayload struct {
	Points []domain.GeoPoint `json:"points"`
}

type heatmapPayload struct {
	Cells    []domain.HeatCell `json:"cells"`
	Hotspots []domain.Hotspot  `json:"hotspots"`
}

func TestSanitize(t *testing.T) {
	t.Run("admin recebe o mesmo payload", func(t *testing.T) {
		payload := pointsPayload{Points: []domain.GeoPoint{{CellID: "c", Lat: -34.1234567, Lon: -58.7654321}}}
		result, err := Sanitize("admin", payload)
		require.NoError(t, err)
		assert.Equal(t, payload, result)
	})

	t.Run("pontos perdem campos e precisão", func(t *testing.T) {
		payload := pointsPayload{Points: []domain.GeoPoint{
			{CellID: "cell-1", Lat: -34.1234567, Lon: -58.7654321, Categoria: "limpieza", Estado: "abierto"},
		}}

		result, err := Sanitize("visor", payload)
		require.NoError(t, err)

		object := result.(map[string]any)
		points := object["points"].([]any)
		require.Len(t, points, 1)
		assert.Equal(t, map[string]any{"cellId": "cell-1", "lat": -34.12346, "lon": -58.76543}, points[0])

		// o original não é alterado
		assert.Equal(t, -34.1234567, payload.Points[0].Lat)
	})

	t.Run("células mantêm somente a lista permitida", func(t *testing.T) {
		payload := map[string]any{
			"cells": []map[string]any{
				{"cellId": "cell-1", "count": 3, "tenant_id": "t", "centroid_lat": -34.1, "breakdown": map[string]int{"a": 3}},
			},
			"series": []map[string]any{
				{"date": "2024-01-01", "value": 2, "extra": true},
			},
			"chronic": []string{"zona-sur"},
		}

		result, err := Sanitize("operador", payload)
		require.NoError(t, err)

		object := result.(map[string]any)
		assert.Equal(t, []any{map[string]any{
			"cellId":    "cell-1",
			"count":     float64(3),
			"breakdown": map[string]any{"a": float64(3)},
		}}, object["cells"])
		assert.Equal(t, []any{map[string]any{"date": "2024-01-01", "value": float64(2)}}, object["series"])
		assert.Equal(t, []any{"zona-sur"}, object["chronic"])
	})

	t.Run("outros formatos passam sem redação", func(t *testing.T) {
		result, err := Sanitize("visor", heatmapPayload{Hotspots: []domain.Hotspot{{CellID: "c", Count: 1}}})
		require.NoError(t, err)

		object := result.(map[string]any)
		hotspots := object["hotspots"].([]any)
		assert.Equal(t, "c", hotspots[0].(map[string]any)["cellId"])
		assert.Nil(t, object["cells"])
	})

	t.Run("payload que não serializa devolve erro", func(t *testing.T) {
		_, err := Sanitize("visor", map[string]any{"ch": make(chan int)})
		assert.Error(t, err)
	})
}
