package authorizing

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ticket-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const coordinateDecimals = 5

var (
	pointFields  = []string{"lat", "lon", "count", "cellId"}
	cellFields   = []string{"cellId", "count", "centroid", "breakdown"}
	seriesFields = []string{"date", "value", "breakdown"}
)

// Sanitize devolve o payload sem alterações para admin. Para os demais papéis devolve uma cópia
// JSON onde points, cells e series mantêm apenas os campos permitidos e as coordenadas dos pontos
// são arredondadas em cinco casas. Outros formatos passam sem redação.
func Sanitize(role string, payload any) (any, error) {
	if Level(role) >= Level(RoleAdmin) || payload == nil {
		return payload, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar payload para redação")
	}

	var clone any
	if err := json.Unmarshal(raw, &clone); err != nil {
		return nil, errors.Wrap(err, "erro ao copiar payload para redação")
	}

	object, ok := clone.(map[string]any)
	if !ok {
		return clone, nil
	}

	if points, ok := object["points"].([]any); ok {
		object["points"] = project(points, pointFields, roundCoordinates)
	}
	if cells, ok := object["cells"].([]any); ok {
		object["cells"] = project(cells, cellFields, nil)
	}
	if series, ok := object["series"].([]any); ok {
		object["series"] = project(series, seriesFields, nil)
	}

	return object, nil
}

func project(items []any, allowed []string, transform func(map[string]any)) []any {
	result := make([]any, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			result = append(result, item)
			continue
		}

		kept := make(map[string]any, len(allowed))
		for _, field := range allowed {
			if value, exists := entry[field]; exists {
				kept[field] = value
			}
		}
		if transform != nil {
			transform(kept)
		}
		result = append(result, kept)
	}
	return result
}

func roundCoordinates(point map[string]any) {
	for _, field := range []string{"lat", "lon"} {
		if value, ok := point[field].(float64); ok {
			point[field] = utils.Round(value, coordinateDecimals)
		}
	}
}
