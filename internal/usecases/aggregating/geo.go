package aggregating

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vfg2006/ticket-analytics-api/internal/domain"
)

const (
	hotspotsLimit     = 10
	chronicMinWeeks   = 4
	chronicMinPerWeek = 3
	DefaultPoints     = 1000
)

// Heatmap agrupa os tickets por tenant e célula. O centróide é a coordenada do primeiro ticket
// visto na célula, não a média.
func Heatmap(tickets []domain.Ticket) []domain.HeatCell {
	index := make(map[string]int)
	cells := make([]domain.HeatCell, 0)

	for i := range tickets {
		ticket := &tickets[i]
		if ticket.Ubicacion.CellID == "" {
			continue
		}

		key := ticket.TenantID + "-" + ticket.Ubicacion.CellID
		idx, ok := index[key]
		if !ok {
			idx = len(cells)
			index[key] = idx
			cells = append(cells, domain.HeatCell{
				CellID:      ticket.Ubicacion.CellID,
				TenantID:    ticket.TenantID,
				CentroidLat: ticket.Ubicacion.Lat,
				CentroidLon: ticket.Ubicacion.Lon,
				Breakdown:   make(map[string]int),
			})
		}
		cells[idx].Count++
		cells[idx].Breakdown[ticket.Categoria]++
	}
	return cells
}

// Hotspots devolve as dez células com mais tickets
func Hotspots(tickets []domain.Ticket) []domain.Hotspot {
	cells := Heatmap(tickets)
	sort.SliceStable(cells, func(i, j int) bool {
		return cells[i].Count > cells[j].Count
	})
	if len(cells) > hotspotsLimit {
		cells = cells[:hotspotsLimit]
	}

	hotspots := make([]domain.Hotspot, 0, len(cells))
	for _, cell := range cells {
		hotspots = append(hotspots, domain.Hotspot{
			CellID:    cell.CellID,
			Count:     cell.Count,
			Centroid:  [2]float64{cell.CentroidLat, cell.CentroidLon},
			Breakdown: cell.Breakdown,
		})
	}
	return hotspots
}

// WeekOfMonth devolve o rótulo yyyy-Wn com n = ceil(dia do mês / 7). O índice reinicia a cada mês,
// então semanas de meses diferentes com o mesmo n caem no mesmo grupo.
func WeekOfMonth(t time.Time) string {
	created := t.UTC()
	week := int(math.Ceil(float64(created.Day()) / 7))
	return fmt.Sprintf("%d-W%d", created.Year(), week)
}

// Chronic marca como crônica a zona com pelo menos quatro semanas e ao menos três tickets em
// todas elas
func Chronic(tickets []domain.Ticket) []domain.ChronicZone {
	zoneIndex := make(map[string]int)
	zones := make([]domain.ChronicZone, 0)
	weekIndex := make(map[string]map[string]int)

	for i := range tickets {
		zone := tickets[i].Ubicacion.ZoneOr(noZone)
		week := WeekOfMonth(tickets[i].CreadoEn)

		zIdx, ok := zoneIndex[zone]
		if !ok {
			zIdx = len(zones)
			zoneIndex[zone] = zIdx
			zones = append(zones, domain.ChronicZone{Zone: zone})
			weekIndex[zone] = make(map[string]int)
		}

		wIdx, ok := weekIndex[zone][week]
		if !ok {
			wIdx = len(zones[zIdx].Weeks)
			weekIndex[zone][week] = wIdx
			zones[zIdx].Weeks = append(zones[zIdx].Weeks, domain.WeekCount{Week: week})
		}
		zones[zIdx].Weeks[wIdx].Count++
	}

	chronic := make([]domain.ChronicZone, 0)
	for _, zone := range zones {
		if isChronic(zone.Weeks) {
			chronic = append(chronic, zone)
		}
	}
	return chronic
}

func isChronic(weeks []domain.WeekCount) bool {
	if len(weeks) < chronicMinWeeks {
		return false
	}
	for _, week := range weeks {
		if week.Count < chronicMinPerWeek {
			return false
		}
	}
	return true
}

// Points devolve até limit pontos com coordenadas preenchidas
func Points(tickets []domain.Ticket, limit int) []domain.GeoPoint {
	if limit <= 0 {
		limit = DefaultPoints
	}

	points := make([]domain.GeoPoint, 0)
	for i := range tickets {
		if len(points) >= limit {
			break
		}
		location := tickets[i].Ubicacion
		if location.Lat == 0 || location.Lon == 0 {
			continue
		}
		points = append(points, domain.GeoPoint{
			CellID:    location.CellID,
			Lat:       location.Lat,
			Lon:       location.Lon,
			Categoria: tickets[i].Categoria,
			Estado:    tickets[i].Estado,
		})
	}
	return points
}
