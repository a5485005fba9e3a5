package domain

import "time"

const (
	EstadoAbierto   = "abierto"
	EstadoEnProceso = "en_proceso"
	EstadoResuelto  = "resuelto"
	EstadoBacklog   = "backlog"

	OrigenBot    = "bot"
	OrigenHumano = "humano"
)

type Location struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Barrio string  `json:"barrio"`
	Zona   string  `json:"zona"`
	CellID string  `json:"cell_id,omitempty"`
}

// ZoneOr devolve a zona, ou o barrio quando a zona está vazia, ou fallback
func (l Location) ZoneOr(fallback string) string {
	if l.Zona != "" {
		return l.Zona
	}
	if l.Barrio != "" {
		return l.Barrio
	}
	return fallback
}

type Ticket struct {
	ID                string     `json:"id"`
	TenantID          string     `json:"tenant_id"`
	Canal             string     `json:"canal"`
	Categoria         string     `json:"categoria"`
	Subcategoria      string     `json:"subcategoria"`
	Estado            string     `json:"estado"`
	Severidad         string     `json:"severidad"`
	CreadoEn          time.Time  `json:"creado_en"`
	PrimerRespuestaEn time.Time  `json:"primer_respuesta_en"`
	CerradoEn         *time.Time `json:"cerrado_en"` // presente somente quando estado == resuelto
	Ubicacion         Location   `json:"ubicacion"`
	Origen            string     `json:"origen"`
	AdjuntosCount     int        `json:"adjuntos_count"`
	Etiquetas         []string   `json:"etiquetas"`
	AsignadoA         string     `json:"asignado_a,omitempty"`
	PymeID            string     `json:"pyme_id,omitempty"`
	SLABreach         bool       `json:"sla_breach"`
	Reapertura        bool       `json:"reapertura"`
	Automatizado      bool       `json:"automatizado"`
}

func (t *Ticket) IsResolved() bool {
	return t.Estado == EstadoResuelto
}

// ResolutionTime é o tempo entre a criação e o fechamento. ok é falso para tickets sem fechamento.
func (t *Ticket) ResolutionTime() (d time.Duration, ok bool) {
	if t.CerradoEn == nil {
		return 0, false
	}
	return t.CerradoEn.Sub(t.CreadoEn), true
}
