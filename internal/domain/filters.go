package domain

import "time"

// BBox é um retângulo geográfico já normalizado (min <= max em cada eixo)
type BBox struct {
	MinLng float64 `json:"minLng"`
	MinLat float64 `json:"minLat"`
	MaxLng float64 `json:"maxLng"`
	MaxLat float64 `json:"maxLat"`
}

// Contains verifica se o ponto está dentro do retângulo, bordas inclusas
func (b *BBox) Contains(lat, lon float64) bool {
	return lon >= b.MinLng && lon <= b.MaxLng && lat >= b.MinLat && lat <= b.MaxLat
}

type Filters struct {
	TenantID  string    `json:"tenantId"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Context   string    `json:"context,omitempty"`
	Canal     []string  `json:"canal"`
	Categoria []string  `json:"categoria"`
	Estado    []string  `json:"estado"`
	Agente    []string  `json:"agente"`
	Zona      []string  `json:"zona"`
	Etiquetas []string  `json:"etiquetas"`
	BBox      *BBox     `json:"bbox,omitempty"`
	Search    string    `json:"search,omitempty"`
	Metric    string    `json:"metric"`
	Group     string    `json:"group,omitempty"`
	Dimension string    `json:"dimension"`
	Subject   string    `json:"subject"`
}
