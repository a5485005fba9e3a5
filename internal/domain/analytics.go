package domain

import "time"

type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type DatePoint struct {
	Date  string  `json:"date"` // yyyy-mm-dd
	Value float64 `json:"value"`
}

type Percentiles struct {
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
}

// SLAMetrics em horas: ack é criação até a primeira resposta, resolve é criação até o fechamento
type SLAMetrics struct {
	Ack     Percentiles `json:"ack"`
	Resolve Percentiles `json:"resolve"`
}

type Efficiency struct {
	FirstContact   float64 `json:"firstContact"`
	ReopenRate     float64 `json:"reopenRate"`
	AutomationRate float64 `json:"automationRate"`
}

type Volume struct {
	PerDay     []DatePoint  `json:"perDay"`
	ByChannel  []LabelValue `json:"byChannel"`
	ByCategory []LabelValue `json:"byCategory"`
	ByZone     []LabelValue `json:"byZone"`
}

type ScoreStat struct {
	Label     string  `json:"label"`
	Average   float64 `json:"average"`
	Responses int     `json:"responses"`
}

type Quality struct {
	ByType  []ScoreStat `json:"byType"`
	ByAgent []ScoreStat `json:"byAgent"`
}

// Recurrence conta recompras (não taxas) em janelas cumulativas a partir da primeira compra
type Recurrence struct {
	D30 int `json:"d30"`
	D60 int `json:"d60"`
	D90 int `json:"d90"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Value int `json:"value"`
}

type TemplateStat struct {
	Plantilla  string  `json:"plantilla"`
	Envios     int     `json:"envios"`
	Respuestas int     `json:"respuestas"`
	CTR        float64 `json:"ctr"`
}

type Commerce struct {
	TotalOrders  int            `json:"totalOrders"`
	TicketMedio  float64        `json:"ticketMedio"`
	Ingresos     []DatePoint    `json:"ingresos"`
	TopProductos []LabelValue   `json:"topProductos"`
	Conversion   float64        `json:"conversion"`
	Recurrencia  Recurrence     `json:"recurrencia"`
	HorasPico    []HourCount    `json:"horasPico"`
	Canales      []LabelValue   `json:"canales"`
	Plantillas   []TemplateStat `json:"plantillas"`
}

type HeatCell struct {
	CellID      string         `json:"cellId"`
	TenantID    string         `json:"tenant_id"`
	Count       int            `json:"count"`
	CentroidLat float64        `json:"centroid_lat"`
	CentroidLon float64        `json:"centroid_lon"`
	Breakdown   map[string]int `json:"breakdown"`
}

type Hotspot struct {
	CellID    string         `json:"cellId"`
	Count     int            `json:"count"`
	Centroid  [2]float64     `json:"centroid"` // lat, lon
	Breakdown map[string]int `json:"breakdown"`
}

type WeekCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

type ChronicZone struct {
	Zone  string      `json:"zone"`
	Weeks []WeekCount `json:"weeks"`
}

type Cohort struct {
	Cohort   string  `json:"cohort"` // yyyy-mm
	Pedidos  int     `json:"pedidos"`
	Ingresos float64 `json:"ingresos"`
}

type SeriesPoint struct {
	Date      string         `json:"date"`
	Value     float64        `json:"value"`
	Breakdown map[string]int `json:"breakdown"`
}

type GeoPoint struct {
	CellID    string  `json:"cellId"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Categoria string  `json:"categoria"`
	Estado    string  `json:"estado"`
}

type AgingBuckets struct {
	UpTo4h  int `json:"0-4h"`
	UpTo24h int `json:"4-24h"`
	UpTo3d  int `json:"1-3d"`
	UpTo7d  int `json:"3-7d"`
	Over7d  int `json:">7d"`
}

type AgentLoad struct {
	Agente       string  `json:"agente"`
	Abiertos     int     `json:"abiertos"`
	TiempoMedio  float64 `json:"tiempoMedio"` // minutos até o fechamento
	Satisfaccion float64 `json:"satisfaccion"`
}

type Operations struct {
	Abiertos     int          `json:"abiertos"`
	SLABreaches  int          `json:"slaBreaches"`
	Automated    int          `json:"automated"`
	AgingBuckets AgingBuckets `json:"agingBuckets"`
	Agents       []AgentLoad  `json:"agents"`
}

type FiltersCatalog struct {
	Canales    []string `json:"canales"`
	Categorias []string `json:"categorias"`
	Estados    []string `json:"estados"`
	Agentes    []string `json:"agentes"`
	Zonas      []string `json:"zonas"`
	Etiquetas  []string `json:"etiquetas"`
}

type Totals struct {
	Tickets  int `json:"tickets"`
	Abiertos int `json:"abiertos"`
	Backlog  int `json:"backlog"`
	Adjuntos int `json:"adjuntos"`
}

type SummaryFilters struct {
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Canal     []string  `json:"canal"`
	Categoria []string  `json:"categoria"`
	Estado    []string  `json:"estado"`
	Agente    []string  `json:"agente"`
	Zona      []string  `json:"zona"`
}

type Summary struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	TenantID    string         `json:"tenantId"`
	Filters     SummaryFilters `json:"filters"`
	Totals      Totals         `json:"totals"`
	SLA         SLAMetrics     `json:"sla"`
	Efficiency  Efficiency     `json:"efficiency"`
	Volume      Volume         `json:"volume"`
	Quality     Quality        `json:"quality"`
	Pyme        Commerce       `json:"pyme"`
}
