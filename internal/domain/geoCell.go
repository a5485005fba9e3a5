package domain

type GeoCell struct {
	TenantID   string         `json:"tenant_id"`
	CellID     string         `json:"cell_id"`
	Lat        float64        `json:"lat"`
	Lon        float64        `json:"lon"`
	Count      int            `json:"count"`
	Categories map[string]int `json:"categories"`
}
