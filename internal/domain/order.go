package domain

import "time"

type OrderItem struct {
	SKU    string  `json:"sku"`
	Qty    int     `json:"qty"`
	Precio float64 `json:"precio"`
}

type Order struct {
	ID        string      `json:"id"`
	TenantID  string      `json:"tenant_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"` // soma de qty * precio arredondada em duas casas
	Estado    string      `json:"estado"`
	Canal     string      `json:"canal"`
	CreadoEn  time.Time   `json:"creado_en"`
	Ubicacion Location    `json:"ubicacion"`
	TicketID  string      `json:"ticket_id"`
}
