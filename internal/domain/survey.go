package domain

import "time"

const (
	SurveyCSAT = "CSAT"
	SurveyNPS  = "NPS"
)

// Survey guarda uma pesquisa de satisfação. O score NPS vai de -1 a 10.
type Survey struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	TicketID   string    `json:"ticket_id"`
	Tipo       string    `json:"tipo"`
	Score      int       `json:"score"`
	Comentario string    `json:"comentario,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
