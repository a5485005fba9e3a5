package domain

import "time"

const (
	TipoMensaje   = "mensaje"
	TipoPlantilla = "plantilla"

	ActorUsuario = "usuario"
	ActorAgente  = "agente"
	ActorBot     = "bot"
)

type Interaction struct {
	ID        int       `json:"id"`
	TicketID  string    `json:"ticket_id"`
	Tipo      string    `json:"tipo"`
	Canal     string    `json:"canal"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Plantilla string    `json:"plantilla,omitempty"`
	TenantID  string    `json:"tenant_id"`
}
