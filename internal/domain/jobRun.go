package domain

import "time"

// JobRun registra a execução de uma rotina interna (geração do dataset, limpeza do cache)
type JobRun struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	DurationMs int64     `json:"durationMs"`
	RanAt      time.Time `json:"ranAt"`
}
