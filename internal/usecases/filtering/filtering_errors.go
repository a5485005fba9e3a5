package filtering

import (
	"errors"
	"fmt"
)

// Erros de validação dos filtros
var (
	ErrTenantRequired = errors.New("tenant_id es obligatorio")
)

// ValidationError é um erro de validação com o campo envolvido
type ValidationError struct {
	Err     error  // Erro base
	Field   string // Parâmetro da query que falhou
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(err error, field string, details string) *ValidationError {
	return &ValidationError{
		Err:     err,
		Field:   field,
		Details: details,
	}
}
