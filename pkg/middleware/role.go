package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authorizing"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

// RequireRole restringe a rota aos papéis de nível igual ou superior ao exigido
func RequireRole(required string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := RoleFromContext(r.Context())

			if !authorizing.Authorize(role, required) {
				logrus.WithFields(logrus.Fields{
					"role":     role,
					"required": required,
					"path":     r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Permiso insuficiente", map[string]string{
					"role":     role,
					"required": required,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RequireRole(authorizing.RoleAdmin)
}

// OperatorOrAdmin permite acesso para operadores e administradores
func OperatorOrAdmin() func(http.Handler) http.Handler {
	return RequireRole(authorizing.RoleOperador)
}

// AllRoles permite acesso para qualquer papel conhecido
func AllRoles() func(http.Handler) http.Handler {
	return RequireRole(authorizing.RoleVisor)
}
