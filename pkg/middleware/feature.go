package middleware

import (
	"net/http"
	"strings"

	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

// FeatureFlag responde 503 para as rotas sob prefix quando o recurso está desligado
func FeatureFlag(enabled bool, prefix string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !enabled && strings.HasPrefix(r.URL.Path, prefix) {
				apiErrors.WriteError(w, apiErrors.ErrAnalyticsDisabled, "Analytics deshabilitado", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
