package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ticket-analytics-api/internal/domain"
	"github.com/vfg2006/ticket-analytics-api/internal/usecases/authorizing"
	"github.com/vfg2006/ticket-analytics-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyRole contextKey = "analytics_role"

	RoleHeader = "X-Analytics-Role"
)

// RoleMiddleware resolve o papel do chamador e o guarda no contexto. O cabeçalho
// X-Analytics-Role tem prioridade; sem ele, o claim analytics_role do token bearer é usado.
// Um token presente mas inválido encerra a requisição com 401.
func RoleMiddleware(resolver *authorizing.RoleResolver, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(RoleHeader)

			var claim string
			if strings.TrimSpace(header) == "" {
				var err error
				claim, err = claimFromRequest(r, secret)
				if err != nil {
					logrus.WithError(err).Warn("Token de acesso inválido")
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
					return
				}
			}

			role := resolver.Resolve(header, claim)
			ctx := context.WithValue(r.Context(), ContextKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RoleFromContext devolve o papel resolvido, ou vazio quando nenhum middleware o definiu
func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(ContextKeyRole).(string)
	return role
}

func claimFromRequest(r *http.Request, secret string) (string, error) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		return "", nil
	}

	// sem segredo não há como validar a assinatura
	if secret == "" {
		logrus.Debug("AUTH_SECRET não configurado, ignorando token bearer")
		return "", nil
	}

	claims := &domain.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	return claims.AnalyticsRole, nil
}
