package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token de acesso. Apenas o papel de analytics é lido; o token é emitido por outro serviço.
type Claims struct {
	AnalyticsRole string `json:"analytics_role"`
	jwt.RegisteredClaims
}
