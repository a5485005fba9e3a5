// Package authorizing resolve o papel do chamador, verifica permissões e remove dados sensíveis
// das respostas para papéis inferiores
package authorizing

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
	RoleVisor    = "visor"
)

var roleOrder = map[string]int{
	"admin":    3,
	"operador": 2,
	"operator": 2,
	"visor":    1,
	"viewer":   1,
}

// Level devolve o nível do papel, ou zero para papéis desconhecidos
func Level(role string) int {
	return roleOrder[role]
}

func IsKnown(role string) bool {
	_, ok := roleOrder[role]
	return ok
}

// Authorize compara os níveis do papel atual e do exigido
func Authorize(role, required string) bool {
	return Level(role) >= Level(required)
}

type RoleResolver struct {
	fallback string
}

// NewRoleResolver cria o resolvedor. fallback é o papel usado quando o valor recebido não é
// reconhecido; vazio ou desconhecido equivale a admin.
func NewRoleResolver(fallback string) *RoleResolver {
	fallback = normalize(fallback)
	if !IsKnown(fallback) {
		fallback = RoleAdmin
	}
	return &RoleResolver{fallback: fallback}
}

func (r *RoleResolver) Fallback() string {
	return r.fallback
}

// Resolve usa o primeiro candidato não vazio (cabeçalho, depois claim). Sem candidato o papel é
// admin; candidato desconhecido cai no fallback configurado.
func (r *RoleResolver) Resolve(candidates ...string) string {
	candidate := RoleAdmin
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			candidate = c
			break
		}
	}

	role := normalize(candidate)
	if IsKnown(role) {
		return role
	}

	logrus.WithFields(logrus.Fields{
		"role":     role,
		"fallback": r.fallback,
	}).Warn("Papel de analytics desconhecido, usando fallback")

	return r.fallback
}

func normalize(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
