// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type TenantType string

const (
	TenantMunicipio TenantType = "municipio"
	TenantPyme      TenantType = "pyme"
)

type Tenant struct {
	ID   string     `json:"id"`
	Type TenantType `json:"type"`
}

// DefaultTenants é o cadastro usado quando nenhum tenant é configurado
func DefaultTenants() []Tenant {
	return []Tenant{
		{ID: "tenant-municipio-1", Type: TenantMunicipio},
		{ID: "tenant-municipio-2", Type: TenantMunicipio},
		{ID: "tenant-pyme-1", Type: TenantPyme},
		{ID: "tenant-pyme-2", Type: TenantPyme},
	}
}

type Agent struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"` // admin, operador ou visor
	Equipo   string `json:"equipo"`
}
