package repository

import "github.com/cvargas/propiedades-api/internal/domain/entity"

// TenantAccount fila de listado: perfil de inquilino + datos de su cuenta.
type TenantAccount struct {
	entity.Tenant
	Username  string
	UserEmail string
}

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(t *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	GetByUserID(userID string) (*entity.Tenant, error)
	List() ([]*entity.Tenant, error)
	// ListAccounts une tenants con users para el listado de administración.
	ListAccounts() ([]*TenantAccount, error)
	Update(t *entity.Tenant) error
	Delete(id string) error
	// CountByFullName soporta la resolución de colisiones del sync (sufijos _1, _2, ...).
	CountByFullName(fullName string) (int, error)
}
