package repository

import "github.com/cvargas/propiedades-api/internal/domain/entity"

// MaintenanceRepository define el puerto de persistencia para MaintenanceRequest.
type MaintenanceRepository interface {
	Create(m *entity.MaintenanceRequest) error
	GetByID(id string) (*entity.MaintenanceRequest, error)
	ListAll() ([]*entity.MaintenanceRequest, error)
	ListByTenant(tenantID string) ([]*entity.MaintenanceRequest, error)
	Update(m *entity.MaintenanceRequest) error
	Delete(id string) error
}
