package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
)

// LeaseDetail fila de listado con nombres resueltos.
type LeaseDetail struct {
	entity.Lease
	TenantName string
	UnitName   string
}

// LeaseContract datos necesarios para renderizar el contrato PDF
// (lease + tenant + unit + property en un solo join).
type LeaseContract struct {
	LeaseID         string
	TenantName      string
	UnitName        string
	PropertyAddress string
	LeaseStart      time.Time
	LeaseEnd        time.Time
	RentAmount      decimal.Decimal
}

// LeaseReminderRow fila del escaneo de recordatorios: lease + contacto del inquilino.
type LeaseReminderRow struct {
	LeaseID    string
	TenantID   string
	UnitID     string
	UnitName   string
	RentAmount decimal.Decimal
	LeaseStart time.Time
	LeaseEnd   time.Time
	UserID     string
	FullName   string
	Phone      string
}

// LeaseRepository define el puerto de persistencia para Lease.
type LeaseRepository interface {
	Create(l *entity.Lease) error
	GetByID(id string) (*entity.Lease, error)
	Update(l *entity.Lease) error
	Delete(id string) error
	// CountByTenant soporta la precondición de DeleteTenant (ConflictError si > 0).
	CountByTenant(tenantID string) (int, error)
	ListDetailed() ([]*LeaseDetail, error)
	// GetContract devuelve nil, nil si el lease no existe.
	GetContract(leaseID string) (*LeaseContract, error)
	ListForReminders() ([]*LeaseReminderRow, error)
}
