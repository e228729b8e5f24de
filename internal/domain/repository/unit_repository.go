package repository

import (
	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(u *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetForUpdate(id string) (*entity.Unit, error)
	ListByProperty(propertyID string) ([]*entity.Unit, error)
	ListVacant() ([]*entity.Unit, error)
	Update(u *entity.Unit) error
	// MarkOccupied fija occupancy_status='occupied' y la renta derivada del lease.
	MarkOccupied(id string, rent decimal.Decimal) error
	// UpdateRent actualiza solo la renta derivada (edición de lease).
	UpdateRent(id string, rent decimal.Decimal) error
	Delete(id string) error
}
