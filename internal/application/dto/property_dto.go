package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePropertyRequest entrada para registrar una propiedad.
type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

// UpdatePropertyRequest entrada para actualizar una propiedad (campos opcionales).
type UpdatePropertyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address     *string `json:"address" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
}

// PropertyResponse salida de una propiedad.
type PropertyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateUnitRequest entrada para registrar una unidad dentro de una propiedad.
type CreateUnitRequest struct {
	PropertyID string          `json:"property_id" validate:"required"`
	UnitName   string          `json:"unit_name" validate:"required,min=1,max=100"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

// UpdateUnitRequest entrada para actualizar una unidad.
type UpdateUnitRequest struct {
	UnitName   *string          `json:"unit_name" validate:"omitempty,min=1,max=100"`
	RentAmount *decimal.Decimal `json:"rent_amount"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID              string          `json:"id"`
	PropertyID      string          `json:"property_id"`
	UnitName        string          `json:"unit_name"`
	RentAmount      decimal.Decimal `json:"rent_amount"`
	OccupancyStatus string          `json:"occupancy_status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
