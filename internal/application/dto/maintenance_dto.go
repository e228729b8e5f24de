package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest entrada para abrir una solicitud de mantenimiento.
type CreateMaintenanceRequest struct {
	UnitID      string `json:"unit_id" validate:"required"`
	Description string `json:"description" validate:"required,max=1000"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
}

// UpdateMaintenanceRequest entrada para que administración actualice una solicitud.
type UpdateMaintenanceRequest struct {
	Status *string          `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Cost   *decimal.Decimal `json:"cost"`
	Notes  *string          `json:"notes"`
}

// MaintenanceResponse salida de una solicitud de mantenimiento.
type MaintenanceResponse struct {
	ID          string          `json:"id"`
	TenantID    string          `json:"tenant_id"`
	UnitID      string          `json:"unit_id"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"`
	Status      string          `json:"status"`
	Cost        decimal.Decimal `json:"cost"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
