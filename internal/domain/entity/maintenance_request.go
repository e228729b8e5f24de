package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prioridades y estados de una solicitud de mantenimiento.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
)

// MaintenanceRequest ticket de mantenimiento. Lo crea el inquilino (pending);
// admin/manager lo transiciona pending → in_progress → completed y adjunta
// costo y notas solo en la actualización.
type MaintenanceRequest struct {
	ID          string
	TenantID    string
	UnitID      string
	Description string
	Priority    string // low, medium, high
	Status      string // pending, in_progress, completed
	Cost        decimal.Decimal
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
