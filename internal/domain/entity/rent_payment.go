package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago de renta.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
)

// RentPayment pago de renta registrado por un admin/manager.
// La existencia de pagos bloquea la eliminación del Lease asociado.
type RentPayment struct {
	ID          string
	LeaseID     string
	TenantID    string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Status      string // pending, completed
	CollectedBy string // username de quien registró el pago
	CreatedAt   time.Time
}
