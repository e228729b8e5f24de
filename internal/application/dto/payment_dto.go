package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago de renta.
type CreatePaymentRequest struct {
	LeaseID     string          `json:"lease_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date" validate:"required"`
	Status      string          `json:"status" validate:"required,oneof=pending completed"`
}

// PaymentResponse salida de un pago con nombres resueltos.
type PaymentResponse struct {
	ID          string          `json:"id"`
	LeaseID     string          `json:"lease_id"`
	TenantID    string          `json:"tenant_id"`
	TenantName  string          `json:"tenant_name,omitempty"`
	UnitName    string          `json:"unit_name,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      string          `json:"status"`
	CollectedBy string          `json:"collected_by,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
