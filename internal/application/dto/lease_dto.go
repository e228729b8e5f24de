package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeaseRequest entrada para registrar un contrato de arrendamiento.
// Las fechas llegan como "2006-01-02".
type CreateLeaseRequest struct {
	TenantID   string          `json:"tenant_id" validate:"required"`
	UnitID     string          `json:"unit_id" validate:"required"`
	LeaseStart string          `json:"lease_start" validate:"required"`
	LeaseEnd   string          `json:"lease_end" validate:"required"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

// UpdateLeaseRequest entrada para editar un contrato existente.
type UpdateLeaseRequest struct {
	TenantID   string          `json:"tenant_id" validate:"required"`
	UnitID     string          `json:"unit_id" validate:"required"`
	LeaseStart string          `json:"lease_start" validate:"required"`
	LeaseEnd   string          `json:"lease_end" validate:"required"`
	RentAmount decimal.Decimal `json:"rent_amount"`
}

// LeaseResponse salida de un contrato con nombres resueltos.
type LeaseResponse struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	TenantName string          `json:"tenant_name,omitempty"`
	UnitID     string          `json:"unit_id"`
	UnitName   string          `json:"unit_name,omitempty"`
	LeaseStart time.Time       `json:"lease_start"`
	LeaseEnd   time.Time       `json:"lease_end"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

// UpdateTenantRequest entrada para editar el perfil y la cuenta de un inquilino.
// Password vacío = conservar la contraseña actual.
type UpdateTenantRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password"`
}

// TenantResponse salida de un inquilino con su cuenta asociada.
type TenantResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SyncTenantsResponse resultado de la sincronización de cuentas → perfiles.
type SyncTenantsResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
