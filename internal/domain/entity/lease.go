package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease contrato de arrendamiento: vincula un Tenant con una Unit por un
// período y una renta mensual. Invariantes: LeaseStart < LeaseEnd y
// RentAmount > 0 (validadas en el workflow antes de cualquier escritura).
type Lease struct {
	ID         string
	TenantID   string
	UnitID     string
	LeaseStart time.Time
	LeaseEnd   time.Time
	RentAmount decimal.Decimal
	CreatedAt  time.Time
}
