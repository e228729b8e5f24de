package repository

import (
	"time"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
)

// PaymentDetail fila de listado con nombres resueltos.
type PaymentDetail struct {
	entity.RentPayment
	TenantName string
	UnitName   string
}

// RentPaymentRepository define el puerto de persistencia para RentPayment.
type RentPaymentRepository interface {
	Create(p *entity.RentPayment) error
	// CountByLease soporta la precondición de DeleteLease (ConflictError si > 0).
	CountByLease(leaseID string) (int, error)
	ListRecent(limit int) ([]*PaymentDetail, error)
	// LastCompletedByLease devuelve, por lease, la fecha del último pago completado.
	LastCompletedByLease() (map[string]time.Time, error)
}
