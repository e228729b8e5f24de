package occupancy

import (
	"context"

	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el ciclo de vida lease/unidad/inquilino.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
		paymentRepo repository.RentPaymentRepository,
	) error) error
}
