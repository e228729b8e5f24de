package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cvargas/propiedades-api/internal/application/occupancy"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// Ensure TxRunner implements occupancy.TxRunner.
var _ occupancy.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	leaseRepo repository.LeaseRepository,
	unitRepo repository.UnitRepository,
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.RentPaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leaseRepo := NewLeaseRepository(tx)
	unitRepo := NewUnitRepository(tx)
	tenantRepo := NewTenantRepository(tx)
	userRepo := NewUserRepository(tx)
	paymentRepo := NewRentPaymentRepository(tx)

	if err := fn(leaseRepo, unitRepo, tenantRepo, userRepo, paymentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
