package occupancy

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// UseCase orquesta el ciclo de vida lease/unidad/inquilino de forma transaccional.
// Cada operación de escritura corre dentro de una sola tx: el estado derivado de la
// unidad (occupancy_status, rent_amount) nunca diverge de los leases existentes.
type UseCase struct {
	txRunner   TxRunner
	tenantRepo repository.TenantRepository
	leaseRepo  repository.LeaseRepository
	userRepo   repository.UserRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	tenantRepo repository.TenantRepository,
	leaseRepo repository.LeaseRepository,
	userRepo repository.UserRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		tenantRepo: tenantRepo,
		leaseRepo:  leaseRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

// LeaseInput entrada para crear o editar un contrato de arrendamiento.
type LeaseInput struct {
	TenantID   string
	UnitID     string
	LeaseStart string
	LeaseEnd   string
	RentAmount decimal.Decimal
}

// validate aplica las reglas comunes de lease: campos obligatorios,
// start < end y renta > 0. Devuelve las fechas ya parseadas.
func (in LeaseInput) validate() (start, end time.Time, err error) {
	if in.TenantID == "" || in.UnitID == "" || in.LeaseStart == "" || in.LeaseEnd == "" {
		return start, end, ErrMissingFields
	}
	start, err = time.Parse(dateLayout, in.LeaseStart)
	if err != nil {
		return start, end, ErrInvalidDate
	}
	end, err = time.Parse(dateLayout, in.LeaseEnd)
	if err != nil {
		return start, end, ErrInvalidDate
	}
	if !start.Before(end) {
		return start, end, ErrStartNotBeforeEnd
	}
	if !in.RentAmount.GreaterThan(decimal.Zero) {
		return start, end, ErrRentNotPositive
	}
	return start, end, nil
}

// CreateLease valida la entrada y, en una sola tx, inserta el lease y marca la
// unidad como ocupada con la renta pactada. La fila de la unidad se bloquea
// (SELECT FOR UPDATE) para que dos creaciones concurrentes no pisen el estado.
func (uc *UseCase) CreateLease(ctx context.Context, input LeaseInput) (*entity.Lease, error) {
	start, end, err := input.validate()
	if err != nil {
		return nil, err
	}

	lease := &entity.Lease{
		ID:         uuid.New().String(),
		TenantID:   input.TenantID,
		UnitID:     input.UnitID,
		LeaseStart: start,
		LeaseEnd:   end,
		RentAmount: input.RentAmount,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
		tenantRepo repository.TenantRepository,
		_ repository.UserRepository,
		_ repository.RentPaymentRepository,
	) error {
		tenant, err := tenantRepo.GetByID(input.TenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return domain.ErrNotFound
		}
		unit, err := unitRepo.GetForUpdate(input.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}
		if err := leaseRepo.Create(lease); err != nil {
			return err
		}
		return unitRepo.MarkOccupied(unit.ID, input.RentAmount)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("lease_id", lease.ID).
		Str("unit_id", lease.UnitID).
		Str("tenant_id", lease.TenantID).
		Msg("lease creado")
	return lease, nil
}

// EditLease valida y actualiza el lease y la renta derivada de la unidad destino.
// No revierte el occupancy_status de la unidad anterior si unit_id cambió:
// las unidades nunca se auto-desocupan (comportamiento heredado, preservado).
func (uc *UseCase) EditLease(ctx context.Context, leaseID string, input LeaseInput) error {
	start, end, err := input.validate()
	if err != nil {
		return err
	}

	err = uc.txRunner.Run(ctx, func(
		leaseRepo repository.LeaseRepository,
		unitRepo repository.UnitRepository,
		tenantRepo repository.TenantRepository,
		_ repository.UserRepository,
		_ repository.RentPaymentRepository,
	) error {
		lease, err := leaseRepo.GetByID(leaseID)
		if err != nil {
			return err
		}
		if lease == nil {
			return domain.ErrNotFound
		}
		tenant, err := tenantRepo.GetByID(input.TenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return domain.ErrNotFound
		}
		unit, err := unitRepo.GetForUpdate(input.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}

		lease.TenantID = input.TenantID
		lease.UnitID = input.UnitID
		lease.LeaseStart = start
		lease.LeaseEnd = end
		lease.RentAmount = input.RentAmount
		if err := leaseRepo.Update(lease); err != nil {
			return err
		}
		return unitRepo.UpdateRent(unit.ID, input.RentAmount)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("lease_id", leaseID).Msg("lease actualizado")
	return nil
}

// DeleteLease elimina el contrato si no tiene pagos asociados.
// No devuelve la unidad a 'vacant' (mismo comportamiento heredado que EditLease).
func (uc *UseCase) DeleteLease(ctx context.Context, leaseID string) error {
	err := uc.txRunner.Run(ctx, func(
		leaseRepo repository.LeaseRepository,
		_ repository.UnitRepository,
		_ repository.TenantRepository,
		_ repository.UserRepository,
		paymentRepo repository.RentPaymentRepository,
	) error {
		lease, err := leaseRepo.GetByID(leaseID)
		if err != nil {
			return err
		}
		if lease == nil {
			return domain.ErrNotFound
		}
		count, err := paymentRepo.CountByLease(leaseID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrLeasePayments
		}
		return leaseRepo.Delete(leaseID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("lease_id", leaseID).Msg("lease eliminado")
	return nil
}

// TenantInput entrada para editar el perfil y la cuenta de un inquilino.
// Password vacío = conservar la contraseña actual.
type TenantInput struct {
	FullName string
	Email    string
	Phone    string
	Username string
	Password string
}

// EditTenant actualiza en una sola tx la cuenta (username, contraseña) y el
// perfil (nombre, email, teléfono) del inquilino. La colisión de username es
// case-sensitive y excluye al propio usuario del inquilino.
func (uc *UseCase) EditTenant(ctx context.Context, tenantID string, input TenantInput) error {
	if input.FullName == "" || input.Email == "" {
		return ErrMissingFields
	}
	if len(input.Username) < 3 {
		return ErrUsernameTooShort
	}
	if input.Password != "" && len(input.Password) < 6 {
		return ErrPasswordTooShort
	}

	var passwordHash string
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash = string(hashed)
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.LeaseRepository,
		_ repository.UnitRepository,
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
		_ repository.RentPaymentRepository,
	) error {
		tenant, err := tenantRepo.GetByID(tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return domain.ErrNotFound
		}
		user, err := userRepo.GetByID(tenant.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}

		taken, err := userRepo.IsUsernameTaken(input.Username, user.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameExists
		}

		user.Username = input.Username
		user.Email = input.Email
		user.FullName = input.FullName
		user.Phone = input.Phone
		if passwordHash != "" {
			user.PasswordHash = passwordHash
		}
		if err := userRepo.Update(user); err != nil {
			return err
		}

		tenant.FullName = input.FullName
		tenant.Email = input.Email
		tenant.Phone = input.Phone
		return tenantRepo.Update(tenant)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("tenant_id", tenantID).Msg("inquilino actualizado")
	return nil
}

// DeleteTenant elimina el perfil y la cuenta del inquilino en una sola tx
// (todo o nada), siempre que no tenga leases que lo referencien.
func (uc *UseCase) DeleteTenant(ctx context.Context, tenantID string) error {
	err := uc.txRunner.Run(ctx, func(
		leaseRepo repository.LeaseRepository,
		_ repository.UnitRepository,
		tenantRepo repository.TenantRepository,
		userRepo repository.UserRepository,
		_ repository.RentPaymentRepository,
	) error {
		tenant, err := tenantRepo.GetByID(tenantID)
		if err != nil {
			return err
		}
		if tenant == nil {
			return domain.ErrNotFound
		}
		count, err := leaseRepo.CountByTenant(tenantID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrTenantActiveLeases
		}
		if err := tenantRepo.Delete(tenantID); err != nil {
			return err
		}
		return userRepo.Delete(tenant.UserID)
	})
	if err != nil {
		return err
	}

	uc.log.Info().Str("tenant_id", tenantID).Msg("inquilino eliminado")
	return nil
}
