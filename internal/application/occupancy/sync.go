package occupancy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// SyncResult contadores de una corrida de sincronización.
type SyncResult struct {
	Created int
	Skipped int
}

// SyncTenantUsers crea un perfil Tenant para cada usuario con rol tenant que
// aún no tenga uno. El full_name se deriva del username; si ya existe un perfil
// con ese nombre se prueban sufijos _1, _2, ... hasta encontrar uno libre.
// Usuarios con username en blanco se saltan y se registran en el log.
func (uc *UseCase) SyncTenantUsers(ctx context.Context) (SyncResult, error) {
	var res SyncResult

	users, err := uc.userRepo.ListByRoles(entity.RoleTenant)
	if err != nil {
		return res, err
	}

	for _, u := range users {
		existing, err := uc.tenantRepo.GetByUserID(u.ID)
		if err != nil {
			return res, err
		}
		if existing != nil {
			continue
		}

		username := strings.TrimSpace(u.Username)
		if username == "" {
			uc.log.Warn().Str("user_id", u.ID).Msg("sync: usuario tenant con username en blanco, omitido")
			res.Skipped++
			continue
		}

		fullName := username
		for i := 1; ; i++ {
			count, err := uc.tenantRepo.CountByFullName(fullName)
			if err != nil {
				return res, err
			}
			if count == 0 {
				break
			}
			fullName = fmt.Sprintf("%s_%d", username, i)
		}

		tenant := &entity.Tenant{
			ID:        uuid.New().String(),
			UserID:    u.ID,
			FullName:  fullName,
			Email:     u.Email,
			Phone:     u.Phone,
			CreatedAt: time.Now(),
		}
		if err := uc.tenantRepo.Create(tenant); err != nil {
			return res, err
		}
		uc.log.Info().
			Str("user_id", u.ID).
			Str("tenant_id", tenant.ID).
			Str("full_name", fullName).
			Msg("sync: perfil de inquilino creado")
		res.Created++
	}

	return res, nil
}

// ListLeases devuelve los contratos con nombres de inquilino y unidad resueltos.
func (uc *UseCase) ListLeases(ctx context.Context) ([]*repository.LeaseDetail, error) {
	return uc.leaseRepo.ListDetailed()
}

// ListTenants devuelve los perfiles de inquilino con su cuenta asociada.
func (uc *UseCase) ListTenants(ctx context.Context) ([]*repository.TenantAccount, error) {
	return uc.tenantRepo.ListAccounts()
}

// GetTenant devuelve un perfil de inquilino; nil si no existe.
func (uc *UseCase) GetTenant(ctx context.Context, id string) (*entity.Tenant, error) {
	return uc.tenantRepo.GetByID(id)
}
