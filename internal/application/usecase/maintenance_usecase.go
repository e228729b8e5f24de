package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// máximo permitido para el costo de una reparación
var maxMaintenanceCost = decimal.RequireFromString("99999999.99")

// MaintenanceUseCase solicitudes de mantenimiento: los inquilinos las abren,
// administración las gestiona (estado, costo, notas).
type MaintenanceUseCase struct {
	maintRepo  repository.MaintenanceRepository
	unitRepo   repository.UnitRepository
	tenantRepo repository.TenantRepository
}

// NewMaintenanceUseCase construye el caso de uso.
func NewMaintenanceUseCase(
	maintRepo repository.MaintenanceRepository,
	unitRepo repository.UnitRepository,
	tenantRepo repository.TenantRepository,
) *MaintenanceUseCase {
	return &MaintenanceUseCase{maintRepo: maintRepo, unitRepo: unitRepo, tenantRepo: tenantRepo}
}

// Create abre una solicitud a nombre del inquilino autenticado (userID).
func (uc *MaintenanceUseCase) Create(userID string, in dto.CreateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" || len(desc) > 1000 {
		return nil, domain.ErrInvalidInput
	}
	switch in.Priority {
	case entity.PriorityLow, entity.PriorityMedium, entity.PriorityHigh:
	default:
		return nil, domain.ErrInvalidInput
	}
	tenant, err := uc.tenantRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	unit, err := uc.unitRepo.GetByID(in.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	m := &entity.MaintenanceRequest{
		ID:          uuid.New().String(),
		TenantID:    tenant.ID,
		UnitID:      unit.ID,
		Description: desc,
		Priority:    in.Priority,
		Status:      entity.MaintenancePending,
		Cost:        decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.maintRepo.Create(m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// List devuelve todas las solicitudes (vista de administración).
func (uc *MaintenanceUseCase) List() ([]*dto.MaintenanceResponse, error) {
	rows, err := uc.maintRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponses(rows), nil
}

// ListByUser devuelve las solicitudes del inquilino dueño de userID.
func (uc *MaintenanceUseCase) ListByUser(userID string) ([]*dto.MaintenanceResponse, error) {
	tenant, err := uc.tenantRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return []*dto.MaintenanceResponse{}, nil
	}
	rows, err := uc.maintRepo.ListByTenant(tenant.ID)
	if err != nil {
		return nil, err
	}
	return toMaintenanceResponses(rows), nil
}

// Update gestiona una solicitud: cambio de estado, costo (acotado a
// [0, 99999999.99] y redondeado a 2 decimales) y notas internas.
func (uc *MaintenanceUseCase) Update(id string, in dto.UpdateMaintenanceRequest) (*dto.MaintenanceResponse, error) {
	m, err := uc.maintRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.MaintenancePending, entity.MaintenanceInProgress, entity.MaintenanceCompleted:
			m.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Cost != nil {
		cost := in.Cost.Round(2)
		if cost.LessThan(decimal.Zero) {
			cost = decimal.Zero
		}
		if cost.GreaterThan(maxMaintenanceCost) {
			cost = maxMaintenanceCost
		}
		m.Cost = cost
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	m.UpdatedAt = time.Now()
	if err := uc.maintRepo.Update(m); err != nil {
		return nil, err
	}
	return toMaintenanceResponse(m), nil
}

// Delete elimina una solicitud.
func (uc *MaintenanceUseCase) Delete(id string) error {
	m, err := uc.maintRepo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.maintRepo.Delete(id)
}

func toMaintenanceResponse(m *entity.MaintenanceRequest) *dto.MaintenanceResponse {
	return &dto.MaintenanceResponse{
		ID:          m.ID,
		TenantID:    m.TenantID,
		UnitID:      m.UnitID,
		Description: m.Description,
		Priority:    m.Priority,
		Status:      m.Status,
		Cost:        m.Cost,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMaintenanceResponses(rows []*entity.MaintenanceRequest) []*dto.MaintenanceResponse {
	out := make([]*dto.MaintenanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMaintenanceResponse(m))
	}
	return out
}
