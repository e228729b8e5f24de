package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// PropertyUseCase casos de uso CRUD para propiedades y sus unidades.
// El occupancy_status y la renta de una unidad son campos derivados: los muta
// el ciclo de vida de los leases, nunca este CRUD.
type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	unitRepo     repository.UnitRepository
}

// NewPropertyUseCase construye el caso de uso.
func NewPropertyUseCase(propertyRepo repository.PropertyRepository, unitRepo repository.UnitRepository) *PropertyUseCase {
	return &PropertyUseCase{propertyRepo: propertyRepo, unitRepo: unitRepo}
}

// Create registra una propiedad.
func (uc *PropertyUseCase) Create(in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Property{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.propertyRepo.Create(p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// GetByID obtiene una propiedad; nil si no existe.
func (uc *PropertyUseCase) GetByID(id string) (*dto.PropertyResponse, error) {
	p, err := uc.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPropertyResponse(p), nil
}

// List devuelve todas las propiedades.
func (uc *PropertyUseCase) List() ([]*dto.PropertyResponse, error) {
	props, err := uc.propertyRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PropertyResponse, 0, len(props))
	for _, p := range props {
		out = append(out, toPropertyResponse(p))
	}
	return out, nil
}

// Update aplica cambios parciales a una propiedad.
func (uc *PropertyUseCase) Update(id string, in dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	p, err := uc.propertyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()
	if err := uc.propertyRepo.Update(p); err != nil {
		return nil, err
	}
	return toPropertyResponse(p), nil
}

// Delete elimina una propiedad.
func (uc *PropertyUseCase) Delete(id string) error {
	p, err := uc.propertyRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.propertyRepo.Delete(id)
}

// CreateUnit registra una unidad vacante dentro de una propiedad.
func (uc *PropertyUseCase) CreateUnit(in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if in.PropertyID == "" || in.UnitName == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.RentAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	prop, err := uc.propertyRepo.GetByID(in.PropertyID)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	u := &entity.Unit{
		ID:              uuid.New().String(),
		PropertyID:      in.PropertyID,
		UnitName:        in.UnitName,
		RentAmount:      in.RentAmount,
		OccupancyStatus: entity.OccupancyVacant,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.unitRepo.Create(u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

// ListUnits devuelve las unidades de una propiedad.
func (uc *PropertyUseCase) ListUnits(propertyID string) ([]*dto.UnitResponse, error) {
	units, err := uc.unitRepo.ListByProperty(propertyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// ListVacantUnits devuelve las unidades vacantes de todo el portafolio.
func (uc *PropertyUseCase) ListVacantUnits() ([]*dto.UnitResponse, error) {
	units, err := uc.unitRepo.ListVacant()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, toUnitResponse(u))
	}
	return out, nil
}

// UpdateUnit aplica cambios parciales a una unidad (nombre, renta base).
func (uc *PropertyUseCase) UpdateUnit(id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.UnitName != nil {
		u.UnitName = *in.UnitName
	}
	if in.RentAmount != nil {
		if in.RentAmount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		u.RentAmount = *in.RentAmount
	}
	u.UpdatedAt = time.Now()
	if err := uc.unitRepo.Update(u); err != nil {
		return nil, err
	}
	return toUnitResponse(u), nil
}

// DeleteUnit elimina una unidad.
func (uc *PropertyUseCase) DeleteUnit(id string) error {
	u, err := uc.unitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return uc.unitRepo.Delete(id)
}

func toPropertyResponse(p *entity.Property) *dto.PropertyResponse {
	return &dto.PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:              u.ID,
		PropertyID:      u.PropertyID,
		UnitName:        u.UnitName,
		RentAmount:      u.RentAmount,
		OccupancyStatus: u.OccupancyStatus,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
