package repository

import "github.com/cvargas/propiedades-api/internal/domain/entity"

// PropertyRepository define el puerto de persistencia para Property.
type PropertyRepository interface {
	Create(p *entity.Property) error
	GetByID(id string) (*entity.Property, error)
	List() ([]*entity.Property, error)
	Update(p *entity.Property) error
	Delete(id string) error
}
