package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// PropertyRepo implementación del puerto PropertyRepository sobre PostgreSQL (usable con pool o tx).
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador de persistencia para propiedades. Pasar pool o tx (Querier).
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// Create persiste una propiedad.
func (r *PropertyRepo) Create(p *entity.Property) error {
	query := `
		INSERT INTO properties (id, name, address, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Address, p.Description, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

// GetByID obtiene una propiedad; nil si no existe.
func (r *PropertyRepo) GetByID(id string) (*entity.Property, error) {
	var p entity.Property
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, address, description, created_at, updated_at FROM properties WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return &p, nil
}

// List devuelve todas las propiedades.
func (r *PropertyRepo) List() ([]*entity.Property, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, address, description, created_at, updated_at FROM properties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	var out []*entity.Property
	for rows.Next() {
		var p entity.Property
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update actualiza una propiedad.
func (r *PropertyRepo) Update(p *entity.Property) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE properties SET name = $2, address = $3, description = $4, updated_at = $5 WHERE id = $1`,
		p.ID, p.Name, p.Address, p.Description, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	return nil
}

// Delete elimina una propiedad.
func (r *PropertyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	return nil
}
