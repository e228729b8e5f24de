package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

const unitColumns = `id, property_id, unit_name, rent_amount, occupancy_status, created_at, updated_at`

// Create persiste una unidad.
func (r *UnitRepo) Create(u *entity.Unit) error {
	query := `
		INSERT INTO units (id, property_id, unit_name, rent_amount, occupancy_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.PropertyID, u.UnitName, u.RentAmount, u.OccupancyStatus, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad; nil si no existe.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.getOne(`SELECT `+unitColumns+` FROM units WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila de la unidad (SELECT FOR UPDATE); usar solo dentro de una tx.
func (r *UnitRepo) GetForUpdate(id string) (*entity.Unit, error) {
	return r.getOne(`SELECT `+unitColumns+` FROM units WHERE id = $1 FOR UPDATE`, id)
}

func (r *UnitRepo) getOne(query, id string) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.PropertyID, &u.UnitName, &u.RentAmount, &u.OccupancyStatus,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

// ListByProperty devuelve las unidades de una propiedad.
func (r *UnitRepo) ListByProperty(propertyID string) ([]*entity.Unit, error) {
	return r.listWhere(
		`SELECT `+unitColumns+` FROM units WHERE property_id = $1 ORDER BY unit_name`,
		propertyID,
	)
}

// ListVacant devuelve las unidades vacantes del portafolio.
func (r *UnitRepo) ListVacant() ([]*entity.Unit, error) {
	return r.listWhere(
		`SELECT `+unitColumns+` FROM units WHERE occupancy_status = $1 ORDER BY unit_name`,
		entity.OccupancyVacant,
	)
}

func (r *UnitRepo) listWhere(query string, args ...any) ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var out []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(
			&u.ID, &u.PropertyID, &u.UnitName, &u.RentAmount, &u.OccupancyStatus,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

// Update actualiza nombre y renta base de la unidad.
func (r *UnitRepo) Update(u *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET unit_name = $2, rent_amount = $3, updated_at = $4 WHERE id = $1`,
		u.ID, u.UnitName, u.RentAmount, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// MarkOccupied fija occupancy_status='occupied' y la renta derivada del lease.
func (r *UnitRepo) MarkOccupied(id string, rent decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET occupancy_status = $2, rent_amount = $3, updated_at = now() WHERE id = $1`,
		id, entity.OccupancyOccupied, rent,
	)
	if err != nil {
		return fmt.Errorf("mark unit occupied: %w", err)
	}
	return nil
}

// UpdateRent actualiza solo la renta derivada.
func (r *UnitRepo) UpdateRent(id string, rent decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE units SET rent_amount = $2, updated_at = now() WHERE id = $1`,
		id, rent,
	)
	if err != nil {
		return fmt.Errorf("update unit rent: %w", err)
	}
	return nil
}

// Delete elimina una unidad.
func (r *UnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}
