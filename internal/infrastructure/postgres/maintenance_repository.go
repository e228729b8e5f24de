package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.MaintenanceRepository = (*MaintenanceRepo)(nil)

// MaintenanceRepo implementación del puerto MaintenanceRepository sobre PostgreSQL (usable con pool o tx).
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador de persistencia para mantenimiento. Pasar pool o tx (Querier).
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

const maintenanceColumns = `id, tenant_id, unit_id, description, priority, status, cost, notes, created_at, updated_at`

// Create persiste una solicitud.
func (r *MaintenanceRepo) Create(m *entity.MaintenanceRequest) error {
	query := `
		INSERT INTO maintenance_requests (id, tenant_id, unit_id, description, priority, status, cost, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TenantID, m.UnitID, m.Description, m.Priority, m.Status,
		m.Cost, m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert maintenance request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud; nil si no existe.
func (r *MaintenanceRepo) GetByID(id string) (*entity.MaintenanceRequest, error) {
	var m entity.MaintenanceRequest
	err := r.q.QueryRow(context.Background(),
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = $1`, id,
	).Scan(
		&m.ID, &m.TenantID, &m.UnitID, &m.Description, &m.Priority, &m.Status,
		&m.Cost, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get maintenance request: %w", err)
	}
	return &m, nil
}

// ListAll devuelve todas las solicitudes, más recientes primero.
func (r *MaintenanceRepo) ListAll() ([]*entity.MaintenanceRequest, error) {
	return r.listWhere(`SELECT ` + maintenanceColumns + ` FROM maintenance_requests ORDER BY created_at DESC`)
}

// ListByTenant devuelve las solicitudes de un inquilino.
func (r *MaintenanceRepo) ListByTenant(tenantID string) ([]*entity.MaintenanceRequest, error) {
	return r.listWhere(
		`SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE tenant_id = $1 ORDER BY created_at DESC`,
		tenantID,
	)
}

func (r *MaintenanceRepo) listWhere(query string, args ...any) ([]*entity.MaintenanceRequest, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer rows.Close()

	var out []*entity.MaintenanceRequest
	for rows.Next() {
		var m entity.MaintenanceRequest
		if err := rows.Scan(
			&m.ID, &m.TenantID, &m.UnitID, &m.Description, &m.Priority, &m.Status,
			&m.Cost, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan maintenance request: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Update actualiza estado, costo y notas.
func (r *MaintenanceRepo) Update(m *entity.MaintenanceRequest) error {
	query := `
		UPDATE maintenance_requests SET status = $2, cost = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Status, m.Cost, m.Notes, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	return nil
}

// Delete elimina una solicitud.
func (r *MaintenanceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance request: %w", err)
	}
	return nil
}
