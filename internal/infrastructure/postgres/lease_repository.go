package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.LeaseRepository = (*LeaseRepo)(nil)

// LeaseRepo implementación del puerto LeaseRepository sobre PostgreSQL (usable con pool o tx).
type LeaseRepo struct {
	q Querier
}

// NewLeaseRepository construye el adaptador de persistencia para leases. Pasar pool o tx (Querier).
func NewLeaseRepository(q Querier) *LeaseRepo {
	return &LeaseRepo{q: q}
}

// Create persiste un lease.
func (r *LeaseRepo) Create(l *entity.Lease) error {
	query := `
		INSERT INTO leases (id, tenant_id, unit_id, lease_start, lease_end, rent_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.TenantID, l.UnitID, l.LeaseStart, l.LeaseEnd, l.RentAmount, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lease: %w", err)
	}
	return nil
}

// GetByID obtiene un lease; nil si no existe.
func (r *LeaseRepo) GetByID(id string) (*entity.Lease, error) {
	var l entity.Lease
	err := r.q.QueryRow(context.Background(),
		`SELECT id, tenant_id, unit_id, lease_start, lease_end, rent_amount, created_at
		 FROM leases WHERE id = $1`, id,
	).Scan(&l.ID, &l.TenantID, &l.UnitID, &l.LeaseStart, &l.LeaseEnd, &l.RentAmount, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lease: %w", err)
	}
	return &l, nil
}

// Update actualiza un lease.
func (r *LeaseRepo) Update(l *entity.Lease) error {
	query := `
		UPDATE leases SET tenant_id = $2, unit_id = $3, lease_start = $4, lease_end = $5, rent_amount = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.TenantID, l.UnitID, l.LeaseStart, l.LeaseEnd, l.RentAmount,
	)
	if err != nil {
		return fmt.Errorf("update lease: %w", err)
	}
	return nil
}

// Delete elimina un lease.
func (r *LeaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lease: %w", err)
	}
	return nil
}

// CountByTenant cuenta los leases que referencian a un inquilino.
func (r *LeaseRepo) CountByTenant(tenantID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM leases WHERE tenant_id = $1`, tenantID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count leases by tenant: %w", err)
	}
	return n, nil
}

// ListDetailed devuelve los leases con nombres de inquilino y unidad resueltos.
func (r *LeaseRepo) ListDetailed() ([]*repository.LeaseDetail, error) {
	query := `
		SELECT l.id, l.tenant_id, l.unit_id, l.lease_start, l.lease_end, l.rent_amount, l.created_at,
		       t.full_name, u.unit_name
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		JOIN units u ON u.id = l.unit_id
		ORDER BY l.lease_start DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list leases: %w", err)
	}
	defer rows.Close()

	var out []*repository.LeaseDetail
	for rows.Next() {
		var d repository.LeaseDetail
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.UnitID, &d.LeaseStart, &d.LeaseEnd, &d.RentAmount, &d.CreatedAt,
			&d.TenantName, &d.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan lease: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// GetContract devuelve los datos del contrato PDF en un solo join; nil si el lease no existe.
func (r *LeaseRepo) GetContract(leaseID string) (*repository.LeaseContract, error) {
	query := `
		SELECT l.id, t.full_name, u.unit_name, p.address, l.lease_start, l.lease_end, l.rent_amount
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		JOIN units u ON u.id = l.unit_id
		JOIN properties p ON p.id = u.property_id
		WHERE l.id = $1`
	var c repository.LeaseContract
	err := r.q.QueryRow(context.Background(), query, leaseID).Scan(
		&c.LeaseID, &c.TenantName, &c.UnitName, &c.PropertyAddress,
		&c.LeaseStart, &c.LeaseEnd, &c.RentAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lease contract: %w", err)
	}
	return &c, nil
}

// ListForReminders devuelve lease + contacto del inquilino para el escaneo de recordatorios.
func (r *LeaseRepo) ListForReminders() ([]*repository.LeaseReminderRow, error) {
	query := `
		SELECT l.id, l.tenant_id, l.unit_id, u.unit_name, l.rent_amount, l.lease_start, l.lease_end,
		       t.user_id, t.full_name, t.phone
		FROM leases l
		JOIN tenants t ON t.id = l.tenant_id
		JOIN units u ON u.id = l.unit_id
		ORDER BY l.lease_end`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list leases for reminders: %w", err)
	}
	defer rows.Close()

	var out []*repository.LeaseReminderRow
	for rows.Next() {
		var row repository.LeaseReminderRow
		if err := rows.Scan(
			&row.LeaseID, &row.TenantID, &row.UnitID, &row.UnitName, &row.RentAmount,
			&row.LeaseStart, &row.LeaseEnd, &row.UserID, &row.FullName, &row.Phone,
		); err != nil {
			return nil, fmt.Errorf("scan lease reminder: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
