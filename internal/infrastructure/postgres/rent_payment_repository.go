package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.RentPaymentRepository = (*RentPaymentRepo)(nil)

// RentPaymentRepo implementación del puerto RentPaymentRepository sobre PostgreSQL (usable con pool o tx).
type RentPaymentRepo struct {
	q Querier
}

// NewRentPaymentRepository construye el adaptador de persistencia para pagos. Pasar pool o tx (Querier).
func NewRentPaymentRepository(q Querier) *RentPaymentRepo {
	return &RentPaymentRepo{q: q}
}

// Create persiste un pago de renta.
func (r *RentPaymentRepo) Create(p *entity.RentPayment) error {
	query := `
		INSERT INTO rent_payments (id, lease_id, tenant_id, amount, payment_date, status, collected_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.LeaseID, p.TenantID, p.Amount, p.PaymentDate, p.Status, p.CollectedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rent payment: %w", err)
	}
	return nil
}

// CountByLease cuenta los pagos que referencian a un lease.
func (r *RentPaymentRepo) CountByLease(leaseID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM rent_payments WHERE lease_id = $1`, leaseID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count payments by lease: %w", err)
	}
	return n, nil
}

// ListRecent devuelve los últimos pagos con nombres resueltos.
func (r *RentPaymentRepo) ListRecent(limit int) ([]*repository.PaymentDetail, error) {
	query := `
		SELECT p.id, p.lease_id, p.tenant_id, p.amount, p.payment_date, p.status, p.collected_by, p.created_at,
		       t.full_name, u.unit_name
		FROM rent_payments p
		JOIN tenants t ON t.id = p.tenant_id
		JOIN leases l ON l.id = p.lease_id
		JOIN units u ON u.id = l.unit_id
		ORDER BY p.payment_date DESC, p.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*repository.PaymentDetail
	for rows.Next() {
		var d repository.PaymentDetail
		if err := rows.Scan(
			&d.ID, &d.LeaseID, &d.TenantID, &d.Amount, &d.PaymentDate, &d.Status,
			&d.CollectedBy, &d.CreatedAt, &d.TenantName, &d.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// LastCompletedByLease devuelve, por lease, la fecha del último pago completado.
func (r *RentPaymentRepo) LastCompletedByLease() (map[string]time.Time, error) {
	query := `
		SELECT lease_id, MAX(payment_date)
		FROM rent_payments
		WHERE status = $1
		GROUP BY lease_id`
	rows, err := r.q.Query(context.Background(), query, entity.PaymentCompleted)
	if err != nil {
		return nil, fmt.Errorf("last completed payments: %w", err)
	}
	defer rows.Close()

	out := map[string]time.Time{}
	for rows.Next() {
		var leaseID string
		var paid time.Time
		if err := rows.Scan(&leaseID, &paid); err != nil {
			return nil, fmt.Errorf("scan last payment: %w", err)
		}
		out[leaseID] = paid
	}
	return out, rows.Err()
}
