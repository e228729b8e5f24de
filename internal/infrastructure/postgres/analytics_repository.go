package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para el dashboard y los reportes.
// A diferencia de los repos CRUD, acepta context en cada consulta: son las
// que corren en paralelo y conviene poder cancelarlas.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProperties total de propiedades del portafolio.
func (r *AnalyticsRepo) CountProperties(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM properties`)
}

// CountTenants total de perfiles de inquilino.
func (r *AnalyticsRepo) CountTenants(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tenants`)
}

// CountUnitsByStatus unidades con el occupancy_status dado.
func (r *AnalyticsRepo) CountUnitsByStatus(ctx context.Context, status string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM units WHERE occupancy_status = $1`, status)
}

func (r *AnalyticsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics count: %w", err)
	}
	return n, nil
}

// CompletedIncome suma los pagos completados dentro del rango.
func (r *AnalyticsRepo) CompletedIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM rent_payments
		WHERE status = $1 AND payment_date BETWEEN $2 AND $3`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, entity.PaymentCompleted, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("completed income: %w", err)
	}
	return total, nil
}

// MonthlyRentTotals agrupa pagos completados por mes (clave "2006-01") desde `from`.
func (r *AnalyticsRepo) MonthlyRentTotals(ctx context.Context, from time.Time) (map[string]decimal.Decimal, error) {
	query := `
		SELECT to_char(payment_date, 'YYYY-MM') AS bucket, SUM(amount)
		FROM rent_payments
		WHERE status = $1 AND payment_date >= $2
		GROUP BY bucket`
	return r.bucketTotals(ctx, query, entity.PaymentCompleted, from)
}

// PeriodTotals agrupa pagos completados por mes o año dentro del rango.
func (r *AnalyticsRepo) PeriodTotals(ctx context.Context, start, end time.Time, interval string) (map[string]decimal.Decimal, error) {
	format := "YYYY-MM"
	if interval == "year" {
		format = "YYYY"
	}
	query := `
		SELECT to_char(payment_date, '` + format + `') AS bucket, SUM(amount)
		FROM rent_payments
		WHERE status = $1 AND payment_date BETWEEN $2 AND $3
		GROUP BY bucket`
	return r.bucketTotals(ctx, query, entity.PaymentCompleted, start, end)
}

func (r *AnalyticsRepo) bucketTotals(ctx context.Context, query string, args ...any) (map[string]decimal.Decimal, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("bucket totals: %w", err)
	}
	defer rows.Close()

	out := map[string]decimal.Decimal{}
	for rows.Next() {
		var bucket string
		var total decimal.Decimal
		if err := rows.Scan(&bucket, &total); err != nil {
			return nil, fmt.Errorf("scan bucket: %w", err)
		}
		out[bucket] = total
	}
	return out, rows.Err()
}
