package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas read-only para el dashboard y los reportes.
// No muta estado; todas las consultas aceptan context para cancelación.
type AnalyticsRepository interface {
	CountProperties(ctx context.Context) (int, error)
	CountTenants(ctx context.Context) (int, error)
	CountUnitsByStatus(ctx context.Context, status string) (int, error)
	// CompletedIncome suma pagos con status='completed' dentro del rango.
	CompletedIncome(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	// MonthlyRentTotals agrupa pagos completados por mes (clave "2006-01") desde `from`.
	MonthlyRentTotals(ctx context.Context, from time.Time) (map[string]decimal.Decimal, error)
	// PeriodTotals agrupa pagos por período entre dos fechas; interval ∈ {"month","year"}
	// (clave "2006-01" o "2006").
	PeriodTotals(ctx context.Context, start, end time.Time, interval string) (map[string]decimal.Decimal, error)
}
