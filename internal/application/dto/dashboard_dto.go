package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs principales del portafolio más el gráfico de renta de los últimos 12 meses.
type DashboardSummaryDTO struct {
	TotalProperties int             `json:"total_properties"`
	TotalTenants    int             `json:"total_tenants"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"` // pagos completados del mes en curso
	VacantUnits     int             `json:"vacant_units"`

	// Gráficos precalculados (cacheados en disco, TTL 1 hora)
	RentChart []MonthTotalDTO `json:"rent_chart"` // 12 meses, rellenado con ceros
	Occupancy OccupancyDTO    `json:"occupancy"`

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}

// MonthTotalDTO punto del gráfico de renta mensual.
type MonthTotalDTO struct {
	Month string          `json:"month"` // "2026-08"
	Total decimal.Decimal `json:"total"`
}

// OccupancyDTO distribución ocupadas/vacantes para el gráfico de torta.
type OccupancyDTO struct {
	Occupied int `json:"occupied"`
	Vacant   int `json:"vacant"`
}

// ReportRequest filtros de GET /api/reports/payments.
type ReportRequest struct {
	StartDate string `query:"start_date"` // "2006-01-02"; defecto: hace 12 meses
	EndDate   string `query:"end_date"`   // defecto: hoy
	Interval  string `query:"interval"`   // "month" (defecto) o "year"
}

// ReportResponse totales de pago por período, con períodos vacíos en cero.
type ReportResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Interval  string          `json:"interval"`
	Buckets   []MonthTotalDTO `json:"buckets"`
	Total     decimal.Decimal `json:"total"`
}
