// Package analytics contiene los casos de uso del dashboard del portafolio
// y los reportes de pagos de renta.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

const rentChartMonths = 12 // meses del gráfico de renta

// chartCacheKey incluye el año-mes: al cruzar de mes la ventana del gráfico
// cambia y la entrada del mes anterior deja de ser válida.
func chartCacheKey(now time.Time) string {
	return "dashboard_charts_" + now.Format("2006-01")
}

// ChartCache puerto del cache en disco para los datos de gráficos.
// La regeneración concurrente es posible y aceptada (sobrescritura idempotente).
type ChartCache interface {
	// Get deserializa en dest si la entrada existe y no supera maxAge.
	// Devuelve false en miss o entrada vencida.
	Get(key string, maxAge time.Duration, dest interface{}) (bool, error)
	Set(key string, value interface{}) error
}

// chartData lo que se serializa en el cache de gráficos.
type chartData struct {
	RentChart []dto.MonthTotalDTO `json:"rent_chart"`
	Occupancy dto.OccupancyDTO    `json:"occupancy"`
}

// DashboardUseCase genera el resumen del portafolio: KPIs en vivo más
// gráficos cacheados en disco con TTL.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         ChartCache
	cacheTTL      time.Duration
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache ChartCache, cacheTTL time.Duration) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas KPI en paralelo:
//  1. CountProperties              → TotalProperties
//  2. CountTenants                 → TotalTenants
//  3. CompletedIncome(mes)         → MonthlyIncome
//  4. CountUnitsByStatus(vacant)   → VacantUnits
//
// Los gráficos (renta 12 meses, ocupación) salen del cache si está fresco;
// si no, se recalculan y se reescriben.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)

	// ── Goroutines para paralelizar las 4 consultas DB ────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type incomeResult struct {
		total decimal.Decimal
		err   error
	}

	propsCh := make(chan countResult, 1)
	tenantsCh := make(chan countResult, 1)
	incomeCh := make(chan incomeResult, 1)
	vacantCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProperties(ctx)
		propsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountTenants(ctx)
		tenantsCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.CompletedIncome(ctx, monthStart, monthEnd)
		incomeCh <- incomeResult{total, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUnitsByStatus(ctx, entity.OccupancyVacant)
		vacantCh <- countResult{n, err}
	}()

	props := <-propsCh
	tenants := <-tenantsCh
	income := <-incomeCh
	vacant := <-vacantCh

	if props.err != nil {
		return nil, fmt.Errorf("dashboard: total de propiedades: %w", props.err)
	}
	if tenants.err != nil {
		return nil, fmt.Errorf("dashboard: total de inquilinos: %w", tenants.err)
	}
	if income.err != nil {
		return nil, fmt.Errorf("dashboard: ingreso del mes: %w", income.err)
	}
	if vacant.err != nil {
		return nil, fmt.Errorf("dashboard: unidades vacantes: %w", vacant.err)
	}

	charts, err := uc.chartData(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("dashboard: datos de gráficos: %w", err)
	}

	return &dto.DashboardSummaryDTO{
		TotalProperties: props.n,
		TotalTenants:    tenants.n,
		MonthlyIncome:   income.total.Round(2),
		VacantUnits:     vacant.n,
		RentChart:       charts.RentChart,
		Occupancy:       charts.Occupancy,
		DateLabel:       monthLabel(now),
	}, nil
}

// chartData devuelve los gráficos desde el cache o los recalcula.
func (uc *DashboardUseCase) chartData(ctx context.Context, now time.Time) (*chartData, error) {
	var cached chartData
	if uc.cache != nil {
		hit, err := uc.cache.Get(chartCacheKey(now), uc.cacheTTL, &cached)
		if err == nil && hit {
			return &cached, nil
		}
		// un cache roto no tumba el dashboard: se recalcula
	}

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(rentChartMonths - 1), 0)
	totals, err := uc.analyticsRepo.MonthlyRentTotals(ctx, from)
	if err != nil {
		return nil, err
	}

	// Relleno con ceros: el gráfico siempre trae los 12 meses
	chart := make([]dto.MonthTotalDTO, 0, rentChartMonths)
	for i := 0; i < rentChartMonths; i++ {
		m := from.AddDate(0, i, 0)
		key := m.Format("2006-01")
		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}
		chart = append(chart, dto.MonthTotalDTO{Month: key, Total: total.Round(2)})
	}

	occupied, err := uc.analyticsRepo.CountUnitsByStatus(ctx, entity.OccupancyOccupied)
	if err != nil {
		return nil, err
	}
	vacant, err := uc.analyticsRepo.CountUnitsByStatus(ctx, entity.OccupancyVacant)
	if err != nil {
		return nil, err
	}

	data := &chartData{
		RentChart: chart,
		Occupancy: dto.OccupancyDTO{Occupied: occupied, Vacant: vacant},
	}
	if uc.cache != nil {
		// fallo de escritura del cache: no es fatal, solo se pierde el ahorro
		_ = uc.cache.Set(chartCacheKey(now), data)
	}
	return data, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
