package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// Intervalos de agrupación soportados por el reporte de pagos.
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// ReportUseCase totales de pago por período para el reporte financiero.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo}
}

// GetPaymentReport agrupa los pagos por mes o año dentro del rango pedido.
// Defaults: últimos 12 meses, agrupación mensual. Los períodos sin pagos
// aparecen con total cero para que el gráfico no tenga huecos.
func (uc *ReportUseCase) GetPaymentReport(ctx context.Context, in dto.ReportRequest) (*dto.ReportResponse, error) {
	now := time.Now()

	interval := in.Interval
	if interval == "" {
		interval = IntervalMonth
	}
	if interval != IntervalMonth && interval != IntervalYear {
		return nil, domain.ErrInvalidInput
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		Add(24*time.Hour - time.Nanosecond)
	if in.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	if in.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		start = parsed
	}
	if !start.Before(end) {
		return nil, domain.ErrInvalidInput
	}

	totals, err := uc.analyticsRepo.PeriodTotals(ctx, start, end, interval)
	if err != nil {
		return nil, err
	}

	buckets := fillBuckets(start, end, interval, totals)
	grand := decimal.Zero
	for _, b := range buckets {
		grand = grand.Add(b.Total)
	}

	return &dto.ReportResponse{
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Interval:  interval,
		Buckets:   buckets,
		Total:     grand.Round(2),
	}, nil
}

// fillBuckets enumera todos los períodos del rango y rellena con cero
// los que no tienen pagos.
func fillBuckets(start, end time.Time, interval string, totals map[string]decimal.Decimal) []dto.MonthTotalDTO {
	var out []dto.MonthTotalDTO

	if interval == IntervalYear {
		for y := start.Year(); y <= end.Year(); y++ {
			key := time.Date(y, 1, 1, 0, 0, 0, 0, start.Location()).Format("2006")
			total, ok := totals[key]
			if !ok {
				total = decimal.Zero
			}
			out = append(out, dto.MonthTotalDTO{Month: key, Total: total.Round(2)})
		}
		return out
	}

	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	for !cursor.After(end) {
		key := cursor.Format("2006-01")
		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, dto.MonthTotalDTO{Month: key, Total: total.Round(2)})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return out
}
