package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/analytics"
	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// DashboardHandler expone los KPIs del portafolio y el reporte de pagos.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	reportUC    *analytics.ReportUseCase
	log         *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, reportUC *analytics.ReportUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, reportUC: reportUC, log: log}
}

// Summary godoc
// @Summary      Resumen del dashboard (KPIs + gráficos)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// PaymentReport godoc
// @Summary      Reporte de pagos por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio (2006-01-02); defecto: hace 12 meses"
// @Param        end_date    query  string  false  "Fin (2006-01-02); defecto: hoy"
// @Param        interval    query  string  false  "month o year"  default(month)
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/payments [get]
func (h *DashboardHandler) PaymentReport(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.reportUC.GetPaymentReport(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas o intervalo inválidos"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
