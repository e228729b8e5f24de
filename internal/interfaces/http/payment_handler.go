package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// PaymentHandler maneja el registro y listado de pagos de renta (protegido).
type PaymentHandler struct {
	uc  *usecase.PaymentUseCase
	log *logger.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *usecase.PaymentUseCase, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar pago de renta
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lease_id, monto positivo, fecha válida y status pending|completed son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato no encontrado"})
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecent godoc
// @Summary      Listar pagos recientes con nombres resueltos
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(50)
// @Success      200    {array}  dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.QueryInt("limit", 0))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}
