package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// MaintenanceHandler maneja solicitudes de mantenimiento (protegido).
// Los inquilinos abren y ven sus propias solicitudes; administración ve
// todas y puede actualizar estado, costo y notas.
type MaintenanceHandler struct {
	uc  *usecase.MaintenanceUseCase
	log *logger.Logger
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *usecase.MaintenanceUseCase, log *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Abrir solicitud de mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.MaintenanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unit_id, descripción (máx 1000) y prioridad low|medium|high son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil de inquilino o unidad no encontrados"})
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaintenanceResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	role := GetRole(c)
	var (
		out []*dto.MaintenanceResponse
		err error
	)
	if role == entity.RoleAdmin || role == entity.RoleManager {
		out, err = h.uc.List()
	} else {
		out, err = h.uc.ListByUser(GetUserID(c))
	}
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado, costo o notas de una solicitud
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la solicitud"
// @Param        body  body  dto.UpdateMaintenanceRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.MaintenanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser pending|in_progress|completed"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar solicitud de mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "solicitud eliminada"})
}
