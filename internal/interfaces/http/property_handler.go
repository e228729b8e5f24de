package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// PropertyHandler maneja propiedades y sus unidades (protegido).
type PropertyHandler struct {
	uc  *usecase.PropertyUseCase
	log *logger.Logger
}

// NewPropertyHandler construye el handler.
func NewPropertyHandler(uc *usecase.PropertyUseCase, log *logger.Logger) *PropertyHandler {
	return &PropertyHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePropertyRequest  true  "Datos de la propiedad"
// @Success      201   {object}  dto.PropertyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y address son requeridos"})
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener propiedad por ID
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.PropertyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar propiedades
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PropertyResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar propiedad
// @Tags         properties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propiedad"
// @Param        body  body  dto.UpdatePropertyRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PropertyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdatePropertyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return internalError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propiedad
// @Tags         properties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la propiedad"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "propiedad eliminada"})
}

// CreateUnit godoc
// @Summary      Crear unidad dentro de una propiedad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUnitRequest  true  "Datos de la unidad"
// @Success      201   {object}  dto.UnitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units [post]
func (h *PropertyHandler) CreateUnit(c *fiber.Ctx) error {
	var in dto.CreateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateUnit(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "property_id, unit_name y renta no negativa son requeridos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propiedad no encontrada"})
		}
		return internalError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnits godoc
// @Summary      Listar unidades de una propiedad
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la propiedad"
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/properties/{id}/units [get]
func (h *PropertyHandler) ListUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListUnits(c.Params("id"))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListVacantUnits godoc
// @Summary      Listar unidades vacantes del portafolio
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units/vacant [get]
func (h *PropertyHandler) ListVacantUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListVacantUnits()
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateUnit godoc
// @Summary      Actualizar unidad
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la unidad"
// @Param        body  body  dto.UpdateUnitRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{id} [put]
func (h *PropertyHandler) UpdateUnit(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateUnit(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la renta no puede ser negativa"})
		}
		return internalError(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
	}
	return c.JSON(out)
}

// DeleteUnit godoc
// @Summary      Eliminar unidad
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la unidad"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/units/{id} [delete]
func (h *PropertyHandler) DeleteUnit(c *fiber.Ctx) error {
	if err := h.uc.DeleteUnit(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "unidad no encontrada"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "unidad eliminada"})
}
