package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/occupancy"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// TenantHandler maneja inquilinos y contratos de arrendamiento (protegido).
// Las operaciones de escritura pasan por el workflow de ocupación, que es el
// único lugar donde se mutan leases, unidades y cuentas de inquilino.
type TenantHandler struct {
	uc  *occupancy.UseCase
	log *logger.Logger
}

// NewTenantHandler construye el handler.
func NewTenantHandler(uc *occupancy.UseCase, log *logger.Logger) *TenantHandler {
	return &TenantHandler{uc: uc, log: log}
}

// occupancyError traduce los errores del workflow a HTTP. El mensaje de los
// errores de dominio ya viene listo para mostrarse al usuario; los errores de
// infraestructura van al log y el cliente recibe el 500 genérico.
func (h *TenantHandler) occupancyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrTenantHasLeases),
		errors.Is(err, domain.ErrLeaseHasPayments):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}
	return internalError(c, h.log, err)
}

// CreateLease godoc
// @Summary      Crear contrato de arrendamiento
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeaseRequest  true  "Datos del contrato"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leases [post]
func (h *TenantHandler) CreateLease(c *fiber.Ctx) error {
	var in dto.CreateLeaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	_, err := h.uc.CreateLease(c.UserContext(), occupancy.LeaseInput{
		TenantID:   in.TenantID,
		UnitID:     in.UnitID,
		LeaseStart: in.LeaseStart,
		LeaseEnd:   in.LeaseEnd,
		RentAmount: in.RentAmount,
	})
	if err != nil {
		return h.occupancyError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: occupancy.MsgLeaseAdded})
}

// UpdateLease godoc
// @Summary      Actualizar contrato de arrendamiento
// @Tags         leases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contrato"
// @Param        body  body  dto.UpdateLeaseRequest  true  "Datos del contrato"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leases/{id} [put]
func (h *TenantHandler) UpdateLease(c *fiber.Ctx) error {
	var in dto.UpdateLeaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.EditLease(c.UserContext(), c.Params("id"), occupancy.LeaseInput{
		TenantID:   in.TenantID,
		UnitID:     in.UnitID,
		LeaseStart: in.LeaseStart,
		LeaseEnd:   in.LeaseEnd,
		RentAmount: in.RentAmount,
	})
	if err != nil {
		return h.occupancyError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: occupancy.MsgLeaseUpdated})
}

// DeleteLease godoc
// @Summary      Eliminar contrato de arrendamiento
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contrato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/leases/{id} [delete]
func (h *TenantHandler) DeleteLease(c *fiber.Ctx) error {
	if err := h.uc.DeleteLease(c.UserContext(), c.Params("id")); err != nil {
		return h.occupancyError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: occupancy.MsgLeaseDeleted})
}

// ListLeases godoc
// @Summary      Listar contratos con nombres de inquilino y unidad
// @Tags         leases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LeaseResponse
// @Router       /api/leases [get]
func (h *TenantHandler) ListLeases(c *fiber.Ctx) error {
	leases, err := h.uc.ListLeases(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := make([]*dto.LeaseResponse, 0, len(leases))
	for _, l := range leases {
		out = append(out, toLeaseResponse(l))
	}
	return c.JSON(out)
}

// UpdateTenant godoc
// @Summary      Actualizar inquilino y su cuenta
// @Tags         tenants
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del inquilino"
// @Param        body  body  dto.UpdateTenantRequest  true  "Datos del inquilino"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *fiber.Ctx) error {
	var in dto.UpdateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.EditTenant(c.UserContext(), c.Params("id"), occupancy.TenantInput{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Username: in.Username,
		Password: in.Password,
	})
	if err != nil {
		return h.occupancyError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: occupancy.MsgTenantUpdated})
}

// DeleteTenant godoc
// @Summary      Eliminar inquilino y su cuenta
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del inquilino"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *fiber.Ctx) error {
	if err := h.uc.DeleteTenant(c.UserContext(), c.Params("id")); err != nil {
		return h.occupancyError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: occupancy.MsgTenantDeleted})
}

// ListTenants godoc
// @Summary      Listar inquilinos con su cuenta asociada
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TenantResponse
// @Router       /api/tenants [get]
func (h *TenantHandler) ListTenants(c *fiber.Ctx) error {
	tenants, err := h.uc.ListTenants(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	out := make([]*dto.TenantResponse, 0, len(tenants))
	for _, t := range tenants {
		out = append(out, toTenantResponse(t))
	}
	return c.JSON(out)
}

// SyncTenants godoc
// @Summary      Sincronizar cuentas con rol tenant hacia perfiles de inquilino
// @Tags         tenants
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SyncTenantsResponse
// @Router       /api/tenants/sync [post]
func (h *TenantHandler) SyncTenants(c *fiber.Ctx) error {
	res, err := h.uc.SyncTenantUsers(c.UserContext())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.SyncTenantsResponse{Created: res.Created, Skipped: res.Skipped})
}

func toLeaseResponse(l *repository.LeaseDetail) *dto.LeaseResponse {
	return &dto.LeaseResponse{
		ID:         l.ID,
		TenantID:   l.TenantID,
		TenantName: l.TenantName,
		UnitID:     l.UnitID,
		UnitName:   l.UnitName,
		LeaseStart: l.LeaseStart,
		LeaseEnd:   l.LeaseEnd,
		RentAmount: l.RentAmount,
		CreatedAt:  l.CreatedAt,
	}
}

func toTenantResponse(t *repository.TenantAccount) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		FullName:  t.FullName,
		Email:     t.Email,
		Phone:     t.Phone,
		Username:  t.Username,
		CreatedAt: t.CreatedAt,
	}
}
