package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/application/reminders"
	"github.com/cvargas/propiedades-api/internal/application/usecase"
	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// NotificationHandler lista notificaciones in-app y dispara la corrida de
// recordatorios de renta.
type NotificationHandler struct {
	uc          *usecase.NotificationUseCase
	remindersUC *reminders.UseCase
	log         *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, remindersUC *reminders.UseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, remindersUC: remindersUC, log: log}
}

// List godoc
// @Summary      Listar notificaciones (admin/manager ven todas, el resto solo las propias)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForUser(GetUserID(c), GetRole(c))
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(out)
}

// RunReminders godoc
// @Summary      Ejecutar la corrida de recordatorios de renta (notificaciones + SMS)
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReminderRunResponse
// @Router       /api/reminders/run [post]
func (h *NotificationHandler) RunReminders(c *fiber.Ctx) error {
	res, err := h.remindersUC.Run(c.UserContext(), time.Now())
	if err != nil {
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.ReminderRunResponse{
		Scanned:  res.Scanned,
		Overdue:  res.Overdue,
		DueSoon:  res.DueSoon,
		SMSSent:  res.SMSSent,
		SMSFails: res.SMSFails,
	})
}

// SendBulkSMS godoc
// @Summary      Enviar el mismo SMS a una lista de teléfonos
// @Tags         notifications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkSMSRequest  true  "Destinatarios y mensaje"
// @Success      200   {object}  dto.BulkSMSResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sms/bulk [post]
func (h *NotificationHandler) SendBulkSMS(c *fiber.Ctx) error {
	var in dto.BulkSMSRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sent, failed, err := h.remindersUC.SendBulk(c.UserContext(), in.Recipients, in.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Please select recipients and enter a message."})
		case errors.Is(err, reminders.ErrSMSDisabled):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SMS_DISABLED", Message: "el gateway SMS no está configurado"})
		}
		return internalError(c, h.log, err)
	}
	return c.JSON(dto.BulkSMSResponse{
		Sent:    sent,
		Failed:  failed,
		Message: fmt.Sprintf("SMS sent to %d recipients. Failed to send to %d recipients.", sent, failed),
	})
}
