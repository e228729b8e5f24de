package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cvargas/propiedades-api/internal/domain"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

// ventana de aviso anticipado antes del fin del lease
const dueSoonWindow = 7 * 24 * time.Hour

// ErrSMSDisabled cuando se pide envío de SMS sin gateway configurado.
var ErrSMSDisabled = errors.New("SMS gateway is not configured")

// RunResult contadores de una corrida de recordatorios.
type RunResult struct {
	Scanned  int
	Overdue  int
	DueSoon  int
	SMSSent  int
	SMSFails int
}

// UseCase escanea los leases y genera recordatorios de renta: una notificación
// interna para el inquilino (y un resumen para cada admin/manager) y, si el
// inquilino tiene teléfono registrado, un SMS.
// Un lease queda vencido cuando terminó sin un pago completado que lo cubra;
// queda por vencer cuando su fin cae dentro de los próximos 7 días.
type UseCase struct {
	leaseRepo   repository.LeaseRepository
	paymentRepo repository.RentPaymentRepository
	notifRepo   repository.NotificationRepository
	userRepo    repository.UserRepository
	sender      SMSSender // nil = SMS deshabilitado
	log         *logger.Logger
}

// NewUseCase construye el caso de uso. sender puede ser nil (solo notificaciones).
func NewUseCase(
	leaseRepo repository.LeaseRepository,
	paymentRepo repository.RentPaymentRepository,
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	sender SMSSender,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		leaseRepo:   leaseRepo,
		paymentRepo: paymentRepo,
		notifRepo:   notifRepo,
		userRepo:    userRepo,
		sender:      sender,
		log:         log,
	}
}

// Run ejecuta una corrida completa sobre todos los leases.
// La clasificación compara contra la medianoche del día calendario local de
// now, para que sea estable durante el día e independiente del huso horario.
func (uc *UseCase) Run(ctx context.Context, now time.Time) (RunResult, error) {
	var res RunResult

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rows, err := uc.leaseRepo.ListForReminders()
	if err != nil {
		return res, err
	}
	lastPaid, err := uc.paymentRepo.LastCompletedByLease()
	if err != nil {
		return res, err
	}
	staff, err := uc.userRepo.ListByRoles(entity.RoleManager, entity.RoleAdmin)
	if err != nil {
		return res, err
	}

	for _, row := range rows {
		res.Scanned++

		var message, kind string
		switch {
		case uc.isOverdue(row, lastPaid, today):
			message = fmt.Sprintf(
				"Dear %s, your rent payment for unit %s is overdue. Please make the payment promptly.",
				row.FullName, row.UnitName)
			kind = "overdue"
			res.Overdue++
		case uc.isDueSoon(row, today):
			message = fmt.Sprintf(
				"Dear %s, your rent payment for unit %s is due soon on %s. Please make the payment promptly.",
				row.FullName, row.UnitName, row.LeaseEnd.Format("2006-01-02"))
			kind = "due soon"
			res.DueSoon++
		default:
			continue
		}

		notif := &entity.Notification{
			ID:        uuid.New().String(),
			UserID:    row.UserID,
			Type:      entity.NotificationRentReminder,
			Message:   message,
			CreatedAt: time.Now(),
		}
		if err := uc.notifRepo.Create(notif); err != nil {
			return res, err
		}

		// aviso resumido para administración
		staffMessage := fmt.Sprintf(
			"Reminder: Tenant %s has a %s rent payment for unit %s.",
			row.FullName, kind, row.UnitName)
		for _, u := range staff {
			if err := uc.notifRepo.Create(&entity.Notification{
				ID:        uuid.New().String(),
				UserID:    u.ID,
				Type:      entity.NotificationRentReminder,
				Message:   staffMessage,
				CreatedAt: time.Now(),
			}); err != nil {
				return res, err
			}
		}

		if uc.sender == nil || row.Phone == "" {
			continue
		}
		if err := uc.sender.Send(ctx, row.Phone, message); err != nil {
			// un SMS fallido no aborta la corrida; queda la notificación interna
			uc.log.Error().Err(err).
				Str("lease_id", row.LeaseID).
				Str("phone", row.Phone).
				Msg("recordatorio: fallo el envío de SMS")
			res.SMSFails++
			continue
		}
		res.SMSSent++
	}

	uc.log.Info().
		Int("scanned", res.Scanned).
		Int("overdue", res.Overdue).
		Int("due_soon", res.DueSoon).
		Int("sms_sent", res.SMSSent).
		Int("sms_fails", res.SMSFails).
		Msg("corrida de recordatorios finalizada")
	return res, nil
}

// SendBulk envía el mismo mensaje a cada teléfono de la lista y devuelve
// cuántos envíos tuvieron éxito y cuántos fallaron. Un fallo individual no
// detiene el resto de la lista.
func (uc *UseCase) SendBulk(ctx context.Context, phones []string, message string) (sent, failed int, err error) {
	if len(phones) == 0 || message == "" {
		return 0, 0, domain.ErrInvalidInput
	}
	if uc.sender == nil {
		return 0, 0, ErrSMSDisabled
	}
	for _, phone := range phones {
		if err := uc.sender.Send(ctx, phone, message); err != nil {
			uc.log.Error().Err(err).Str("phone", phone).Msg("SMS masivo: fallo el envío")
			failed++
			continue
		}
		sent++
	}
	uc.log.Info().Int("sent", sent).Int("failed", failed).Msg("SMS masivo finalizado")
	return sent, failed, nil
}

// isOverdue: el lease terminó y no hay pago completado que lo cubra
// (sin pagos, o el último pago completado es anterior al fin del lease).
func (uc *UseCase) isOverdue(row *repository.LeaseReminderRow, lastPaid map[string]time.Time, today time.Time) bool {
	if !row.LeaseEnd.Before(today) {
		return false
	}
	paid, ok := lastPaid[row.LeaseID]
	if !ok {
		return true
	}
	return paid.Before(row.LeaseEnd)
}

// isDueSoon: el fin del lease cae entre hoy y hoy+7 días (inclusive).
func (uc *UseCase) isDueSoon(row *repository.LeaseReminderRow, today time.Time) bool {
	if row.LeaseEnd.Before(today) {
		return false
	}
	return !row.LeaseEnd.After(today.Add(dueSoonWindow))
}
