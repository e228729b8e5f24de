package usecase

import (
	"github.com/cvargas/propiedades-api/internal/application/dto"
	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

// NotificationUseCase consulta de notificaciones internas.
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// ListForUser devuelve las notificaciones visibles para el usuario según rol:
// admin y manager ven todas, el resto solo las propias.
func (uc *NotificationUseCase) ListForUser(userID, role string) ([]*dto.NotificationResponse, error) {
	var (
		rows []*entity.Notification
		err  error
	)
	if role == entity.RoleAdmin || role == entity.RoleManager {
		rows, err = uc.notifRepo.ListAll()
	} else {
		rows, err = uc.notifRepo.ListByUser(userID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, &dto.NotificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      n.Type,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}
