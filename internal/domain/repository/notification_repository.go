package repository

import "github.com/cvargas/propiedades-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	// ListByUser para inquilinos (solo ven las suyas).
	ListByUser(userID string) ([]*entity.Notification, error)
	// ListAll para admin/manager.
	ListAll() ([]*entity.Notification, error)
}
