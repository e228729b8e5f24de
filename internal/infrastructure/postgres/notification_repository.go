package postgres

import (
	"context"
	"fmt"

	"github.com/cvargas/propiedades-api/internal/domain/entity"
	"github.com/cvargas/propiedades-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.UserID, n.Type, n.Message, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListByUser devuelve las notificaciones de un usuario, más recientes primero.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	return r.listWhere(
		`SELECT id, user_id, type, message, created_at FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
}

// ListAll devuelve todas las notificaciones, más recientes primero.
func (r *NotificationRepo) ListAll() ([]*entity.Notification, error) {
	return r.listWhere(`SELECT id, user_id, type, message, created_at FROM notifications ORDER BY created_at DESC`)
}

func (r *NotificationRepo) listWhere(query string, args ...any) ([]*entity.Notification, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}
