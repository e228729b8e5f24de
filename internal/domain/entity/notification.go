package entity

import "time"

// Tipos de notificación in-app.
const (
	NotificationRentReminder = "rent_reminder"
)

// Notification mensaje in-app dirigido a un usuario.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	CreatedAt time.Time
}
