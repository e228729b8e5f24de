package dto

import "time"

// NotificationResponse salida de una notificación interna.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BulkSMSRequest entrada de POST /api/sms/bulk: un mismo mensaje a varios teléfonos.
type BulkSMSRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1"`
	Message    string   `json:"message" validate:"required"`
}

// BulkSMSResponse contadores del envío masivo.
type BulkSMSResponse struct {
	Sent    int    `json:"sent"`
	Failed  int    `json:"failed"`
	Message string `json:"message"` // resumen legible, ej: "SMS sent to 3 recipients. Failed to send to 1 recipients."
}

// ReminderRunResponse resultado de una corrida de recordatorios de renta.
type ReminderRunResponse struct {
	Scanned  int `json:"scanned"`  // leases evaluados
	Overdue  int `json:"overdue"`  // clasificados como vencidos
	DueSoon  int `json:"due_soon"` // por vencer dentro de 7 días
	SMSSent  int `json:"sms_sent"`
	SMSFails int `json:"sms_fails"`
}
