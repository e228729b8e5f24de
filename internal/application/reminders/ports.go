package reminders

import "context"

// SMSSender puerto de salida para el envío de SMS. Cualquier adaptador
// (Twilio, mock) debe implementar esta interfaz; la aplicación solo conoce
// este contrato, no la implementación concreta (DIP).
type SMSSender interface {
	// Send envía un mensaje al número indicado (formato E.164).
	Send(ctx context.Context, to, body string) error
}
