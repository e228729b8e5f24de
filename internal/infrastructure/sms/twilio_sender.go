// Package sms implementa el envío de SMS vía Twilio.
package sms

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/cvargas/propiedades-api/internal/application/reminders"
	"github.com/cvargas/propiedades-api/pkg/config"
)

var _ reminders.SMSSender = (*TwilioSender)(nil)

// TwilioSender implementa reminders.SMSSender sobre la API REST de Twilio.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender construye el sender. Devuelve nil si AccountSID está vacío:
// el caller interpreta nil como SMS deshabilitado.
func NewTwilioSender(cfg config.SMSConfig) *TwilioSender {
	if cfg.AccountSID == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{client: client, from: cfg.From}
}

// Send envía un SMS al número indicado (formato E.164).
func (s *TwilioSender) Send(_ context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio: enviar SMS a %s: %w", to, err)
	}
	return nil
}
