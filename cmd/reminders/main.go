// Corrida única de recordatorios de renta, pensada para cron:
//
//	0 8 * * * /usr/local/bin/reminders
//
// Evalúa todos los leases, crea notificaciones in-app y envía SMS
// (si Twilio está configurado) para rentas vencidas o por vencer.
package main

import (
	"context"
	"os"
	"time"

	"github.com/cvargas/propiedades-api/internal/application/reminders"
	"github.com/cvargas/propiedades-api/internal/infrastructure/postgres"
	infrasms "github.com/cvargas/propiedades-api/internal/infrastructure/sms"
	"github.com/cvargas/propiedades-api/pkg/config"
	"github.com/cvargas/propiedades-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	leaseRepo := postgres.NewLeaseRepository(pool)
	paymentRepo := postgres.NewRentPaymentRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	var smsSender reminders.SMSSender
	if sender := infrasms.NewTwilioSender(cfg.SMS); sender != nil {
		smsSender = sender
	} else {
		log.Warn().Msg("TWILIO_ACCOUNT_SID no configurado, SMS deshabilitado")
	}

	uc := reminders.NewUseCase(leaseRepo, paymentRepo, notifRepo, userRepo, smsSender, log)
	res, err := uc.Run(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("corrida de recordatorios")
		os.Exit(1)
	}

	log.Info().
		Int("scanned", res.Scanned).
		Int("overdue", res.Overdue).
		Int("due_soon", res.DueSoon).
		Int("sms_sent", res.SMSSent).
		Int("sms_fails", res.SMSFails).
		Msg("recordatorios de renta completados")
}
