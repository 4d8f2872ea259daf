// Command sweep runs one pass of the certification expiry notification
// sweep and exits. It is meant to be invoked once daily by an external
// scheduler (cron, systemd timer); the schedule must be a singleton, since
// running twice on the same calendar day re-sends reminders.
package main

import (
	"context"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"certtracker/internal/config"
	"certtracker/internal/database"
	"certtracker/internal/mail"
	"certtracker/internal/repository/postgres"
	"certtracker/internal/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	mailer, err := mail.NewSES(ctx, cfg.SES)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize mailer")
	}

	notifier := service.NewNotifier(
		postgres.NewCertificationPostgres(db),
		postgres.NewUserPostgres(db),
		mailer,
		logger,
	)

	sent, err := notifier.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Int("notifications_sent", sent).Msg("sweep failed")
		os.Exit(1)
	}

	logger.Info().Int("notifications_sent", sent).Msg("sweep finished")
}
