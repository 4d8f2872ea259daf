package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"certtracker/internal/mail"
	"certtracker/internal/model"
	"certtracker/internal/repository"
)

// LookaheadWindows are the day counts ahead of expiry at which a reminder is
// sent. A certification receives at most one reminder per window, assuming
// the sweep runs exactly once per calendar day.
var LookaheadWindows = []int{30, 60, 90}

// Notifier runs the daily expiry notification sweep.
type Notifier interface {
	// Run performs one sweep pass and returns the number of reminders
	// successfully sent. Per-candidate failures are logged and skipped; only
	// a failure to scan the certification collection aborts the run.
	Run(ctx context.Context) (int, error)
}

type notifier struct {
	certs  repository.CertificationRepository
	users  repository.UserRepository
	mailer mail.Mailer
	logger zerolog.Logger
	now    func() time.Time
}

// NewNotifier constructs the sweep over the given stores and mailer.
func NewNotifier(certs repository.CertificationRepository, users repository.UserRepository, mailer mail.Mailer, logger zerolog.Logger) Notifier {
	return &notifier{certs: certs, users: users, mailer: mailer, logger: logger, now: time.Now}
}

func (n *notifier) Run(ctx context.Context) (int, error) {
	today := n.now().UTC()
	sent := 0
	// At-most-once per candidate within a run, even if an edit lands the
	// same expiry date in more than one window.
	seen := make(map[string]bool)

	for _, window := range LookaheadWindows {
		targetDate := model.FormatDate(today.AddDate(0, 0, window))
		n.logger.Info().Str("target_date", targetDate).Int("window_days", window).
			Msg("checking for expiring certifications")

		certs, err := n.certs.FindByExpiryDate(ctx, targetDate)
		if err != nil {
			return sent, fmt.Errorf("scan certifications for %s: %w", targetDate, err)
		}

		for i := range certs {
			cert := &certs[i]
			if seen[cert.ID] {
				continue
			}
			seen[cert.ID] = true

			// Status is derived fresh, never read back from storage.
			status := model.ClassifyStatus(cert.ExpiryDate, today)
			if status == model.StatusExpired || status == model.StatusUnknown {
				continue
			}

			if n.notify(ctx, cert, window) {
				sent++
			}
		}
	}

	n.logger.Info().Int("notifications_sent", sent).Msg("notification sweep completed")
	return sent, nil
}

// notify sends one reminder for a matched certification. An orphaned
// certification or a delivery failure is logged and never aborts the sweep.
func (n *notifier) notify(ctx context.Context, cert *model.Certification, window int) bool {
	user, err := n.users.FindByID(ctx, cert.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			n.logger.Warn().Str("cert_id", cert.ID).Str("user_id", cert.UserID).
				Msg("owner not found, skipping reminder")
		} else {
			n.logger.Error().Err(err).Str("cert_id", cert.ID).Msg("user lookup failed")
		}
		return false
	}

	err = n.mailer.SendExpiryReminder(ctx, mail.ExpiryReminder{
		To:            user.Email,
		UserName:      user.Name,
		CertName:      cert.Name,
		Provider:      cert.Provider,
		DaysRemaining: window,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("cert_id", cert.ID).Str("email", user.Email).
			Msg("reminder delivery failed")
		return false
	}

	n.logger.Info().Str("cert_id", cert.ID).Str("email", user.Email).
		Int("days_remaining", window).Msg("reminder sent")
	return true
}
