package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY,
  email         TEXT        NOT NULL UNIQUE,
  name          TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_certifications",
		SQL: `CREATE TABLE IF NOT EXISTS certifications (
  id            UUID        PRIMARY KEY,
  user_id       UUID        NOT NULL,
  name          TEXT        NOT NULL,
  provider      TEXT        NOT NULL,
  issue_date    TEXT        NOT NULL,
  expiry_date   TEXT        NOT NULL,
  reminder_days JSONB       NOT NULL DEFAULT '[90,60,30,7]',
  document_url  TEXT,
  status        TEXT        NOT NULL DEFAULT 'unknown',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_certifications_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_certifications_user_id ON certifications (user_id);`,
	},
	{
		Name: "create_index_certifications_expiry_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_certifications_expiry_date ON certifications (expiry_date);`,
	},
}

// EnsureMigrated checks whether the schema exists and creates it if it
// doesn't. The certifications table acts as the sentinel.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger) error {
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.certifications') IS NOT NULL").Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logger.Info().Dur("duration", time.Since(start)).
			Msg("schema already exists, skipping migration")
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Error().Err(err).Str("migration_step", step.Name).
				Msg("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logger.Info().Str("migration_step", step.Name).
			Dur("duration", time.Since(stepStart)).Msg("migration step applied")
	}

	logger.Info().Dur("duration", time.Since(start)).Msg("migration completed")
	return nil
}
