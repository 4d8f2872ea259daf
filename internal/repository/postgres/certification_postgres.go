package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"certtracker/internal/model"
	"certtracker/internal/repository"
)

// CertificationPostgres is a PostgreSQL implementation of
// repository.CertificationRepository. Queries are parameterized; the
// reminder_days schedule is stored as JSONB.
type CertificationPostgres struct {
	db *sql.DB
}

// NewCertificationPostgres creates a new CertificationPostgres repository.
func NewCertificationPostgres(db *sql.DB) *CertificationPostgres {
	return &CertificationPostgres{db: db}
}

var _ repository.CertificationRepository = (*CertificationPostgres)(nil)

const certColumns = `id, user_id, name, provider, issue_date, expiry_date, reminder_days, document_url, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCertification(row rowScanner) (*model.Certification, error) {
	var c model.Certification
	var reminders []byte
	var docURL sql.NullString
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Provider,
		&c.IssueDate,
		&c.ExpiryDate,
		&reminders,
		&docURL,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(reminders) > 0 {
		if err := json.Unmarshal(reminders, &c.ReminderDays); err != nil {
			return nil, fmt.Errorf("decode reminder_days: %w", err)
		}
	}
	c.DocumentURL = docURL.String
	return &c, nil
}

func encodeReminders(days []int) ([]byte, error) {
	if days == nil {
		days = []int{}
	}
	return json.Marshal(days)
}

// Create inserts a new certification row and returns the stored record.
func (r *CertificationPostgres) Create(ctx context.Context, cert *model.Certification) (*model.Certification, error) {
	reminders, err := encodeReminders(cert.ReminderDays)
	if err != nil {
		return nil, err
	}
	const q = `
		INSERT INTO certifications (` + certColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + certColumns
	row := r.db.QueryRowContext(ctx, q,
		cert.ID,
		cert.UserID,
		cert.Name,
		cert.Provider,
		cert.IssueDate,
		cert.ExpiryDate,
		reminders,
		nullable(cert.DocumentURL),
		cert.Status,
		cert.CreatedAt,
		cert.UpdatedAt,
	)
	return scanCertification(row)
}

// FindByID fetches a single certification by its ID.
func (r *CertificationPostgres) FindByID(ctx context.Context, id string) (*model.Certification, error) {
	const q = `SELECT ` + certColumns + ` FROM certifications WHERE id = $1`
	return scanCertification(r.db.QueryRowContext(ctx, q, id))
}

// ListByUser returns all certifications owned by the given user, newest first.
// The user_id index makes this a keyed lookup rather than a table scan.
func (r *CertificationPostgres) ListByUser(ctx context.Context, userID string) ([]model.Certification, error) {
	const q = `
		SELECT ` + certColumns + `
		FROM certifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectCertifications(rows)
}

// Update overwrites an existing row and returns the stored record.
func (r *CertificationPostgres) Update(ctx context.Context, cert *model.Certification) (*model.Certification, error) {
	reminders, err := encodeReminders(cert.ReminderDays)
	if err != nil {
		return nil, err
	}
	const q = `
		UPDATE certifications
		SET name = $2, provider = $3, issue_date = $4, expiry_date = $5,
		    reminder_days = $6, document_url = $7, status = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + certColumns
	row := r.db.QueryRowContext(ctx, q,
		cert.ID,
		cert.Name,
		cert.Provider,
		cert.IssueDate,
		cert.ExpiryDate,
		reminders,
		nullable(cert.DocumentURL),
		cert.Status,
		cert.UpdatedAt,
	)
	return scanCertification(row)
}

// Delete removes a certification by ID. Missing rows are not an error.
func (r *CertificationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM certifications WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// FindByExpiryDate returns certifications expiring on the exact given date.
// Served by the expiry_date index; used only by the notification sweep.
func (r *CertificationPostgres) FindByExpiryDate(ctx context.Context, date string) ([]model.Certification, error) {
	const q = `SELECT ` + certColumns + ` FROM certifications WHERE expiry_date = $1`
	rows, err := r.db.QueryContext(ctx, q, date)
	if err != nil {
		return nil, err
	}
	return collectCertifications(rows)
}

func collectCertifications(rows *sql.Rows) ([]model.Certification, error) {
	defer rows.Close()

	items := make([]model.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
