package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"certtracker/internal/model"
)

var certCols = []string{
	"id", "user_id", "name", "provider", "issue_date", "expiry_date",
	"reminder_days", "document_url", "status", "created_at", "updated_at",
}

func certRow(c *model.Certification, reminders string, docURL interface{}) *sqlmock.Rows {
	return sqlmock.NewRows(certCols).AddRow(
		c.ID, c.UserID, c.Name, c.Provider, c.IssueDate, c.ExpiryDate,
		[]byte(reminders), docURL, c.Status, c.CreatedAt, c.UpdatedAt,
	)
}

func TestCertificationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cert := &model.Certification{
		ID:           "c1",
		UserID:       "u1",
		Name:         "AWS SAA",
		Provider:     "AWS",
		IssueDate:    "2024-01-01",
		ExpiryDate:   "2027-01-01",
		ReminderDays: []int{90, 60, 30, 7},
		Status:       model.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("INSERT INTO certifications").
		WithArgs(
			cert.ID, cert.UserID, cert.Name, cert.Provider, cert.IssueDate, cert.ExpiryDate,
			[]byte("[90,60,30,7]"), sql.NullString{}, cert.Status, cert.CreatedAt, cert.UpdatedAt,
		).
		WillReturnRows(certRow(cert, "[90,60,30,7]", nil))

	result, err := repo.Create(ctx, cert)

	assert.NoError(t, err)
	assert.Equal(t, "c1", result.ID)
	assert.Equal(t, []int{90, 60, 30, 7}, result.ReminderDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	t.Run("found with document url", func(t *testing.T) {
		cert := &model.Certification{ID: "c1", UserID: "u1", Name: "X", Provider: "Y",
			IssueDate: "2024-01-01", ExpiryDate: "2025-01-01", Status: model.StatusActive}

		mock.ExpectQuery("SELECT (.+) FROM certifications WHERE id = ?").
			WithArgs("c1").
			WillReturnRows(certRow(cert, "[30]", "https://bucket/u1/doc.pdf"))

		got, err := repo.FindByID(ctx, "c1")

		assert.NoError(t, err)
		assert.Equal(t, []int{30}, got.ReminderDays)
		assert.Equal(t, "https://bucket/u1/doc.pdf", got.DocumentURL)
	})

	t.Run("null document url scans to empty string", func(t *testing.T) {
		cert := &model.Certification{ID: "c1", UserID: "u1"}

		mock.ExpectQuery("SELECT (.+) FROM certifications WHERE id = ?").
			WithArgs("c1").
			WillReturnRows(certRow(cert, "[]", nil))

		got, err := repo.FindByID(ctx, "c1")

		assert.NoError(t, err)
		assert.Empty(t, got.DocumentURL)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM certifications WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestCertificationPostgres_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	t.Run("multiple rows", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(certCols).
			AddRow("c2", "u1", "B", "P", "2024-01-01", "2026-01-01", []byte("[30]"), nil, "active", now, now).
			AddRow("c1", "u1", "A", "P", "2023-01-01", "2024-01-01", []byte("[90,60,30,7]"), nil, "expired", now.Add(-time.Hour), now)

		mock.ExpectQuery("SELECT (.+) FROM certifications WHERE user_id = ?").
			WithArgs("u1").
			WillReturnRows(rows)

		certs, err := repo.ListByUser(ctx, "u1")

		assert.NoError(t, err)
		require.Len(t, certs, 2)
		assert.Equal(t, "c2", certs[0].ID)
		assert.Equal(t, "c1", certs[1].ID)
	})

	t.Run("no rows yields empty slice", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM certifications WHERE user_id = ?").
			WithArgs("u2").
			WillReturnRows(sqlmock.NewRows(certCols))

		certs, err := repo.ListByUser(ctx, "u2")

		assert.NoError(t, err)
		assert.NotNil(t, certs)
		assert.Empty(t, certs)
	})
}

func TestCertificationPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	cert := &model.Certification{
		ID:           "c1",
		UserID:       "u1",
		Name:         "Renamed",
		Provider:     "AWS",
		IssueDate:    "2024-01-01",
		ExpiryDate:   "2027-01-01",
		ReminderDays: []int{30},
		DocumentURL:  "https://bucket/u1/doc.pdf",
		Status:       model.StatusActive,
		UpdatedAt:    now,
	}

	mock.ExpectQuery("UPDATE certifications").
		WithArgs(
			cert.ID, cert.Name, cert.Provider, cert.IssueDate, cert.ExpiryDate,
			[]byte("[30]"), sql.NullString{String: cert.DocumentURL, Valid: true},
			cert.Status, cert.UpdatedAt,
		).
		WillReturnRows(certRow(cert, "[30]", cert.DocumentURL))

	result, err := repo.Update(ctx, cert)

	assert.NoError(t, err)
	assert.Equal(t, "Renamed", result.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM certifications WHERE id = ?").
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "c1"))
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM certifications WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, "missing"))
	})
}

func TestCertificationPostgres_FindByExpiryDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCertificationPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(certCols).
		AddRow("c1", "u1", "A", "P", "2024-01-01", "2025-07-15", []byte("[30]"), nil, "active", now, now).
		AddRow("c2", "u2", "B", "P", "2024-01-01", "2025-07-15", []byte("[30]"), nil, "active", now, now)

	mock.ExpectQuery("SELECT (.+) FROM certifications WHERE expiry_date = ?").
		WithArgs("2025-07-15").
		WillReturnRows(rows)

	certs, err := repo.FindByExpiryDate(ctx, "2025-07-15")

	assert.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "u2", certs[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
