package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"certtracker/internal/model"
	"certtracker/internal/repository"
)

// CreateCertificationInput carries the fields of a new certification.
type CreateCertificationInput struct {
	Name         string `json:"name"`
	Provider     string `json:"provider"`
	IssueDate    string `json:"issueDate"`
	ExpiryDate   string `json:"expiryDate"`
	ReminderDays []int  `json:"reminderDays"`
	DocumentURL  string `json:"documentUrl"`
}

// UpdateCertificationInput carries a partial update: only non-nil fields
// overwrite the stored record. Status and UpdatedAt are always recomputed
// server-side and cannot be supplied by the caller.
type UpdateCertificationInput struct {
	Name         *string `json:"name"`
	Provider     *string `json:"provider"`
	IssueDate    *string `json:"issueDate"`
	ExpiryDate   *string `json:"expiryDate"`
	ReminderDays *[]int  `json:"reminderDays"`
	DocumentURL  *string `json:"documentUrl"`
}

// CertificationService defines the ownership-scoped certification use cases.
// Every operation takes the authenticated caller's user ID; records owned by
// another user yield ErrForbidden, never ErrNotFound.
type CertificationService interface {
	List(ctx context.Context, userID string) ([]model.Certification, error)
	Get(ctx context.Context, userID, certID string) (*model.Certification, error)
	Create(ctx context.Context, userID string, in CreateCertificationInput) (*model.Certification, error)
	Update(ctx context.Context, userID, certID string, in UpdateCertificationInput) (*model.Certification, error)
	Delete(ctx context.Context, userID, certID string) error
}

type certificationService struct {
	repo repository.CertificationRepository
	now  func() time.Time
}

// NewCertificationService constructs a new CertificationService.
func NewCertificationService(repo repository.CertificationRepository) CertificationService {
	return &certificationService{repo: repo, now: time.Now}
}

// List returns the caller's certifications with freshly computed statuses.
func (s *certificationService) List(ctx context.Context, userID string) ([]model.Certification, error) {
	certs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.now().UTC()
	for i := range certs {
		certs[i].Status = model.ClassifyStatus(certs[i].ExpiryDate, today)
	}
	return certs, nil
}

// Get returns one certification after verifying ownership.
func (s *certificationService) Get(ctx context.Context, userID, certID string) (*model.Certification, error) {
	cert, err := s.findOwned(ctx, userID, certID)
	if err != nil {
		return nil, err
	}
	cert.Status = model.ClassifyStatus(cert.ExpiryDate, s.now().UTC())
	return cert, nil
}

// Create validates required fields, applies the default reminder schedule,
// and persists a new record owned by the caller.
func (s *certificationService) Create(ctx context.Context, userID string, in CreateCertificationInput) (*model.Certification, error) {
	switch {
	case in.Name == "":
		return nil, &MissingFieldError{Field: "name"}
	case in.Provider == "":
		return nil, &MissingFieldError{Field: "provider"}
	case in.IssueDate == "":
		return nil, &MissingFieldError{Field: "issueDate"}
	case in.ExpiryDate == "":
		return nil, &MissingFieldError{Field: "expiryDate"}
	}

	reminders := in.ReminderDays
	if reminders == nil {
		reminders = model.DefaultReminderDays
	}

	now := s.now().UTC()
	cert := &model.Certification{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         in.Name,
		Provider:     in.Provider,
		IssueDate:    in.IssueDate,
		ExpiryDate:   in.ExpiryDate,
		ReminderDays: reminders,
		DocumentURL:  in.DocumentURL,
		Status:       model.ClassifyStatus(in.ExpiryDate, now),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	stored, err := s.repo.Create(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("create certification: %w", err)
	}
	return stored, nil
}

// Update merges the supplied fields into the stored record. Absent fields
// are left untouched; status and updatedAt are always refreshed.
func (s *certificationService) Update(ctx context.Context, userID, certID string, in UpdateCertificationInput) (*model.Certification, error) {
	cert, err := s.findOwned(ctx, userID, certID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		cert.Name = *in.Name
	}
	if in.Provider != nil {
		cert.Provider = *in.Provider
	}
	if in.IssueDate != nil {
		cert.IssueDate = *in.IssueDate
	}
	if in.ExpiryDate != nil {
		cert.ExpiryDate = *in.ExpiryDate
	}
	if in.ReminderDays != nil {
		cert.ReminderDays = *in.ReminderDays
	}
	if in.DocumentURL != nil {
		cert.DocumentURL = *in.DocumentURL
	}

	now := s.now().UTC()
	cert.Status = model.ClassifyStatus(cert.ExpiryDate, now)
	cert.UpdatedAt = now

	stored, err := s.repo.Update(ctx, cert)
	if err != nil {
		return nil, fmt.Errorf("update certification: %w", err)
	}
	return stored, nil
}

// Delete removes the caller's certification. Hard delete, no tombstone; any
// referenced document object is left in place.
func (s *certificationService) Delete(ctx context.Context, userID, certID string) error {
	if _, err := s.findOwned(ctx, userID, certID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, certID)
}

// findOwned loads a certification and enforces the ownership invariant.
func (s *certificationService) findOwned(ctx context.Context, userID, certID string) (*model.Certification, error) {
	cert, err := s.repo.FindByID(ctx, certID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cert.UserID != userID {
		return nil, ErrForbidden
	}
	return cert, nil
}
