package repository

import (
	"context"

	"certtracker/internal/model"
)

// Package repository contains data access abstractions. Implementations live
// in subpackages (postgres) and contain no business logic; not-found is
// reported as sql.ErrNoRows and translated by the service layer.

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	// Create inserts a new user row and returns the stored record.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByEmail returns the user registered under the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)
}

// CertificationRepository defines persistence for certification records.
type CertificationRepository interface {
	// Create inserts a new certification row and returns the stored record.
	Create(ctx context.Context, cert *model.Certification) (*model.Certification, error)

	// FindByID returns a certification by its ID regardless of owner.
	// Ownership checks belong to the service layer.
	FindByID(ctx context.Context, id string) (*model.Certification, error)

	// ListByUser returns all certifications owned by the given user,
	// newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Certification, error)

	// Update overwrites an existing row with the given record.
	Update(ctx context.Context, cert *model.Certification) (*model.Certification, error)

	// Delete removes a certification by ID. It returns nil if the row was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// FindByExpiryDate returns every certification whose expiry date equals
	// the given YYYY-MM-DD date exactly.
	FindByExpiryDate(ctx context.Context, date string) ([]model.Certification, error)
}
