package service

import "errors"

var (
	// ErrNotFound means no record exists under the requested ID.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the record exists but is owned by another user.
	// Kept distinct from ErrNotFound so handlers can answer 403 vs 404.
	ErrForbidden = errors.New("access denied")
	// ErrEmailTaken means the email is already registered.
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials covers unknown email and wrong password alike,
	// so responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrFileTooLarge means the upload exceeds the size ceiling.
	ErrFileTooLarge = errors.New("file size exceeds limit")
	// ErrFileTypeNotAllowed means the filename extension is outside the allow-list.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)

// MissingFieldError is a validation failure naming the absent required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}
