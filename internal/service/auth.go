package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"certtracker/internal/auth"
	"certtracker/internal/config"
	"certtracker/internal/model"
	"certtracker/internal/repository"
)

// AuthService defines registration and credential verification use cases.
// Both operations return the user together with a freshly issued bearer token.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, jwt config.JWTConfig) AuthService {
	return &authService{users: users, jwt: jwt}
}

func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = normalizeEmail(email)
	switch {
	case email == "":
		return nil, "", &MissingFieldError{Field: "email"}
	case password == "":
		return nil, "", &MissingFieldError{Field: "password"}
	case name == "":
		return nil, "", &MissingFieldError{Field: "name"}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	stored, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(stored)
	if err != nil {
		return nil, "", err
	}
	return stored, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	switch {
	case email == "":
		return nil, "", &MissingFieldError{Field: "email"}
	case password == "":
		return nil, "", &MissingFieldError{Field: "password"}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) issueToken(user *model.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, []byte(s.jwt.Secret), s.jwt.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
