package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"certtracker/internal/auth"
	"certtracker/internal/config"
	"certtracker/internal/model"
	repoMocks "certtracker/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJWT = config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, sql.ErrNoRows)
		mRepo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			if u.ID == "" || u.Email != "a@x.com" || u.Name != "A" {
				return false
			}
			// Plaintext must never be stored.
			return u.PasswordHash != "p1" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("p1")) == nil
		})).Return(func(ctx context.Context, u *model.User) *model.User { return u }, nil)

		user, token, err := svc.Register(ctx, "A@X.com ", "p1", "A")
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)

		claims, err := auth.ParseToken(token, []byte(testJWT.Secret))
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "a@x.com", claims.Email)

		mRepo.AssertExpectations(t)
	})

	t.Run("email already registered", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "a@x.com").Return(&model.User{ID: "u1", Email: "a@x.com"}, nil)

		_, _, err := svc.Register(ctx, "a@x.com", "p1", "A")
		assert.ErrorIs(t, err, ErrEmailTaken)
		mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields never reach storage", func(t *testing.T) {
		tests := []struct {
			email, password, name, field string
		}{
			{"", "p", "n", "email"},
			{"a@x.com", "", "n", "password"},
			{"a@x.com", "p", "", "name"},
		}
		for _, tt := range tests {
			mRepo := new(repoMocks.MockUserRepository)
			svc := NewAuthService(mRepo, testJWT)

			_, _, err := svc.Register(ctx, tt.email, tt.password, tt.name)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
			mRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
			mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "a@x.com").Return(nil, errors.New("db down"))

		_, _, err := svc.Register(ctx, "a@x.com", "p1", "A")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("p1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{ID: "u1", Email: "a@x.com", Name: "A", PasswordHash: string(hash)}

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "a@x.com").Return(stored, nil)

		user, token, err := svc.Login(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)

		claims, err := auth.ParseToken(token, []byte(testJWT.Secret))
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
	})

	t.Run("unknown email", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "b@x.com").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "b@x.com", "p1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		mRepo.On("FindByEmail", ctx, "a@x.com").Return(stored, nil)

		_, _, err := svc.Login(ctx, "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		mRepo := new(repoMocks.MockUserRepository)
		svc := NewAuthService(mRepo, testJWT)

		_, _, err := svc.Login(ctx, "a@x.com", "")
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "password", missing.Field)
	})
}
