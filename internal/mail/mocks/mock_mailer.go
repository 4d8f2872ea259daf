package mocks

import (
	"context"

	"certtracker/internal/mail"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendExpiryReminder(ctx context.Context, r mail.ExpiryReminder) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
