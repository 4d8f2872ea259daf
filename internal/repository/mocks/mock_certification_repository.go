package mocks

import (
	"context"

	"certtracker/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCertificationRepository struct {
	mock.Mock
}

func (m *MockCertificationRepository) Create(ctx context.Context, cert *model.Certification) (*model.Certification, error) {
	args := m.Called(ctx, cert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.Certification) *model.Certification); ok {
		return f(ctx, cert), args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationRepository) FindByID(ctx context.Context, id string) (*model.Certification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationRepository) ListByUser(ctx context.Context, userID string) ([]model.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Certification), args.Error(1)
}

func (m *MockCertificationRepository) Update(ctx context.Context, cert *model.Certification) (*model.Certification, error) {
	args := m.Called(ctx, cert)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(context.Context, *model.Certification) *model.Certification); ok {
		return f(ctx, cert), args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCertificationRepository) FindByExpiryDate(ctx context.Context, date string) ([]model.Certification, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Certification), args.Error(1)
}
