package mocks

import (
	"context"

	"certtracker/internal/model"
	"certtracker/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

type MockCertificationService struct {
	mock.Mock
}

func (m *MockCertificationService) List(ctx context.Context, userID string) ([]model.Certification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Certification), args.Error(1)
}

func (m *MockCertificationService) Get(ctx context.Context, userID, certID string) (*model.Certification, error) {
	args := m.Called(ctx, userID, certID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationService) Create(ctx context.Context, userID string, in service.CreateCertificationInput) (*model.Certification, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationService) Update(ctx context.Context, userID, certID string, in service.UpdateCertificationInput) (*model.Certification, error) {
	args := m.Called(ctx, userID, certID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certification), args.Error(1)
}

func (m *MockCertificationService) Delete(ctx context.Context, userID, certID string) error {
	args := m.Called(ctx, userID, certID)
	return args.Error(0)
}

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, userID, filename string, content []byte, contentType string) (*service.UploadResult, error) {
	args := m.Called(ctx, userID, filename, content, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, userID, key string) error {
	args := m.Called(ctx, userID, key)
	return args.Error(0)
}
