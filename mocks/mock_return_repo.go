package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
)

// MockReturnRepo is a mock implementation of port.ReturnRepository.
type MockReturnRepo struct {
	mock.Mock
}

func (m *MockReturnRepo) SaveDraft(ctx context.Context, doc *domain.ReturnDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockReturnRepo) GetDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnRepo) MarkSubmitted(ctx context.Context, doc *domain.ReturnDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockReturnRepo) GetSubmitted(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnRepo) List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnSummary), args.Error(1)
}

func (m *MockReturnRepo) ARNExists(ctx context.Context, arn string) (bool, error) {
	args := m.Called(ctx, arn)
	return args.Bool(0), args.Error(1)
}
