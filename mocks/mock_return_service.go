package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbook/internal/compute"
	"gstbook/internal/domain"
	"gstbook/internal/service"
	"gstbook/internal/validator"
)

// MockReturnService is a mock implementation of service.ReturnService.
type MockReturnService struct {
	mock.Mock
}

func (m *MockReturnService) Open(ctx context.Context, input *service.OpenReturnInput) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnService) Get(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnService) ApplyUpdate(ctx context.Context, gstin string, period domain.ReturnPeriod, upd domain.Update) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnService) Totals(ctx context.Context, gstin string, period domain.ReturnPeriod) (*compute.Totals, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*compute.Totals), args.Error(1)
}

func (m *MockReturnService) Validate(ctx context.Context, gstin string, period domain.ReturnPeriod) (*validator.Report, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*validator.Report), args.Error(1)
}

func (m *MockReturnService) SaveDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) error {
	args := m.Called(ctx, gstin, period)
	return args.Error(0)
}

func (m *MockReturnService) PeekDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnService) RestoreDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnDocument), args.Error(1)
}

func (m *MockReturnService) Preview(ctx context.Context, gstin string, period domain.ReturnPeriod) (*service.PreviewResult, error) {
	args := m.Called(ctx, gstin, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PreviewResult), args.Error(1)
}

func (m *MockReturnService) Submit(ctx context.Context, input *service.SubmitInput) (*service.SubmissionResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SubmissionResult), args.Error(1)
}

func (m *MockReturnService) List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnSummary), args.Error(1)
}
