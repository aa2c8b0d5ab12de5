package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

// MockFilingGateway is a mock implementation of port.FilingGateway.
type MockFilingGateway struct {
	mock.Mock
}

func (m *MockFilingGateway) File(ctx context.Context, doc *domain.ReturnDocument) (*port.FilingResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.FilingResult), args.Error(1)
}
