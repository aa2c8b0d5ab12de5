package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
)

// MockReturnArchiver is a mock implementation of port.ReturnArchiver.
type MockReturnArchiver struct {
	mock.Mock
}

func (m *MockReturnArchiver) ArchiveSubmission(ctx context.Context, doc *domain.ReturnDocument) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}
