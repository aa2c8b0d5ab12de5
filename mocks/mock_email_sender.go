package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbook/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendFilingAcknowledgement(ctx context.Context, to string, doc *domain.ReturnDocument) error {
	args := m.Called(ctx, to, doc)
	return args.Error(0)
}
