package port

import (
	"context"

	"gstbook/internal/domain"
)

// EmailSender defines the contract for sending filing notifications.
type EmailSender interface {
	SendFilingAcknowledgement(ctx context.Context, to string, doc *domain.ReturnDocument) error
}
