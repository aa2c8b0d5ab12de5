package port

import (
	"context"

	"gstbook/internal/domain"
)

// ReturnRepository defines the contract for return persistence.
// All query methods include the GSTIN so one registration can never read
// another's returns. Drafts are keyed by (gstin, period); each period
// holds at most one draft and at most one submitted return.
type ReturnRepository interface {
	SaveDraft(ctx context.Context, doc *domain.ReturnDocument) error
	GetDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error)
	MarkSubmitted(ctx context.Context, doc *domain.ReturnDocument) error
	GetSubmitted(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error)
	List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error)
	ARNExists(ctx context.Context, arn string) (bool, error)
}
