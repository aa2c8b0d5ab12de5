package port

import (
	"context"

	"gstbook/internal/domain"
)

// ReturnArchiver defines the contract for archiving a frozen copy of a
// submitted return to object storage.
type ReturnArchiver interface {
	ArchiveSubmission(ctx context.Context, doc *domain.ReturnDocument) (string, error)
}
