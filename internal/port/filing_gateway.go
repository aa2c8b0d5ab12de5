package port

import (
	"context"
	"time"

	"gstbook/internal/domain"
)

// FilingResult is the acknowledgement returned by a successful filing.
type FilingResult struct {
	ARN     string
	FiledAt time.Time
}

// FilingGateway defines the contract for submitting a completed return
// to the tax network. File either succeeds and returns an acknowledgement
// or fails without side effects; a failed call may be retried.
type FilingGateway interface {
	File(ctx context.Context, doc *domain.ReturnDocument) (*FilingResult, error)
}
