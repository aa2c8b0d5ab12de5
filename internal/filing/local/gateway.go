// Package local implements the filing gateway against no external tax
// network: it issues acknowledgement numbers itself. Production swaps
// this for a GSP-backed gateway behind the same port.
package local

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

type gateway struct {
	repo       port.ReturnRepository
	maxRetries int
	now        func() time.Time
}

// NewGateway creates a local FilingGateway. Issued ARNs are checked
// against the repository so a random collision can never hand two
// filings the same acknowledgement.
func NewGateway(repo port.ReturnRepository, maxRetries int) port.FilingGateway {
	if maxRetries < 1 {
		maxRetries = 5
	}
	return &gateway{repo: repo, maxRetries: maxRetries, now: time.Now}
}

func (g *gateway) File(ctx context.Context, doc *domain.ReturnDocument) (*port.FilingResult, error) {
	filedAt := g.now().UTC()

	for attempt := 0; attempt < g.maxRetries; attempt++ {
		arn := generateARN(filedAt)
		exists, err := g.repo.ARNExists(ctx, arn)
		if err != nil {
			return nil, fmt.Errorf("localGateway.File: %w", err)
		}
		if exists {
			log.Printf("local.Gateway: ARN collision on %s, retrying", arn)
			continue
		}
		return &port.FilingResult{ARN: arn, FiledAt: filedAt}, nil
	}

	return nil, fmt.Errorf("localGateway.File: %w", domain.ErrFilingFailed)
}

// generateARN builds "AB" + YYYYMMDD + a 6-digit suffix.
func generateARN(t time.Time) string {
	return fmt.Sprintf("AB%s%06d", t.Format("20060102"), 100000+rand.IntN(900000))
}
