// Package noop provides an EmailSender that only logs. It is the default
// provider for development and test environments.
package noop

import (
	"context"
	"log"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendFilingAcknowledgement(_ context.Context, to string, doc *domain.ReturnDocument) error {
	log.Printf("noop.EmailSender: would send filing acknowledgement for %s/%s (ARN %s) to %s",
		doc.BasicInfo.GSTIN, doc.Period, doc.BasicInfo.ARN, to)
	return nil
}
