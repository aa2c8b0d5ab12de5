package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"gstbook/internal/compute"
	"gstbook/internal/domain"
	"gstbook/internal/port"
	"gstbook/internal/validator"
)

// OpenReturnInput is the DTO for opening a working return session.
type OpenReturnInput struct {
	GSTIN     string
	LegalName string
	TradeName string
	Period    domain.ReturnPeriod
}

// SubmitInput is the DTO for submitting a return.
type SubmitInput struct {
	GSTIN              string
	Period             domain.ReturnPeriod
	ConfirmedLiability domain.Amount
	NotifyEmail        string
}

// SubmissionResult is the acknowledgement of a filed return.
type SubmissionResult struct {
	ARN     string              `json:"arn"`
	AckDate string              `json:"ack_date"`
	Totals  compute.Totals      `json:"totals"`
	Status  domain.ReturnStatus `json:"status"`
}

// PreviewResult pairs the computed summary with the validation report
// that gated the preview.
type PreviewResult struct {
	Document *domain.ReturnDocument `json:"document"`
	Totals   compute.Totals         `json:"totals"`
	Report   validator.Report       `json:"report"`
}

// ReturnService defines the return preparation and filing contract.
type ReturnService interface {
	Open(ctx context.Context, input *OpenReturnInput) (*domain.ReturnDocument, error)
	Get(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error)
	ApplyUpdate(ctx context.Context, gstin string, period domain.ReturnPeriod, upd domain.Update) (*domain.ReturnDocument, error)
	Totals(ctx context.Context, gstin string, period domain.ReturnPeriod) (*compute.Totals, error)
	Validate(ctx context.Context, gstin string, period domain.ReturnPeriod) (*validator.Report, error)
	SaveDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) error
	PeekDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error)
	RestoreDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error)
	Preview(ctx context.Context, gstin string, period domain.ReturnPeriod) (*PreviewResult, error)
	Submit(ctx context.Context, input *SubmitInput) (*SubmissionResult, error)
	List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error)
}

type returnService struct {
	repo     port.ReturnRepository
	gateway  port.FilingGateway
	engine   *validator.Engine
	email    port.EmailSender
	archiver port.ReturnArchiver

	mu       sync.Mutex
	sessions map[string]*domain.ReturnDocument
}

// NewReturnService creates a new ReturnService implementation. The email
// sender and archiver are optional; submission succeeds without them.
func NewReturnService(
	repo port.ReturnRepository,
	gateway port.FilingGateway,
	engine *validator.Engine,
	email port.EmailSender,
	archiver port.ReturnArchiver,
) ReturnService {
	return &returnService{
		repo:     repo,
		gateway:  gateway,
		engine:   engine,
		email:    email,
		archiver: archiver,
		sessions: make(map[string]*domain.ReturnDocument),
	}
}

func sessionKey(gstin string, period domain.ReturnPeriod) string {
	return gstin + ":" + period.Key()
}

func (s *returnService) Open(ctx context.Context, input *OpenReturnInput) (*domain.ReturnDocument, error) {
	if !input.Period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(input.GSTIN, input.Period)
	if doc, ok := s.sessions[key]; ok {
		return copyDoc(doc), nil
	}

	// A filed return for the period resumes read-only; anything else
	// starts a fresh draft.
	if filed, err := s.repo.GetSubmitted(ctx, input.GSTIN, input.Period); err == nil {
		s.sessions[key] = filed
		return copyDoc(filed), nil
	} else if !errors.Is(err, domain.ErrReturnNotFound) {
		return nil, fmt.Errorf("returnService.Open: %w", err)
	}

	doc := domain.NewReturnDocument(input.GSTIN, input.LegalName, input.TradeName, input.Period)
	s.sessions[key] = doc
	return copyDoc(doc), nil
}

func (s *returnService) Get(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return nil, err
	}
	return copyDoc(doc), nil
}

// currentLocked returns the working document for a period, faulting a
// submitted return in from the repository if no session exists yet.
// Callers must hold s.mu.
func (s *returnService) currentLocked(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	key := sessionKey(gstin, period)
	if doc, ok := s.sessions[key]; ok {
		return doc, nil
	}
	filed, err := s.repo.GetSubmitted(ctx, gstin, period)
	if err != nil {
		if errors.Is(err, domain.ErrReturnNotFound) {
			return nil, domain.ErrReturnNotFound
		}
		return nil, fmt.Errorf("returnService: %w", err)
	}
	s.sessions[key] = filed
	return filed, nil
}

func (s *returnService) ApplyUpdate(ctx context.Context, gstin string, period domain.ReturnPeriod, upd domain.Update) (*domain.ReturnDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return nil, err
	}
	if !doc.Status.Editable() {
		return nil, domain.ErrReturnSubmitted
	}

	updated, err := upd.Apply(*doc)
	if err != nil {
		return nil, err
	}
	// Any edit invalidates an earlier preview.
	if updated.Status == domain.StatusPreviewed {
		updated.Status = domain.StatusDraft
	}

	s.sessions[sessionKey(gstin, period)] = &updated
	return copyDoc(&updated), nil
}

func (s *returnService) Totals(ctx context.Context, gstin string, period domain.ReturnPeriod) (*compute.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return nil, err
	}
	totals := compute.ComputeTotals(doc)
	return &totals, nil
}

func (s *returnService) Validate(ctx context.Context, gstin string, period domain.ReturnPeriod) (*validator.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return nil, err
	}
	report := s.engine.Check(ctx, doc)
	return &report, nil
}

func (s *returnService) SaveDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return err
	}
	if doc.Status == domain.StatusSubmitted {
		return domain.ErrReturnSubmitted
	}
	// A failed save leaves the working document untouched; the caller
	// may retry.
	if err := s.repo.SaveDraft(ctx, doc); err != nil {
		return fmt.Errorf("returnService.SaveDraft: %w", err)
	}
	return nil
}

func (s *returnService) PeekDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	doc, err := s.repo.GetDraft(ctx, gstin, period)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("returnService.PeekDraft: %w", err)
	}
	return doc, nil
}

func (s *returnService) RestoreDraft(ctx context.Context, gstin string, period domain.ReturnPeriod) (*domain.ReturnDocument, error) {
	doc, err := s.repo.GetDraft(ctx, gstin, period)
	if err != nil {
		// A failed load never clobbers the current working document.
		if errors.Is(err, domain.ErrDraftNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("returnService.RestoreDraft: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.sessions[sessionKey(gstin, period)]; ok && current.Status == domain.StatusSubmitted {
		return nil, domain.ErrReturnSubmitted
	}
	s.sessions[sessionKey(gstin, period)] = doc
	return copyDoc(doc), nil
}

func (s *returnService) Preview(ctx context.Context, gstin string, period domain.ReturnPeriod) (*PreviewResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, gstin, period)
	if err != nil {
		return nil, err
	}
	if doc.Status == domain.StatusSubmitted {
		return nil, domain.ErrReturnSubmitted
	}

	report := s.engine.Check(ctx, doc)
	totals := compute.ComputeTotals(doc)

	// Outstanding errors keep the document a draft; the report tells
	// the caller what to fix.
	if report.Clean() {
		doc.Status = domain.StatusPreviewed
	}

	return &PreviewResult{Document: copyDoc(doc), Totals: totals, Report: report}, nil
}

func (s *returnService) Submit(ctx context.Context, input *SubmitInput) (*SubmissionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.currentLocked(ctx, input.GSTIN, input.Period)
	if err != nil {
		return nil, err
	}

	// A repeated submit returns the recorded acknowledgement instead of
	// filing twice.
	if doc.Status == domain.StatusSubmitted {
		return &SubmissionResult{
			ARN:     doc.BasicInfo.ARN,
			AckDate: doc.BasicInfo.AckDate,
			Totals:  compute.ComputeTotals(doc),
			Status:  doc.Status,
		}, nil
	}

	report := s.engine.Check(ctx, doc)
	if !report.Clean() {
		return nil, domain.ErrValidationFailed
	}

	totals := compute.ComputeTotals(doc)
	if !totals.NetTaxLiability.Equal(input.ConfirmedLiability) {
		return nil, domain.ErrConfirmationMismatch
	}

	result, err := s.gateway.File(ctx, doc)
	if err != nil {
		// Status is untouched on failure; the caller may retry.
		return nil, fmt.Errorf("returnService.Submit: %w", err)
	}

	doc.BasicInfo.ARN = result.ARN
	doc.BasicInfo.AckDate = result.FiledAt.Format("2006-01-02")
	doc.Status = domain.StatusSubmitted

	// The filing already happened; a persistence failure must not lose
	// the acknowledgement, so the submitted document stays in memory.
	if err := s.repo.MarkSubmitted(ctx, doc); err != nil {
		log.Printf("service.ReturnService: persisting submitted return %s/%s failed: %v", input.GSTIN, input.Period, err)
	}

	if s.archiver != nil {
		if loc, err := s.archiver.ArchiveSubmission(ctx, doc); err != nil {
			log.Printf("service.ReturnService: archiving return %s failed: %v", result.ARN, err)
		} else {
			log.Printf("service.ReturnService: archived return %s to %s", result.ARN, loc)
		}
	}
	if s.email != nil && input.NotifyEmail != "" {
		if err := s.email.SendFilingAcknowledgement(ctx, input.NotifyEmail, doc); err != nil {
			log.Printf("service.ReturnService: acknowledgement email for %s failed: %v", result.ARN, err)
		}
	}

	return &SubmissionResult{
		ARN:     result.ARN,
		AckDate: doc.BasicInfo.AckDate,
		Totals:  totals,
		Status:  doc.Status,
	}, nil
}

func (s *returnService) List(ctx context.Context, gstin string) ([]domain.ReturnSummary, error) {
	summaries, err := s.repo.List(ctx, gstin)
	if err != nil {
		return nil, fmt.Errorf("returnService.List: %w", err)
	}
	return summaries, nil
}

// copyDoc hands callers their own copy so session state can only change
// through ApplyUpdate.
func copyDoc(doc *domain.ReturnDocument) *domain.ReturnDocument {
	c := *doc
	return &c
}
