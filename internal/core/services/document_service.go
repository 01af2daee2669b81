package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
)

// documentService coordinates the required-document catalog, submission
// intake and review, and the derived completeness view. Completeness is
// recomputed from source records on every query; there are no incremental
// counters that could drift.
type documentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	clientRepo   portsrepo.ClientReader
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.DocumentSvcFacade {
	return &documentService{documentRepo: documentRepo, clientRepo: clientRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// RequiredTypesFor returns the catalog subset applicable to the person type.
func (s *documentService) RequiredTypesFor(ctx context.Context, personType domain.PersonType) ([]domain.RequiredDocumentType, error) {
	if !personType.IsValid() {
		return nil, fmt.Errorf("%w: unknown person type %q", apperrors.ErrValidation, personType)
	}
	types, err := s.documentRepo.FindDocTypesForPersonType(ctx, personType)
	if err != nil {
		return nil, fmt.Errorf("failed to load required types for %s: %w", personType, err)
	}
	if types == nil {
		types = []domain.RequiredDocumentType{}
	}
	return types, nil
}

// ListDocumentTypes returns the full catalog.
func (s *documentService) ListDocumentTypes(ctx context.Context) ([]domain.RequiredDocumentType, error) {
	types, err := s.documentRepo.ListDocTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	if types == nil {
		types = []domain.RequiredDocumentType{}
	}
	return types, nil
}

// CreateDocumentType adds a catalog entry.
func (s *documentService) CreateDocumentType(ctx context.Context, req dto.CreateDocumentTypeRequest, creatorUserID string) (*domain.RequiredDocumentType, error) {
	applicability := make(map[domain.PersonType]bool, len(req.AppliesTo))
	for _, pt := range req.AppliesTo {
		personType := domain.PersonType(pt)
		if !personType.IsValid() {
			return nil, fmt.Errorf("%w: unknown person type %q in appliesTo", apperrors.ErrValidation, pt)
		}
		applicability[personType] = true
	}

	now := time.Now().UTC()
	docType := domain.RequiredDocumentType{
		DocTypeID:     uuid.NewString(),
		Name:          req.Name,
		Applicability: applicability,
		ValidityDays:  req.ValidityDays,
		Optional:      req.Optional,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveDocType(ctx, docType); err != nil {
		return nil, fmt.Errorf("failed to create document type: %w", err)
	}
	return &docType, nil
}

// SubmitDocument records a submission for an already-stored blob. The type
// must exist and apply to the client's person type; the expiration is
// derived from the type's validity period and the document date.
func (s *documentService) SubmitDocument(ctx context.Context, req dto.SubmitDocumentRequest, storageURL string, creatorUserID string) (*domain.DocumentSubmission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	docType, err := s.documentRepo.FindDocTypeByID(ctx, req.DocTypeID)
	if err != nil {
		return nil, err
	}
	if !docType.AppliesTo(client.PersonType) {
		return nil, fmt.Errorf("%w: document type %s does not apply to person type %s", apperrors.ErrValidation, docType.Name, client.PersonType)
	}

	documentDate, err := time.Parse(dateLayout, req.DocumentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: documentDate must be a valid %s date", apperrors.ErrValidation, dateLayout)
	}

	now := time.Now().UTC()
	submission := domain.DocumentSubmission{
		SubmissionID: uuid.NewString(),
		ClientID:     client.ClientID,
		DocTypeID:    docType.DocTypeID,
		StorageURL:   storageURL,
		DocumentDate: documentDate,
		ExpiresAt:    docType.ExpiryFor(documentDate),
		Status:       domain.DocumentStatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.documentRepo.SaveSubmission(ctx, submission); err != nil {
		logger.Error("Failed to save document submission", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to submit document: %w", err)
	}

	logger.Info("Document submitted", slog.String("client_id", client.ClientID), slog.String("doc_type_id", docType.DocTypeID), slog.String("submission_id", submission.SubmissionID))
	return &submission, nil
}

// GetSubmissionByID retrieves a submission by ID.
func (s *documentService) GetSubmissionByID(ctx context.Context, submissionID string) (*domain.DocumentSubmission, error) {
	return s.documentRepo.FindSubmissionByID(ctx, submissionID)
}

// ReviewDocument applies an approve/reject decision to a pending submission.
// The repository performs a conditional update against the stored PENDING
// status, so a concurrent reviewer losing the race gets ErrInvalidState.
func (s *documentService) ReviewDocument(ctx context.Context, submissionID string, decision domain.DocumentStatus, reviewerUserID string) (*domain.DocumentSubmission, error) {
	if decision != domain.DocumentStatusApproved && decision != domain.DocumentStatusRejected {
		return nil, fmt.Errorf("%w: review decision must be %s or %s", apperrors.ErrValidation, domain.DocumentStatusApproved, domain.DocumentStatusRejected)
	}

	now := time.Now().UTC()
	if err := s.documentRepo.UpdateSubmissionStatus(ctx, submissionID, domain.DocumentStatusPending, decision, now, reviewerUserID); err != nil {
		return nil, err
	}

	submission, err := s.documentRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload submission %s after review: %w", submissionID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Document reviewed", slog.String("submission_id", submissionID), slog.String("decision", string(decision)))
	return submission, nil
}

// ComputeCompleteness recomputes the derived KYC aggregate for the client
// from the required type set and the full submission history.
func (s *documentService) ComputeCompleteness(ctx context.Context, clientID string) (*domain.Completeness, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	required, err := s.documentRepo.FindDocTypesForPersonType(ctx, client.PersonType)
	if err != nil {
		return nil, fmt.Errorf("failed to load required types for client %s: %w", clientID, err)
	}
	submissions, err := s.documentRepo.FindSubmissionsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for client %s: %w", clientID, err)
	}

	completeness := domain.ComputeCompleteness(required, submissions, time.Now().UTC())
	return &completeness, nil
}
