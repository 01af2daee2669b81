package services

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/finmex/onboarding_backend/internal/dto"
)

// DocumentCatalogSvc defines operations over the required-document catalog
type DocumentCatalogSvc interface {
	// RequiredTypesFor returns the catalog subset applicable to a person type.
	RequiredTypesFor(ctx context.Context, personType domain.PersonType) ([]domain.RequiredDocumentType, error)

	// ListDocumentTypes returns the full catalog.
	ListDocumentTypes(ctx context.Context) ([]domain.RequiredDocumentType, error)

	// CreateDocumentType adds a catalog entry.
	CreateDocumentType(ctx context.Context, req dto.CreateDocumentTypeRequest, creatorUserID string) (*domain.RequiredDocumentType, error)
}

// DocumentIntakeSvc defines operations over document submissions
type DocumentIntakeSvc interface {
	// SubmitDocument records a new submission for a stored document blob.
	SubmitDocument(ctx context.Context, req dto.SubmitDocumentRequest, storageURL string, creatorUserID string) (*domain.DocumentSubmission, error)

	// GetSubmissionByID retrieves a submission by ID.
	GetSubmissionByID(ctx context.Context, submissionID string) (*domain.DocumentSubmission, error)

	// ReviewDocument applies an approve/reject decision to a pending submission.
	ReviewDocument(ctx context.Context, submissionID string, decision domain.DocumentStatus, reviewerUserID string) (*domain.DocumentSubmission, error)
}

// CompletenessSvc computes the derived KYC completeness view
type CompletenessSvc interface {
	// ComputeCompleteness recomputes the aggregate from source records.
	ComputeCompleteness(ctx context.Context, clientID string) (*domain.Completeness, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentCatalogSvc
	DocumentIntakeSvc
	CompletenessSvc
}
