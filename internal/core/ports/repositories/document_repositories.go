package repositories

import (
	"context"
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
)

// DocumentTypeReader defines read operations over the required-document catalog
type DocumentTypeReader interface {
	// FindDocTypeByID retrieves a catalog entry by ID.
	FindDocTypeByID(ctx context.Context, docTypeID string) (*domain.RequiredDocumentType, error)

	// FindDocTypesForPersonType retrieves the catalog subset applicable to a person type.
	FindDocTypesForPersonType(ctx context.Context, personType domain.PersonType) ([]domain.RequiredDocumentType, error)

	// ListDocTypes retrieves the full catalog.
	ListDocTypes(ctx context.Context) ([]domain.RequiredDocumentType, error)
}

// DocumentTypeWriter defines write operations over the required-document catalog
type DocumentTypeWriter interface {
	// SaveDocType persists a new catalog entry.
	SaveDocType(ctx context.Context, docType domain.RequiredDocumentType) error
}

// SubmissionReader defines read operations for document submissions
type SubmissionReader interface {
	// FindSubmissionByID retrieves a submission by ID.
	FindSubmissionByID(ctx context.Context, submissionID string) (*domain.DocumentSubmission, error)

	// FindSubmissionsByClientID retrieves a client's submission history, newest first.
	FindSubmissionsByClientID(ctx context.Context, clientID string) ([]domain.DocumentSubmission, error)
}

// SubmissionWriter defines write operations for document submissions
type SubmissionWriter interface {
	// SaveSubmission persists a new submission.
	SaveSubmission(ctx context.Context, submission domain.DocumentSubmission) error

	// UpdateSubmissionStatus performs a conditional single-row update from
	// fromStatus to toStatus. A zero-row update against an existing row
	// surfaces as ErrInvalidState so lost review races are reported
	// precisely, never as a generic failure.
	UpdateSubmissionStatus(ctx context.Context, submissionID string, fromStatus, toStatus domain.DocumentStatus, updatedAt time.Time, updatedBy string) error
}

// DocumentRepositoryFacade combines catalog and submission repository interfaces
type DocumentRepositoryFacade interface {
	DocumentTypeReader
	DocumentTypeWriter
	SubmissionReader
	SubmissionWriter
}
