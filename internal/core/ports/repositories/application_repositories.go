package repositories

import (
	"context"
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
)

// ApplicationReader defines read operations for product applications
type ApplicationReader interface {
	// FindApplicationByID retrieves an application with its product lines in
	// requested order.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.ProductApplication, error)

	// FindApplicationsByClientID retrieves a client's applications, newest
	// first, each with its product lines.
	FindApplicationsByClientID(ctx context.Context, clientID string) ([]domain.ProductApplication, error)
}

// ApplicationWriter defines write operations for product applications
type ApplicationWriter interface {
	// SaveApplication persists the application header and all product lines
	// in a single transaction. Either everything is written or nothing is.
	SaveApplication(ctx context.Context, application domain.ProductApplication) error

	// UpdateApplicationStatus performs a conditional single-row update from
	// fromStatus to toStatus, recording the transition timestamp. A zero-row
	// update against an existing row surfaces as ErrInvalidState.
	UpdateApplicationStatus(ctx context.Context, applicationID string, fromStatus, toStatus domain.ApplicationStatus, observations string, changedAt time.Time, changedBy string) error
}

// ApplicationRepositoryFacade combines all application repository interfaces
type ApplicationRepositoryFacade interface {
	ApplicationReader
	ApplicationWriter
}
