package services

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/finmex/onboarding_backend/internal/dto"
)

// ApplicationSvcFacade defines operations over product applications
type ApplicationSvcFacade interface {
	// CreateApplication validates and creates an application in INITIATED
	// status with a generated folio. Product lines persist in input order.
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest, creatorUserID string) (*domain.ProductApplication, error)

	// GetApplicationByID retrieves an application with its product lines.
	GetApplicationByID(ctx context.Context, applicationID string) (*domain.ProductApplication, error)

	// TransitionApplication moves an application to targetStatus if the
	// transition table allows it from the current status.
	TransitionApplication(ctx context.Context, applicationID string, targetStatus domain.ApplicationStatus, observations string, updaterUserID string) (*domain.ProductApplication, error)
}
