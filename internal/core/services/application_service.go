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
	"github.com/finmex/onboarding_backend/internal/utils"
)

// applicationService owns product applications and their status workflow.
// Transitions are validated against the domain transition table and enforced
// by a conditional single-row update in the repository.
type applicationService struct {
	applicationRepo portsrepo.ApplicationRepositoryFacade
	clientRepo      portsrepo.ClientReader
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(applicationRepo portsrepo.ApplicationRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.ApplicationSvcFacade {
	return &applicationService{applicationRepo: applicationRepo, clientRepo: clientRepo}
}

var _ portssvc.ApplicationSvcFacade = (*applicationService)(nil)

// CreateApplication validates the product lines and creates the application
// in INITIATED status. The repository persists the header and all lines in
// one transaction; there is no partial success.
func (s *applicationService) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest, creatorUserID string) (*domain.ProductApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}

	if len(req.Products) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	applicationID := uuid.NewString()

	products := make([]domain.RequestedProduct, len(req.Products))
	for i, line := range req.Products {
		code := domain.ProductCode(line.ProductCode)
		if !code.IsValid() {
			return nil, fmt.Errorf("%w: unknown product code %q", apperrors.ErrValidation, line.ProductCode)
		}
		if line.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must be non-negative for product %s", apperrors.ErrValidation, code)
		}
		if code.IsCredit() {
			if line.TermMonths == nil || *line.TermMonths < 1 {
				return nil, fmt.Errorf("%w: termMonths >= 1 is required for credit product %s", apperrors.ErrValidation, code)
			}
		}
		products[i] = domain.RequestedProduct{
			ProductID:     uuid.NewString(),
			ApplicationID: applicationID,
			LineNo:        i + 1, // Preserve input order
			ProductCode:   code,
			Amount:        line.Amount,
			TermMonths:    line.TermMonths,
			Observations:  line.Observations,
		}
	}

	folio, err := utils.GenerateFolio(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate folio: %w", err)
	}

	application := domain.ProductApplication{
		ApplicationID:   applicationID,
		ClientID:        client.ClientID,
		Folio:           folio,
		Status:          domain.ApplicationStatusInitiated,
		Observations:    req.Observations,
		StatusChangedAt: now,
		Products:        products,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.applicationRepo.SaveApplication(ctx, application); err != nil {
		logger.Error("Failed to save application", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	logger.Info("Application created", slog.String("application_id", applicationID), slog.String("folio", folio), slog.Int("products", len(products)))
	return &application, nil
}

// GetApplicationByID retrieves an application with its product lines.
func (s *applicationService) GetApplicationByID(ctx context.Context, applicationID string) (*domain.ProductApplication, error) {
	return s.applicationRepo.FindApplicationByID(ctx, applicationID)
}

// TransitionApplication moves the application to targetStatus when the
// transition table allows it. The repository update is conditional on the
// status read here, so two operators racing on the same application cannot
// both win; the loser gets ErrInvalidState.
func (s *applicationService) TransitionApplication(ctx context.Context, applicationID string, targetStatus domain.ApplicationStatus, observations string, updaterUserID string) (*domain.ProductApplication, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !targetStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown application status %q", apperrors.ErrValidation, targetStatus)
	}

	application, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if !application.Status.CanTransitionTo(targetStatus) {
		return nil, fmt.Errorf("%w: cannot transition application from %s to %s", apperrors.ErrInvalidState, application.Status, targetStatus)
	}

	now := time.Now().UTC()
	if err := s.applicationRepo.UpdateApplicationStatus(ctx, applicationID, application.Status, targetStatus, observations, now, updaterUserID); err != nil {
		return nil, err
	}

	updated, err := s.applicationRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload application %s after transition: %w", applicationID, err)
	}
	logger.Info("Application transitioned", slog.String("application_id", applicationID), slog.String("from", string(application.Status)), slog.String("to", string(targetStatus)))
	return updated, nil
}
