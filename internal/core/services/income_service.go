package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
)

// incomeService owns a client's declared income history. Declarations are
// append-only; the most recent one is authoritative.
type incomeService struct {
	incomeRepo portsrepo.IncomeRepositoryFacade
	clientRepo portsrepo.ClientReader
}

// NewIncomeService creates a new IncomeService.
func NewIncomeService(incomeRepo portsrepo.IncomeRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.IncomeSvcFacade {
	return &incomeService{incomeRepo: incomeRepo, clientRepo: clientRepo}
}

var _ portssvc.IncomeSvcFacade = (*incomeService)(nil)

// RecordIncome appends a new declaration for an existing client.
func (s *incomeService) RecordIncome(ctx context.Context, clientID string, req dto.RecordIncomeRequest, creatorUserID string) (*domain.IncomeDeclaration, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	if req.AnnualAmount.IsNegative() {
		return nil, fmt.Errorf("%w: annualAmount must be non-negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	income := domain.IncomeDeclaration{
		IncomeID:         uuid.NewString(),
		ClientID:         clientID,
		Sector:           req.Sector,
		EconomicActivity: req.EconomicActivity,
		AnnualAmount:     req.AnnualAmount,
		CurrencyCode:     strings.ToUpper(req.CurrencyCode),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		logger.Error("Failed to save income declaration", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to record income: %w", err)
	}

	logger.Info("Income declaration recorded", slog.String("client_id", clientID), slog.String("income_id", income.IncomeID))
	return &income, nil
}

// ListIncomes returns the client's declaration history, newest first.
func (s *incomeService) ListIncomes(ctx context.Context, clientID string) ([]domain.IncomeDeclaration, error) {
	incomes, err := s.incomeRepo.FindIncomesByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes for client %s: %w", clientID, err)
	}
	if incomes == nil {
		incomes = []domain.IncomeDeclaration{}
	}
	return incomes, nil
}

// GetLatestIncome returns the authoritative declaration for the client.
func (s *incomeService) GetLatestIncome(ctx context.Context, clientID string) (*domain.IncomeDeclaration, error) {
	return s.incomeRepo.FindLatestIncomeByClientID(ctx, clientID)
}
