package services

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/finmex/onboarding_backend/internal/dto"
)

// IncomeSvcFacade defines operations over a client's income declarations
type IncomeSvcFacade interface {
	// RecordIncome appends a new declaration for the client.
	RecordIncome(ctx context.Context, clientID string, req dto.RecordIncomeRequest, creatorUserID string) (*domain.IncomeDeclaration, error)

	// ListIncomes retrieves the client's declaration history, newest first.
	ListIncomes(ctx context.Context, clientID string) ([]domain.IncomeDeclaration, error)

	// GetLatestIncome retrieves the authoritative (most recent) declaration.
	GetLatestIncome(ctx context.Context, clientID string) (*domain.IncomeDeclaration, error)
}
