package repositories

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
)

// IncomeReader defines read operations for income declarations
type IncomeReader interface {
	// FindIncomesByClientID retrieves a client's income history, newest first.
	FindIncomesByClientID(ctx context.Context, clientID string) ([]domain.IncomeDeclaration, error)

	// FindLatestIncomeByClientID retrieves the most recent declaration, or
	// ErrNotFound when the client has none.
	FindLatestIncomeByClientID(ctx context.Context, clientID string) (*domain.IncomeDeclaration, error)
}

// IncomeWriter defines write operations for income declarations
type IncomeWriter interface {
	// SaveIncome appends a new declaration. History is never overwritten.
	SaveIncome(ctx context.Context, income domain.IncomeDeclaration) error
}

// IncomeRepositoryFacade combines all income-related repository interfaces
type IncomeRepositoryFacade interface {
	IncomeReader
	IncomeWriter
}
