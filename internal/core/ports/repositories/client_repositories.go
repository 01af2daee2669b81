package repositories

import (
	"context"
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
)

// ClientListFilter carries the filters, pagination and sorting for client
// listing queries.
type ClientListFilter struct {
	PersonType *domain.PersonType
	Status     *domain.ClientStatus
	Search     string // Free text over name, tax id and email
	Limit      int
	Offset     int
	SortBy     string // Whitelisted column; repository applies client_id as tie-breaker
	SortDesc   bool
}

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a specific client by their ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByTaxID retrieves a client by tax id, for conflict pre-checks.
	FindClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error)

	// FindClientByEmail retrieves a client by email, for conflict pre-checks.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)

	// FindClients retrieves a filtered page of clients plus the total match count.
	FindClients(ctx context.Context, filter ClientListFilter) ([]domain.Client, int64, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient persists a new client. Uniqueness of tax id and email is
	// enforced by database constraints; violations surface as ErrDuplicate.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClientStatus sets a client's status.
	UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, updatedAt time.Time, updatedBy string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
