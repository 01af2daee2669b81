package services

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/finmex/onboarding_backend/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClientByID retrieves a client together with its income history,
	// document submissions and product applications (read-time join).
	GetClientByID(ctx context.Context, clientID string) (*domain.ClientDetail, error)

	// ListClients retrieves a filtered page of clients plus the total match count.
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// RegisterClient validates and creates a new client in ACTIVE status.
	RegisterClient(ctx context.Context, req dto.RegisterClientRequest, creatorUserID string) (*domain.Client, error)

	// UpdateClientStatus sets the client's lifecycle status.
	UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, updaterUserID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
