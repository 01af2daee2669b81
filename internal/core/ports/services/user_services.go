package services

import (
	"context"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/finmex/onboarding_backend/internal/dto"
)

// UserSvcFacade defines operations over operator accounts
type UserSvcFacade interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// CreateUser creates a new operator account.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user on success,
	// ErrUnauthorized otherwise.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}
