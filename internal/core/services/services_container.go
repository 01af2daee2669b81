package services

import (
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo, repos.IncomeRepo, repos.DocumentRepo, repos.ApplicationRepo)
	container.Income = NewIncomeService(repos.IncomeRepo, repos.ClientRepo)
	container.Document = NewDocumentService(repos.DocumentRepo, repos.ClientRepo)
	container.Application = NewApplicationService(repos.ApplicationRepo, repos.ClientRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
