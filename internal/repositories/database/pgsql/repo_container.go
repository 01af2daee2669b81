package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:      newPgxClientRepository(dbPool),
		IncomeRepo:      newPgxIncomeRepository(dbPool),
		DocumentRepo:    newPgxDocumentRepository(dbPool),
		ApplicationRepo: newPgxApplicationRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
