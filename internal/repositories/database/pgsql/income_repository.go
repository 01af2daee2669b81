package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	"github.com/finmex/onboarding_backend/internal/models"
)

type PgxIncomeRepository struct {
	db *pgxpool.Pool
}

func newPgxIncomeRepository(db *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{db: db}
}

// Ensure PgxIncomeRepository implements portsrepo.IncomeRepositoryFacade
var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

// Helper to convert domain.IncomeDeclaration to models.IncomeDeclaration
func toModelIncome(d domain.IncomeDeclaration) models.IncomeDeclaration {
	return models.IncomeDeclaration{
		IncomeID:         d.IncomeID,
		ClientID:         d.ClientID,
		Sector:           d.Sector,
		EconomicActivity: d.EconomicActivity,
		AnnualAmount:     d.AnnualAmount,
		CurrencyCode:     d.CurrencyCode,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.IncomeDeclaration to domain.IncomeDeclaration
func toDomainIncome(m models.IncomeDeclaration) domain.IncomeDeclaration {
	return domain.IncomeDeclaration{
		IncomeID:         m.IncomeID,
		ClientID:         m.ClientID,
		Sector:           m.Sector,
		EconomicActivity: m.EconomicActivity,
		AnnualAmount:     m.AnnualAmount,
		CurrencyCode:     m.CurrencyCode,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const incomeColumns = `income_id, client_id, sector, economic_activity, annual_amount, currency_code,
		created_at, created_by, last_updated_at, last_updated_by`

func scanIncome(row pgx.Row) (models.IncomeDeclaration, error) {
	var m models.IncomeDeclaration
	err := row.Scan(
		&m.IncomeID,
		&m.ClientID,
		&m.Sector,
		&m.EconomicActivity,
		&m.AnnualAmount,
		&m.CurrencyCode,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.IncomeDeclaration) error {
	m := toModelIncome(income)
	query := `
		INSERT INTO income_declarations (income_id, client_id, sector, economic_activity, annual_amount,
			currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.IncomeID,
		m.ClientID,
		m.Sector,
		m.EconomicActivity,
		m.AnnualAmount,
		m.CurrencyCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save income declaration: %w", err)
	}
	return nil
}

func (r *PgxIncomeRepository) FindIncomesByClientID(ctx context.Context, clientID string) ([]domain.IncomeDeclaration, error) {
	query := `SELECT ` + incomeColumns + ` FROM income_declarations WHERE client_id = $1 ORDER BY created_at DESC, income_id;`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes for client %s: %w", clientID, err)
	}
	defer rows.Close()

	incomes := []domain.IncomeDeclaration{}
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, toDomainIncome(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}
	return incomes, nil
}

func (r *PgxIncomeRepository) FindLatestIncomeByClientID(ctx context.Context, clientID string) (*domain.IncomeDeclaration, error) {
	query := `SELECT ` + incomeColumns + ` FROM income_declarations WHERE client_id = $1 ORDER BY created_at DESC, income_id LIMIT 1;`
	m, err := scanIncome(r.db.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no income declarations for client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to find latest income for client %s: %w", clientID, err)
	}
	income := toDomainIncome(m)
	return &income, nil
}
