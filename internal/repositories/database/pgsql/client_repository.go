package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	"github.com/finmex/onboarding_backend/internal/models"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// clientSortColumns whitelists the sortable columns for client listing.
// Keys match the sortBy values the listing endpoint accepts.
var clientSortColumns = map[string]string{
	"created_at": "created_at",
	"tax_id":     "tax_id",
	"email":      "email",
	"status":     "status",
}

// Helper to convert domain.Client to models.Client
func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:          d.ClientID,
		PersonType:        string(d.PersonType),
		TaxID:             d.TaxID,
		Email:             d.Email,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		LegalName:         d.LegalName,
		BirthDate:         d.BirthDate,
		IncorporationDate: d.IncorporationDate,
		Status:            string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
		DeletedAt: d.DeletedAt,
	}
}

// Helper to convert models.Client to domain.Client
func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:          m.ClientID,
		PersonType:        domain.PersonType(m.PersonType),
		TaxID:             m.TaxID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		LegalName:         m.LegalName,
		BirthDate:         m.BirthDate,
		IncorporationDate: m.IncorporationDate,
		Status:            domain.ClientStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
		DeletedAt: m.DeletedAt,
	}
}

const clientColumns = `client_id, person_type, tax_id, email, first_name, last_name, legal_name,
		birth_date, incorporation_date, status, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.PersonType,
		&m.TaxID,
		&m.Email,
		&m.FirstName,
		&m.LastName,
		&m.LegalName,
		&m.BirthDate,
		&m.IncorporationDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (client_id, person_type, tax_id, email, first_name, last_name, legal_name,
			birth_date, incorporation_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.PersonType,
		m.TaxID,
		m.Email,
		m.FirstName,
		m.LastName,
		m.LegalName,
		m.BirthDate,
		m.IncorporationDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err, "client with the same tax id or email"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 AND deleted_at IS NULL;`
	m, err := scanClient(r.db.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) FindClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE tax_id = $1 AND deleted_at IS NULL;`
	m, err := scanClient(r.db.QueryRow(ctx, query, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by tax id: %w", err)
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1 AND deleted_at IS NULL;`
	m, err := scanClient(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	c := toDomainClient(m)
	return &c, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, int64, error) {
	var conditions []string
	var args []interface{}
	conditions = append(conditions, "deleted_at IS NULL")

	if filter.PersonType != nil {
		args = append(args, string(*filter.PersonType))
		conditions = append(conditions, fmt.Sprintf("person_type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(tax_id ILIKE $%d OR email ILIKE $%d OR first_name ILIKE $%d OR last_name ILIKE $%d OR legal_name ILIKE $%d)",
			n, n, n, n, n))
	}
	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM clients ` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	sortColumn, ok := clientSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)

	// client_id tie-breaker keeps pagination stable when the sort key repeats.
	query := fmt.Sprintf(`SELECT %s FROM clients %s ORDER BY %s %s, client_id ASC LIMIT $%d OFFSET $%d;`,
		clientColumns, where, sortColumn, direction, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, toDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, total, nil
}

func (r *PgxClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE clients
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE client_id = $4 AND deleted_at IS NULL;
	`
	tag, err := r.db.Exec(ctx, query, string(status), updatedAt, updatedBy, clientID)
	if err != nil {
		return fmt.Errorf("failed to update client status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
	}
	return nil
}
