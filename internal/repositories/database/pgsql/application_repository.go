package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	"github.com/finmex/onboarding_backend/internal/models"
)

type PgxApplicationRepository struct {
	db *pgxpool.Pool
	BaseRepository
}

func newPgxApplicationRepository(db *pgxpool.Pool) portsrepo.ApplicationRepositoryFacade {
	return &PgxApplicationRepository{db: db, BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxApplicationRepository implements portsrepo.ApplicationRepositoryFacade
var _ portsrepo.ApplicationRepositoryFacade = (*PgxApplicationRepository)(nil)

// Helper to convert models to domain
func toDomainApplication(m models.ProductApplication, lines []models.RequestedProduct) domain.ProductApplication {
	products := make([]domain.RequestedProduct, len(lines))
	for i, line := range lines {
		products[i] = domain.RequestedProduct{
			ProductID:     line.ProductID,
			ApplicationID: line.ApplicationID,
			LineNo:        line.LineNo,
			ProductCode:   domain.ProductCode(line.ProductCode),
			Amount:        line.Amount,
			TermMonths:    line.TermMonths,
			Observations:  line.Observations,
		}
	}
	return domain.ProductApplication{
		ApplicationID:   m.ApplicationID,
		ClientID:        m.ClientID,
		Folio:           m.Folio,
		Status:          domain.ApplicationStatus(m.Status),
		Observations:    m.Observations,
		StatusChangedAt: m.StatusChangedAt,
		Products:        products,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const applicationColumns = `application_id, client_id, folio, status, observations, status_changed_at,
		created_at, created_by, last_updated_at, last_updated_by`

func scanApplication(row pgx.Row) (models.ProductApplication, error) {
	var m models.ProductApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.ClientID,
		&m.Folio,
		&m.Status,
		&m.Observations,
		&m.StatusChangedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxApplicationRepository) SaveApplication(ctx context.Context, application domain.ProductApplication) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		INSERT INTO product_applications (application_id, client_id, folio, status, observations,
			status_changed_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, headerQuery,
		application.ApplicationID,
		application.ClientID,
		application.Folio,
		string(application.Status),
		application.Observations,
		application.StatusChangedAt,
		application.CreatedAt,
		application.CreatedBy,
		application.LastUpdatedAt,
		application.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err, "application with the same folio"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save application header: %w", err)
	}

	lineQuery := `
		INSERT INTO requested_products (product_id, application_id, line_no, product_code, amount, term_months, observations)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, p := range application.Products {
		_, err = tx.Exec(ctx, lineQuery,
			p.ProductID,
			p.ApplicationID,
			p.LineNo,
			string(p.ProductCode),
			p.Amount,
			p.TermMonths,
			p.Observations,
		)
		if err != nil {
			return fmt.Errorf("failed to save application line %d: %w", p.LineNo, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications WHERE application_id = $1;`
	m, err := scanApplication(r.db.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: application %s", apperrors.ErrNotFound, applicationID)
		}
		return nil, fmt.Errorf("failed to find application %s: %w", applicationID, err)
	}

	lines, err := r.findLines(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	application := toDomainApplication(m, lines)
	return &application, nil
}

func (r *PgxApplicationRepository) FindApplicationsByClientID(ctx context.Context, clientID string) ([]domain.ProductApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM product_applications WHERE client_id = $1 ORDER BY created_at DESC, application_id;`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var headers []models.ProductApplication
	for rows.Next() {
		m, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	applications := make([]domain.ProductApplication, len(headers))
	for i, h := range headers {
		lines, err := r.findLines(ctx, h.ApplicationID)
		if err != nil {
			return nil, err
		}
		applications[i] = toDomainApplication(h, lines)
	}
	return applications, nil
}

// findLines returns the application's product lines in requested order.
func (r *PgxApplicationRepository) findLines(ctx context.Context, applicationID string) ([]models.RequestedProduct, error) {
	query := `
		SELECT product_id, application_id, line_no, product_code, amount, term_months, observations
		FROM requested_products
		WHERE application_id = $1
		ORDER BY line_no;
	`
	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for application %s: %w", applicationID, err)
	}
	defer rows.Close()

	var lines []models.RequestedProduct
	for rows.Next() {
		var m models.RequestedProduct
		if err := rows.Scan(
			&m.ProductID,
			&m.ApplicationID,
			&m.LineNo,
			&m.ProductCode,
			&m.Amount,
			&m.TermMonths,
			&m.Observations,
		); err != nil {
			return nil, fmt.Errorf("failed to scan application line: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application lines: %w", err)
	}
	return lines, nil
}

func (r *PgxApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, fromStatus, toStatus domain.ApplicationStatus, observations string, changedAt time.Time, changedBy string) error {
	query := `
		UPDATE product_applications
		SET status = $1, observations = $2, status_changed_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE application_id = $5 AND status = $6;
	`
	tag, err := r.db.Exec(ctx, query, string(toStatus), observations, changedAt, changedBy, applicationID, string(fromStatus))
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a lost race from a missing row.
		existing, findErr := r.FindApplicationByID(ctx, applicationID)
		if findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: application %s is %s, expected %s", apperrors.ErrInvalidState, applicationID, existing.Status, fromStatus)
	}
	return nil
}
