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

type PgxDocumentRepository struct {
	db *pgxpool.Pool
	BaseRepository
}

func newPgxDocumentRepository(db *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{db: db, BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// Helper to convert models.DocumentType plus its applicability rows to domain
func toDomainDocType(m models.DocumentType, applicability map[domain.PersonType]bool) domain.RequiredDocumentType {
	return domain.RequiredDocumentType{
		DocTypeID:     m.DocTypeID,
		Name:          m.Name,
		Applicability: applicability,
		ValidityDays:  m.ValidityDays,
		Optional:      m.Optional,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// Helper to convert domain.DocumentSubmission to models.DocumentSubmission
func toModelSubmission(d domain.DocumentSubmission) models.DocumentSubmission {
	return models.DocumentSubmission{
		SubmissionID: d.SubmissionID,
		ClientID:     d.ClientID,
		DocTypeID:    d.DocTypeID,
		StorageURL:   d.StorageURL,
		DocumentDate: d.DocumentDate,
		ExpiresAt:    d.ExpiresAt,
		Status:       string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.DocumentSubmission to domain.DocumentSubmission
func toDomainSubmission(m models.DocumentSubmission) domain.DocumentSubmission {
	return domain.DocumentSubmission{
		SubmissionID: m.SubmissionID,
		ClientID:     m.ClientID,
		DocTypeID:    m.DocTypeID,
		StorageURL:   m.StorageURL,
		DocumentDate: m.DocumentDate,
		ExpiresAt:    m.ExpiresAt,
		Status:       domain.DocumentStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const docTypeColumns = `doc_type_id, name, validity_days, optional, created_at, created_by, last_updated_at, last_updated_by`

func scanDocType(row pgx.Row) (models.DocumentType, error) {
	var m models.DocumentType
	err := row.Scan(
		&m.DocTypeID,
		&m.Name,
		&m.ValidityDays,
		&m.Optional,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// loadApplicability fetches the person-type sets for the given doc type IDs.
func (r *PgxDocumentRepository) loadApplicability(ctx context.Context, docTypeIDs []string) (map[string]map[domain.PersonType]bool, error) {
	result := make(map[string]map[domain.PersonType]bool, len(docTypeIDs))
	if len(docTypeIDs) == 0 {
		return result, nil
	}
	query := `SELECT doc_type_id, person_type FROM doc_type_applicability WHERE doc_type_id = ANY($1);`
	rows, err := r.db.Query(ctx, query, docTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query doc type applicability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docTypeID, personType string
		if err := rows.Scan(&docTypeID, &personType); err != nil {
			return nil, fmt.Errorf("failed to scan applicability row: %w", err)
		}
		if result[docTypeID] == nil {
			result[docTypeID] = make(map[domain.PersonType]bool)
		}
		result[docTypeID][domain.PersonType(personType)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applicability rows: %w", err)
	}
	return result, nil
}

func (r *PgxDocumentRepository) SaveDocType(ctx context.Context, docType domain.RequiredDocumentType) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO doc_types (doc_type_id, name, validity_days, optional, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		docType.DocTypeID,
		docType.Name,
		docType.ValidityDays,
		docType.Optional,
		docType.CreatedAt,
		docType.CreatedBy,
		docType.LastUpdatedAt,
		docType.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err, "document type with the same name"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save document type: %w", err)
	}

	for personType := range docType.Applicability {
		if !docType.Applicability[personType] {
			continue
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO doc_type_applicability (doc_type_id, person_type) VALUES ($1, $2);`,
			docType.DocTypeID, string(personType))
		if err != nil {
			return fmt.Errorf("failed to save doc type applicability: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxDocumentRepository) FindDocTypeByID(ctx context.Context, docTypeID string) (*domain.RequiredDocumentType, error) {
	query := `SELECT ` + docTypeColumns + ` FROM doc_types WHERE doc_type_id = $1;`
	m, err := scanDocType(r.db.QueryRow(ctx, query, docTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document type %s", apperrors.ErrNotFound, docTypeID)
		}
		return nil, fmt.Errorf("failed to find document type %s: %w", docTypeID, err)
	}

	applicability, err := r.loadApplicability(ctx, []string{m.DocTypeID})
	if err != nil {
		return nil, err
	}
	docType := toDomainDocType(m, applicability[m.DocTypeID])
	return &docType, nil
}

func (r *PgxDocumentRepository) FindDocTypesForPersonType(ctx context.Context, personType domain.PersonType) ([]domain.RequiredDocumentType, error) {
	query := `
		SELECT ` + docTypeColumns + `
		FROM doc_types t
		WHERE EXISTS (
			SELECT 1 FROM doc_type_applicability a
			WHERE a.doc_type_id = t.doc_type_id AND a.person_type = $1
		)
		ORDER BY t.name;
	`
	return r.queryDocTypes(ctx, query, string(personType))
}

func (r *PgxDocumentRepository) ListDocTypes(ctx context.Context) ([]domain.RequiredDocumentType, error) {
	query := `SELECT ` + docTypeColumns + ` FROM doc_types ORDER BY name;`
	return r.queryDocTypes(ctx, query)
}

func (r *PgxDocumentRepository) queryDocTypes(ctx context.Context, query string, args ...interface{}) ([]domain.RequiredDocumentType, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query document types: %w", err)
	}
	defer rows.Close()

	var modelTypes []models.DocumentType
	var ids []string
	for rows.Next() {
		m, err := scanDocType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document type row: %w", err)
		}
		modelTypes = append(modelTypes, m)
		ids = append(ids, m.DocTypeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document type rows: %w", err)
	}

	applicability, err := r.loadApplicability(ctx, ids)
	if err != nil {
		return nil, err
	}

	types := make([]domain.RequiredDocumentType, len(modelTypes))
	for i, m := range modelTypes {
		types[i] = toDomainDocType(m, applicability[m.DocTypeID])
	}
	return types, nil
}

const submissionColumns = `submission_id, client_id, doc_type_id, storage_url, document_date, expires_at, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSubmission(row pgx.Row) (models.DocumentSubmission, error) {
	var m models.DocumentSubmission
	err := row.Scan(
		&m.SubmissionID,
		&m.ClientID,
		&m.DocTypeID,
		&m.StorageURL,
		&m.DocumentDate,
		&m.ExpiresAt,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxDocumentRepository) SaveSubmission(ctx context.Context, submission domain.DocumentSubmission) error {
	m := toModelSubmission(submission)
	query := `
		INSERT INTO document_submissions (submission_id, client_id, doc_type_id, storage_url, document_date,
			expires_at, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.db.Exec(ctx, query,
		m.SubmissionID,
		m.ClientID,
		m.DocTypeID,
		m.StorageURL,
		m.DocumentDate,
		m.ExpiresAt,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save document submission: %w", err)
	}
	return nil
}

func (r *PgxDocumentRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.DocumentSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM document_submissions WHERE submission_id = $1;`
	m, err := scanSubmission(r.db.QueryRow(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: document submission %s", apperrors.ErrNotFound, submissionID)
		}
		return nil, fmt.Errorf("failed to find submission %s: %w", submissionID, err)
	}
	sub := toDomainSubmission(m)
	return &sub, nil
}

func (r *PgxDocumentRepository) FindSubmissionsByClientID(ctx context.Context, clientID string) ([]domain.DocumentSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM document_submissions WHERE client_id = $1 ORDER BY created_at DESC, submission_id;`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions for client %s: %w", clientID, err)
	}
	defer rows.Close()

	submissions := []domain.DocumentSubmission{}
	for rows.Next() {
		m, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, toDomainSubmission(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}
	return submissions, nil
}

func (r *PgxDocumentRepository) UpdateSubmissionStatus(ctx context.Context, submissionID string, fromStatus, toStatus domain.DocumentStatus, updatedAt time.Time, updatedBy string) error {
	query := `
		UPDATE document_submissions
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE submission_id = $4 AND status = $5;
	`
	tag, err := r.db.Exec(ctx, query, string(toStatus), updatedAt, updatedBy, submissionID, string(fromStatus))
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish a lost race from a missing row.
		existing, findErr := r.FindSubmissionByID(ctx, submissionID)
		if findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: submission %s is %s, expected %s", apperrors.ErrInvalidState, submissionID, existing.Status, fromStatus)
	}
	return nil
}
