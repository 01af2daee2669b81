package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/dto"
	"github.com/finmex/onboarding_backend/internal/middleware"
	"github.com/finmex/onboarding_backend/internal/utils/pagination"
)

const dateLayout = "2006-01-02"

// clientService owns client identity records and the read-time join of a
// client with its associated onboarding records.
type clientService struct {
	clientRepo      portsrepo.ClientRepositoryFacade
	incomeRepo      portsrepo.IncomeReader
	documentRepo    portsrepo.SubmissionReader
	applicationRepo portsrepo.ApplicationReader
}

// NewClientService creates a new ClientService.
func NewClientService(
	clientRepo portsrepo.ClientRepositoryFacade,
	incomeRepo portsrepo.IncomeReader,
	documentRepo portsrepo.SubmissionReader,
	applicationRepo portsrepo.ApplicationReader,
) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo:      clientRepo,
		incomeRepo:      incomeRepo,
		documentRepo:    documentRepo,
		applicationRepo: applicationRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// RegisterClient validates the person-type-specific payload and creates the
// client in ACTIVE status. Uniqueness of tax id and email is ultimately
// serialized by database constraints; the lookups here only produce better
// error detail for the common case.
func (s *clientService) RegisterClient(ctx context.Context, req dto.RegisterClientRequest, creatorUserID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	personType := domain.PersonType(req.PersonType)
	if !personType.IsValid() {
		return nil, fmt.Errorf("%w: unknown person type %q", apperrors.ErrValidation, req.PersonType)
	}

	taxID := strings.ToUpper(strings.TrimSpace(req.TaxID))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !domain.ValidTaxID(personType, taxID) {
		return nil, fmt.Errorf("%w: tax id %q does not match the pattern for person type %s", apperrors.ErrValidation, taxID, personType)
	}

	now := time.Now().UTC()
	client := domain.Client{
		ClientID:   uuid.NewString(),
		PersonType: personType,
		TaxID:      taxID,
		Email:      email,
		Status:     domain.ClientStatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if personType.IsIndividual() {
		if req.FirstName == "" || req.LastName == "" {
			return nil, fmt.Errorf("%w: firstName and lastName are required for person type %s", apperrors.ErrValidation, personType)
		}
		if req.BirthDate == "" {
			return nil, fmt.Errorf("%w: birthDate is required for person type %s", apperrors.ErrValidation, personType)
		}
		birthDate, err := time.Parse(dateLayout, req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: birthDate must be a valid %s date", apperrors.ErrValidation, dateLayout)
		}
		if !domain.MeetsMinimumAge(birthDate, now) {
			return nil, fmt.Errorf("%w: client must be at least %d years old", apperrors.ErrValidation, domain.MinClientAgeYears)
		}
		client.FirstName = req.FirstName
		client.LastName = req.LastName
		client.BirthDate = &birthDate
	} else {
		if req.LegalName == "" {
			return nil, fmt.Errorf("%w: legalName is required for person type %s", apperrors.ErrValidation, personType)
		}
		if req.IncorporationDate == "" {
			return nil, fmt.Errorf("%w: incorporationDate is required for person type %s", apperrors.ErrValidation, personType)
		}
		incDate, err := time.Parse(dateLayout, req.IncorporationDate)
		if err != nil {
			return nil, fmt.Errorf("%w: incorporationDate must be a valid %s date", apperrors.ErrValidation, dateLayout)
		}
		if incDate.After(now) {
			return nil, fmt.Errorf("%w: incorporationDate cannot be in the future", apperrors.ErrValidation)
		}
		client.LegalName = req.LegalName
		client.IncorporationDate = &incDate
	}

	// Optimistic pre-checks for friendlier conflict messages. The unique
	// constraints remain the authority under concurrent registration.
	if err := s.checkUniqueness(ctx, taxID, email); err != nil {
		return nil, err
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register client: %w", err)
	}

	logger.Info("Client registered", slog.String("client_id", client.ClientID), slog.String("person_type", string(personType)))
	return &client, nil
}

func (s *clientService) checkUniqueness(ctx context.Context, taxID, email string) error {
	existing, err := s.clientRepo.FindClientByTaxID(ctx, taxID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check tax id uniqueness: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: tax id %s is already registered", apperrors.ErrDuplicate, taxID)
	}

	existing, err = s.clientRepo.FindClientByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	}
	return nil
}

// GetClientByID returns the client plus its income history, document
// submissions and applications. The associations are joined at read time,
// never stored on the client row.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.ClientDetail, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	incomes, err := s.incomeRepo.FindIncomesByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income history for client %s: %w", clientID, err)
	}
	documents, err := s.documentRepo.FindSubmissionsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents for client %s: %w", clientID, err)
	}
	applications, err := s.applicationRepo.FindApplicationsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications for client %s: %w", clientID, err)
	}

	return &domain.ClientDetail{
		Client:       *client,
		Incomes:      incomes,
		Documents:    documents,
		Applications: applications,
	}, nil
}

// ListClients returns a filtered page of clients and the total match count.
func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error) {
	filter := portsrepo.ClientListFilter{
		Search:   strings.TrimSpace(params.Search),
		Limit:    params.Limit,
		Offset:   pagination.Offset(params.Page, params.Limit),
		SortBy:   params.SortBy,
		SortDesc: params.SortDesc,
	}
	if params.PersonType != "" {
		pt := domain.PersonType(params.PersonType)
		filter.PersonType = &pt
	}
	if params.Status != "" {
		st := domain.ClientStatus(params.Status)
		filter.Status = &st
	}

	clients, total, err := s.clientRepo.FindClients(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, total, nil
}

// UpdateClientStatus moves the client to any of the enumerated statuses.
func (s *clientService) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, updaterUserID string) (*domain.Client, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown client status %q", apperrors.ErrValidation, status)
	}

	now := time.Now().UTC()
	if err := s.clientRepo.UpdateClientStatus(ctx, clientID, status, now, updaterUserID); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload client %s after status update: %w", clientID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Client status updated", slog.String("client_id", clientID), slog.String("status", string(status)))
	return client, nil
}
