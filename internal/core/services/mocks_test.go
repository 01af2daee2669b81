package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByTaxID(ctx context.Context, taxID string) (*domain.Client, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClients(ctx context.Context, filter portsrepo.ClientListFilter) ([]domain.Client, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Client), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, clientID, status, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock IncomeRepository ---
type MockIncomeRepository struct {
	mock.Mock
}

var _ portsrepo.IncomeRepositoryFacade = (*MockIncomeRepository)(nil)

func (m *MockIncomeRepository) FindIncomesByClientID(ctx context.Context, clientID string) ([]domain.IncomeDeclaration, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IncomeDeclaration), args.Error(1)
}

func (m *MockIncomeRepository) FindLatestIncomeByClientID(ctx context.Context, clientID string) (*domain.IncomeDeclaration, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeDeclaration), args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.IncomeDeclaration) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocTypeByID(ctx context.Context, docTypeID string) (*domain.RequiredDocumentType, error) {
	args := m.Called(ctx, docTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequiredDocumentType), args.Error(1)
}

func (m *MockDocumentRepository) FindDocTypesForPersonType(ctx context.Context, personType domain.PersonType) ([]domain.RequiredDocumentType, error) {
	args := m.Called(ctx, personType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequiredDocumentType), args.Error(1)
}

func (m *MockDocumentRepository) ListDocTypes(ctx context.Context) ([]domain.RequiredDocumentType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequiredDocumentType), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocType(ctx context.Context, docType domain.RequiredDocumentType) error {
	args := m.Called(ctx, docType)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.DocumentSubmission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentSubmission), args.Error(1)
}

func (m *MockDocumentRepository) FindSubmissionsByClientID(ctx context.Context, clientID string) ([]domain.DocumentSubmission, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentSubmission), args.Error(1)
}

func (m *MockDocumentRepository) SaveSubmission(ctx context.Context, submission domain.DocumentSubmission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateSubmissionStatus(ctx context.Context, submissionID string, fromStatus, toStatus domain.DocumentStatus, updatedAt time.Time, updatedBy string) error {
	args := m.Called(ctx, submissionID, fromStatus, toStatus, updatedAt, updatedBy)
	return args.Error(0)
}

// --- Mock ApplicationRepository ---
type MockApplicationRepository struct {
	mock.Mock
}

var _ portsrepo.ApplicationRepositoryFacade = (*MockApplicationRepository)(nil)

func (m *MockApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.ProductApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductApplication), args.Error(1)
}

func (m *MockApplicationRepository) FindApplicationsByClientID(ctx context.Context, clientID string) ([]domain.ProductApplication, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductApplication), args.Error(1)
}

func (m *MockApplicationRepository) SaveApplication(ctx context.Context, application domain.ProductApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, fromStatus, toStatus domain.ApplicationStatus, observations string, changedAt time.Time, changedBy string) error {
	args := m.Called(ctx, applicationID, fromStatus, toStatus, observations, changedAt, changedBy)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
