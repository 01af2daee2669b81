package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portsrepo "github.com/finmex/onboarding_backend/internal/core/ports/repositories"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/core/services"
	"github.com/finmex/onboarding_backend/internal/dto"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo      *MockClientRepository
	mockIncomeRepo      *MockIncomeRepository
	mockDocumentRepo    *MockDocumentRepository
	mockApplicationRepo *MockApplicationRepository
	service             portssvc.ClientSvcFacade
	creatorID           string
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockClientRepo = new(MockClientRepository)
	s.mockIncomeRepo = new(MockIncomeRepository)
	s.mockDocumentRepo = new(MockDocumentRepository)
	s.mockApplicationRepo = new(MockApplicationRepository)
	s.service = services.NewClientService(s.mockClientRepo, s.mockIncomeRepo, s.mockDocumentRepo, s.mockApplicationRepo)
	s.creatorID = uuid.NewString()
}

func (s *ClientServiceTestSuite) expectNoDuplicates(taxID, email string) {
	s.mockClientRepo.On("FindClientByTaxID", mock.Anything, taxID).Return(nil, apperrors.ErrNotFound).Once()
	s.mockClientRepo.On("FindClientByEmail", mock.Anything, email).Return(nil, apperrors.ErrNotFound).Once()
}

func (s *ClientServiceTestSuite) TestRegisterClient_Individual_Success() {
	ctx := context.Background()
	req := dto.RegisterClientRequest{
		PersonType: "FISICA",
		TaxID:      "JUPA850101ABC",
		Email:      "Juan.Perez@example.com",
		FirstName:  "Juan",
		LastName:   "Perez",
		BirthDate:  "1985-01-01",
	}
	s.expectNoDuplicates("JUPA850101ABC", "juan.perez@example.com")
	s.mockClientRepo.On("SaveClient", mock.Anything, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().NoError(err)
	s.Require().NotNil(client)
	s.NotEmpty(client.ClientID)
	s.Equal(domain.PersonTypeIndividual, client.PersonType)
	s.Equal("JUPA850101ABC", client.TaxID)
	s.Equal("juan.perez@example.com", client.Email)
	s.Equal(domain.ClientStatusActive, client.Status)
	s.Require().NotNil(client.BirthDate)
	s.Equal(1985, client.BirthDate.Year())
	s.Equal(s.creatorID, client.CreatedBy)
	s.mockClientRepo.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestRegisterClient_Corporate_Success() {
	ctx := context.Background()
	req := dto.RegisterClientRequest{
		PersonType:        "MORAL",
		TaxID:             "abc010203xy9",
		Email:             "contacto@acme.mx",
		LegalName:         "ACME SA de CV",
		IncorporationDate: "2001-02-03",
	}
	s.expectNoDuplicates("ABC010203XY9", "contacto@acme.mx")
	s.mockClientRepo.On("SaveClient", mock.Anything, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().NoError(err)
	s.Equal(domain.PersonTypeCorporate, client.PersonType)
	s.Equal("ABC010203XY9", client.TaxID)
	s.Equal("ACME SA de CV", client.LegalName)
	s.Require().NotNil(client.IncorporationDate)
	s.Nil(client.BirthDate)
}

func (s *ClientServiceTestSuite) TestRegisterClient_InvalidTaxID() {
	ctx := context.Background()
	req := dto.RegisterClientRequest{
		PersonType: "FISICA",
		TaxID:      "NOT-AN-RFC",
		Email:      "x@example.com",
		FirstName:  "Ana",
		LastName:   "Lopez",
		BirthDate:  "1990-05-05",
	}

	client, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(client)
	s.mockClientRepo.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestRegisterClient_Underage() {
	ctx := context.Background()
	recentBirth := time.Now().UTC().AddDate(-17, 0, 0).Format("2006-01-02")
	req := dto.RegisterClientRequest{
		PersonType: "FISICA",
		TaxID:      "JUPA850101ABC",
		Email:      "young@example.com",
		FirstName:  "Joven",
		LastName:   "Perez",
		BirthDate:  recentBirth,
	}

	_, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ClientServiceTestSuite) TestRegisterClient_CorporateMissingLegalName() {
	ctx := context.Background()
	req := dto.RegisterClientRequest{
		PersonType:        "MORAL",
		TaxID:             "ABC010203XY9",
		Email:             "contacto@acme.mx",
		IncorporationDate: "2001-02-03",
	}

	_, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ClientServiceTestSuite) TestRegisterClient_FutureIncorporationDate() {
	ctx := context.Background()
	future := time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02")
	req := dto.RegisterClientRequest{
		PersonType:        "MORAL",
		TaxID:             "ABC010203XY9",
		Email:             "contacto@acme.mx",
		LegalName:         "ACME SA de CV",
		IncorporationDate: future,
	}

	_, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ClientServiceTestSuite) TestRegisterClient_DuplicateTaxID() {
	ctx := context.Background()
	existing := &domain.Client{ClientID: uuid.NewString(), TaxID: "JUPA850101ABC"}
	req := dto.RegisterClientRequest{
		PersonType: "FISICA",
		TaxID:      "JUPA850101ABC",
		Email:      "otro@example.com",
		FirstName:  "Juan",
		LastName:   "Perez",
		BirthDate:  "1985-01-01",
	}
	s.mockClientRepo.On("FindClientByTaxID", mock.Anything, "JUPA850101ABC").Return(existing, nil).Once()

	_, err := s.service.RegisterClient(ctx, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockClientRepo.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestGetClientByID_JoinsAssociations() {
	ctx := context.Background()
	clientID := uuid.NewString()
	client := &domain.Client{ClientID: clientID, PersonType: domain.PersonTypeIndividual}
	incomes := []domain.IncomeDeclaration{{IncomeID: uuid.NewString(), ClientID: clientID}}
	documents := []domain.DocumentSubmission{{SubmissionID: uuid.NewString(), ClientID: clientID}}
	applications := []domain.ProductApplication{{ApplicationID: uuid.NewString(), ClientID: clientID}}

	s.mockClientRepo.On("FindClientByID", mock.Anything, clientID).Return(client, nil).Once()
	s.mockIncomeRepo.On("FindIncomesByClientID", mock.Anything, clientID).Return(incomes, nil).Once()
	s.mockDocumentRepo.On("FindSubmissionsByClientID", mock.Anything, clientID).Return(documents, nil).Once()
	s.mockApplicationRepo.On("FindApplicationsByClientID", mock.Anything, clientID).Return(applications, nil).Once()

	detail, err := s.service.GetClientByID(ctx, clientID)

	s.Require().NoError(err)
	s.Equal(clientID, detail.ClientID)
	s.Len(detail.Incomes, 1)
	s.Len(detail.Documents, 1)
	s.Len(detail.Applications, 1)
}

func (s *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()
	s.mockClientRepo.On("FindClientByID", mock.Anything, clientID).Return(nil, apperrors.ErrNotFound).Once()

	detail, err := s.service.GetClientByID(ctx, clientID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(detail)
}

func (s *ClientServiceTestSuite) TestListClients_MapsFilterAndPagination() {
	ctx := context.Background()
	params := dto.ListClientsParams{
		PersonType: "MORAL",
		Status:     "ACTIVE",
		Search:     "acme",
		Page:       3,
		Limit:      10,
		SortBy:     "tax_id",
		SortDesc:   true,
	}
	s.mockClientRepo.On("FindClients", mock.Anything, mock.MatchedBy(func(f portsrepo.ClientListFilter) bool {
		return f.PersonType != nil && *f.PersonType == domain.PersonTypeCorporate &&
			f.Status != nil && *f.Status == domain.ClientStatusActive &&
			f.Search == "acme" && f.Limit == 10 && f.Offset == 20 &&
			f.SortBy == "tax_id" && f.SortDesc
	})).Return([]domain.Client{{ClientID: uuid.NewString()}}, int64(31), nil).Once()

	clients, total, err := s.service.ListClients(ctx, params)

	s.Require().NoError(err)
	s.Len(clients, 1)
	s.Equal(int64(31), total)
	s.mockClientRepo.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestUpdateClientStatus_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	updated := &domain.Client{ClientID: clientID, Status: domain.ClientStatusSuspended}

	s.mockClientRepo.On("UpdateClientStatus", mock.Anything, clientID, domain.ClientStatusSuspended, mock.AnythingOfType("time.Time"), s.creatorID).Return(nil).Once()
	s.mockClientRepo.On("FindClientByID", mock.Anything, clientID).Return(updated, nil).Once()

	client, err := s.service.UpdateClientStatus(ctx, clientID, domain.ClientStatusSuspended, s.creatorID)

	s.Require().NoError(err)
	s.Equal(domain.ClientStatusSuspended, client.Status)
}

func (s *ClientServiceTestSuite) TestUpdateClientStatus_UnknownStatus() {
	ctx := context.Background()

	_, err := s.service.UpdateClientStatus(ctx, uuid.NewString(), domain.ClientStatus("BOGUS"), s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockClientRepo.AssertNotCalled(s.T(), "UpdateClientStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClientServiceSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
