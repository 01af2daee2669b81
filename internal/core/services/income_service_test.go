package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/core/services"
	"github.com/finmex/onboarding_backend/internal/dto"
)

type IncomeServiceTestSuite struct {
	suite.Suite
	mockIncomeRepo *MockIncomeRepository
	mockClientRepo *MockClientRepository
	service        portssvc.IncomeSvcFacade
	client         *domain.Client
	creatorID      string
}

func (s *IncomeServiceTestSuite) SetupTest() {
	s.mockIncomeRepo = new(MockIncomeRepository)
	s.mockClientRepo = new(MockClientRepository)
	s.service = services.NewIncomeService(s.mockIncomeRepo, s.mockClientRepo)
	s.client = &domain.Client{ClientID: uuid.NewString(), PersonType: domain.PersonTypeIndividual}
	s.creatorID = uuid.NewString()
}

func (s *IncomeServiceTestSuite) TestRecordIncome_Success() {
	ctx := context.Background()
	req := dto.RecordIncomeRequest{
		Sector:           "Servicios",
		EconomicActivity: "Consultoria de software",
		AnnualAmount:     decimal.NewFromInt(850000),
		CurrencyCode:     "mxn",
	}

	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()
	s.mockIncomeRepo.On("SaveIncome", mock.Anything, mock.AnythingOfType("domain.IncomeDeclaration")).Return(nil).Once()

	income, err := s.service.RecordIncome(ctx, s.client.ClientID, req, s.creatorID)

	s.Require().NoError(err)
	s.NotEmpty(income.IncomeID)
	s.Equal(s.client.ClientID, income.ClientID)
	s.Equal("MXN", income.CurrencyCode)
	s.True(income.AnnualAmount.Equal(decimal.NewFromInt(850000)))
	s.mockIncomeRepo.AssertExpectations(s.T())
}

func (s *IncomeServiceTestSuite) TestRecordIncome_NegativeAmount() {
	ctx := context.Background()
	req := dto.RecordIncomeRequest{
		Sector:           "Servicios",
		EconomicActivity: "Consultoria",
		AnnualAmount:     decimal.NewFromInt(-1),
		CurrencyCode:     "MXN",
	}
	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()

	_, err := s.service.RecordIncome(ctx, s.client.ClientID, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockIncomeRepo.AssertNotCalled(s.T(), "SaveIncome", mock.Anything, mock.Anything)
}

func (s *IncomeServiceTestSuite) TestRecordIncome_UnknownClient() {
	ctx := context.Background()
	clientID := uuid.NewString()
	req := dto.RecordIncomeRequest{
		Sector:           "Servicios",
		EconomicActivity: "Consultoria",
		AnnualAmount:     decimal.NewFromInt(100),
		CurrencyCode:     "MXN",
	}
	s.mockClientRepo.On("FindClientByID", mock.Anything, clientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.RecordIncome(ctx, clientID, req, s.creatorID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *IncomeServiceTestSuite) TestListIncomes_EmptyHistoryIsNotAnError() {
	ctx := context.Background()
	s.mockIncomeRepo.On("FindIncomesByClientID", mock.Anything, s.client.ClientID).Return([]domain.IncomeDeclaration{}, nil).Once()

	incomes, err := s.service.ListIncomes(ctx, s.client.ClientID)

	s.Require().NoError(err)
	s.Empty(incomes)
	s.NotNil(incomes)
}

func (s *IncomeServiceTestSuite) TestGetLatestIncome_NotFound() {
	ctx := context.Background()
	s.mockIncomeRepo.On("FindLatestIncomeByClientID", mock.Anything, s.client.ClientID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetLatestIncome(ctx, s.client.ClientID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestIncomeServiceSuite(t *testing.T) {
	suite.Run(t, new(IncomeServiceTestSuite))
}
