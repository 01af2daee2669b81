package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finmex/onboarding_backend/internal/apperrors"
	"github.com/finmex/onboarding_backend/internal/core/domain"
	portssvc "github.com/finmex/onboarding_backend/internal/core/ports/services"
	"github.com/finmex/onboarding_backend/internal/core/services"
	"github.com/finmex/onboarding_backend/internal/dto"
)

type DocumentServiceTestSuite struct {
	suite.Suite
	mockDocumentRepo *MockDocumentRepository
	mockClientRepo   *MockClientRepository
	service          portssvc.DocumentSvcFacade
	reviewerID       string
	client           *domain.Client
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.mockDocumentRepo = new(MockDocumentRepository)
	s.mockClientRepo = new(MockClientRepository)
	s.service = services.NewDocumentService(s.mockDocumentRepo, s.mockClientRepo)
	s.reviewerID = uuid.NewString()
	s.client = &domain.Client{
		ClientID:   uuid.NewString(),
		PersonType: domain.PersonTypeIndividual,
		Status:     domain.ClientStatusActive,
	}
}

func (s *DocumentServiceTestSuite) TestSubmitDocument_Success() {
	ctx := context.Background()
	validity := 90
	docType := &domain.RequiredDocumentType{
		DocTypeID:     uuid.NewString(),
		Name:          "Comprobante de domicilio",
		Applicability: map[domain.PersonType]bool{domain.PersonTypeIndividual: true},
		ValidityDays:  &validity,
	}
	req := dto.SubmitDocumentRequest{
		ClientID:     s.client.ClientID,
		DocTypeID:    docType.DocTypeID,
		DocumentDate: "2026-08-01",
	}

	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()
	s.mockDocumentRepo.On("FindDocTypeByID", mock.Anything, docType.DocTypeID).Return(docType, nil).Once()
	s.mockDocumentRepo.On("SaveSubmission", mock.Anything, mock.AnythingOfType("domain.DocumentSubmission")).Return(nil).Once()

	submission, err := s.service.SubmitDocument(ctx, req, "/files/documentos/abc.pdf", s.reviewerID)

	s.Require().NoError(err)
	s.Equal(domain.DocumentStatusPending, submission.Status)
	s.Equal("/files/documentos/abc.pdf", submission.StorageURL)
	s.Require().NotNil(submission.ExpiresAt)
	s.Equal(submission.DocumentDate.AddDate(0, 0, validity), *submission.ExpiresAt)
	s.mockDocumentRepo.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestSubmitDocument_NonExpiringTypeHasNoExpiry() {
	ctx := context.Background()
	docType := &domain.RequiredDocumentType{
		DocTypeID:     uuid.NewString(),
		Name:          "Identificacion oficial",
		Applicability: map[domain.PersonType]bool{domain.PersonTypeIndividual: true},
	}
	req := dto.SubmitDocumentRequest{
		ClientID:     s.client.ClientID,
		DocTypeID:    docType.DocTypeID,
		DocumentDate: "2026-08-01",
	}

	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()
	s.mockDocumentRepo.On("FindDocTypeByID", mock.Anything, docType.DocTypeID).Return(docType, nil).Once()
	s.mockDocumentRepo.On("SaveSubmission", mock.Anything, mock.AnythingOfType("domain.DocumentSubmission")).Return(nil).Once()

	submission, err := s.service.SubmitDocument(ctx, req, "/files/documentos/id.pdf", s.reviewerID)

	s.Require().NoError(err)
	s.Nil(submission.ExpiresAt)
}

func (s *DocumentServiceTestSuite) TestSubmitDocument_TypeDoesNotApply() {
	ctx := context.Background()
	docType := &domain.RequiredDocumentType{
		DocTypeID:     uuid.NewString(),
		Name:          "Acta constitutiva",
		Applicability: map[domain.PersonType]bool{domain.PersonTypeCorporate: true},
	}
	req := dto.SubmitDocumentRequest{
		ClientID:     s.client.ClientID,
		DocTypeID:    docType.DocTypeID,
		DocumentDate: "2026-08-01",
	}

	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()
	s.mockDocumentRepo.On("FindDocTypeByID", mock.Anything, docType.DocTypeID).Return(docType, nil).Once()

	_, err := s.service.SubmitDocument(ctx, req, "/files/documentos/acta.pdf", s.reviewerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockDocumentRepo.AssertNotCalled(s.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestReviewDocument_Approve() {
	ctx := context.Background()
	submissionID := uuid.NewString()
	approved := &domain.DocumentSubmission{SubmissionID: submissionID, Status: domain.DocumentStatusApproved}

	s.mockDocumentRepo.On("UpdateSubmissionStatus", mock.Anything, submissionID, domain.DocumentStatusPending, domain.DocumentStatusApproved, mock.AnythingOfType("time.Time"), s.reviewerID).Return(nil).Once()
	s.mockDocumentRepo.On("FindSubmissionByID", mock.Anything, submissionID).Return(approved, nil).Once()

	submission, err := s.service.ReviewDocument(ctx, submissionID, domain.DocumentStatusApproved, s.reviewerID)

	s.Require().NoError(err)
	s.Equal(domain.DocumentStatusApproved, submission.Status)
}

func (s *DocumentServiceTestSuite) TestReviewDocument_InvalidDecision() {
	ctx := context.Background()

	_, err := s.service.ReviewDocument(ctx, uuid.NewString(), domain.DocumentStatusPending, s.reviewerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockDocumentRepo.AssertNotCalled(s.T(), "UpdateSubmissionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestReviewDocument_LostRace() {
	ctx := context.Background()
	submissionID := uuid.NewString()

	s.mockDocumentRepo.On("UpdateSubmissionStatus", mock.Anything, submissionID, domain.DocumentStatusPending, domain.DocumentStatusRejected, mock.AnythingOfType("time.Time"), s.reviewerID).Return(apperrors.ErrInvalidState).Once()

	_, err := s.service.ReviewDocument(ctx, submissionID, domain.DocumentStatusRejected, s.reviewerID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidState)
}

func (s *DocumentServiceTestSuite) TestComputeCompleteness_OneOfFiveApproved() {
	ctx := context.Background()
	required := make([]domain.RequiredDocumentType, 5)
	for i := range required {
		required[i] = domain.RequiredDocumentType{
			DocTypeID:     uuid.NewString(),
			Applicability: map[domain.PersonType]bool{domain.PersonTypeIndividual: true},
		}
	}
	submissions := []domain.DocumentSubmission{
		{SubmissionID: uuid.NewString(), DocTypeID: required[0].DocTypeID, Status: domain.DocumentStatusApproved},
	}

	s.mockClientRepo.On("FindClientByID", mock.Anything, s.client.ClientID).Return(s.client, nil).Once()
	s.mockDocumentRepo.On("FindDocTypesForPersonType", mock.Anything, domain.PersonTypeIndividual).Return(required, nil).Once()
	s.mockDocumentRepo.On("FindSubmissionsByClientID", mock.Anything, s.client.ClientID).Return(submissions, nil).Once()

	completeness, err := s.service.ComputeCompleteness(ctx, s.client.ClientID)

	s.Require().NoError(err)
	s.Equal("20", completeness.Percentage.String())
	s.Equal(5, completeness.Required)
	s.Equal(1, completeness.Submitted)
	s.Equal(1, completeness.Approved)
}

func (s *DocumentServiceTestSuite) TestCreateDocumentType_BuildsApplicabilitySet() {
	ctx := context.Background()
	req := dto.CreateDocumentTypeRequest{
		Name:      "Comprobante de ingresos",
		AppliesTo: []string{"FISICA", "FISICA_EMPRESARIAL"},
		Optional:  true,
	}

	s.mockDocumentRepo.On("SaveDocType", mock.Anything, mock.AnythingOfType("domain.RequiredDocumentType")).Return(nil).Once()

	docType, err := s.service.CreateDocumentType(ctx, req, s.reviewerID)

	s.Require().NoError(err)
	s.True(docType.AppliesTo(domain.PersonTypeIndividual))
	s.True(docType.AppliesTo(domain.PersonTypeIndividualBusiness))
	s.False(docType.AppliesTo(domain.PersonTypeCorporate))
	s.True(docType.Optional)
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
