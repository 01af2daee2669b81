package dto

import (
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitDocumentRequest defines the form fields accompanying a document
// upload. The file itself travels as the "archivo" multipart part.
type SubmitDocumentRequest struct {
	ClientID     string `form:"clientID" binding:"required"`
	DocTypeID    string `form:"docTypeID" binding:"required"`
	DocumentDate string `form:"documentDate" binding:"required,datetime=2006-01-02"`
}

// ReviewDocumentRequest defines the payload for a review decision.
type ReviewDocumentRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVED REJECTED"`
}

// CreateDocumentTypeRequest defines the data for a new catalog entry.
type CreateDocumentTypeRequest struct {
	Name         string   `json:"name" binding:"required"`
	AppliesTo    []string `json:"appliesTo" binding:"required,min=1,dive,oneof=FISICA FISICA_EMPRESARIAL MORAL"`
	ValidityDays *int     `json:"validityDays" binding:"omitempty,gte=1"`
	Optional     bool     `json:"optional"`
}

// ListDocumentTypesParams defines query parameters for the catalog listing.
type ListDocumentTypesParams struct {
	PersonType string `form:"personType" binding:"omitempty,oneof=FISICA FISICA_EMPRESARIAL MORAL"`
}

// DocumentTypeResponse defines the data returned for a catalog entry.
type DocumentTypeResponse struct {
	DocTypeID    string   `json:"docTypeID"`
	Name         string   `json:"name"`
	AppliesTo    []string `json:"appliesTo"`
	ValidityDays *int     `json:"validityDays,omitempty"`
	Optional     bool     `json:"optional"`
}

// SubmissionResponse defines the data returned for a document submission.
type SubmissionResponse struct {
	SubmissionID string     `json:"submissionID"`
	ClientID     string     `json:"clientID"`
	DocTypeID    string     `json:"docTypeID"`
	StorageURL   string     `json:"storageURL"`
	DocumentDate time.Time  `json:"documentDate"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CompletenessResponse is the derived KYC completeness aggregate.
type CompletenessResponse struct {
	ClientID   string          `json:"clientID"`
	Percentage decimal.Decimal `json:"percentage"`
	Required   int             `json:"required"`
	Submitted  int             `json:"submitted"`
	Approved   int             `json:"approved"`
}

// ToDocumentTypeResponse converts a domain.RequiredDocumentType to its DTO.
// The applicability set is flattened into a sorted-enough slice: the
// canonical person-type order keeps output stable.
func ToDocumentTypeResponse(t *domain.RequiredDocumentType) DocumentTypeResponse {
	appliesTo := make([]string, 0, len(t.Applicability))
	for _, pt := range []domain.PersonType{domain.PersonTypeIndividual, domain.PersonTypeIndividualBusiness, domain.PersonTypeCorporate} {
		if t.Applicability[pt] {
			appliesTo = append(appliesTo, string(pt))
		}
	}
	return DocumentTypeResponse{
		DocTypeID:    t.DocTypeID,
		Name:         t.Name,
		AppliesTo:    appliesTo,
		ValidityDays: t.ValidityDays,
		Optional:     t.Optional,
	}
}

// ToDocumentTypeResponses converts a slice of catalog entries.
func ToDocumentTypeResponses(types []domain.RequiredDocumentType) []DocumentTypeResponse {
	res := make([]DocumentTypeResponse, len(types))
	for i, t := range types {
		res[i] = ToDocumentTypeResponse(&t)
	}
	return res
}

// ToSubmissionResponse converts a domain.DocumentSubmission to its DTO
func ToSubmissionResponse(s *domain.DocumentSubmission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: s.SubmissionID,
		ClientID:     s.ClientID,
		DocTypeID:    s.DocTypeID,
		StorageURL:   s.StorageURL,
		DocumentDate: s.DocumentDate,
		ExpiresAt:    s.ExpiresAt,
		Status:       string(s.Status),
		CreatedAt:    s.CreatedAt,
	}
}

// ToCompletenessResponse converts a domain.Completeness to its DTO
func ToCompletenessResponse(clientID string, c *domain.Completeness) CompletenessResponse {
	return CompletenessResponse{
		ClientID:   clientID,
		Percentage: c.Percentage,
		Required:   c.Required,
		Submitted:  c.Submitted,
		Approved:   c.Approved,
	}
}
