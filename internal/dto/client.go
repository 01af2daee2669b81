package dto

import (
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
)

// RegisterClientRequest defines the data needed to register a new client.
// Dates travel as YYYY-MM-DD strings; person-type-specific requirements
// (names vs legal name, birth vs incorporation date) are enforced in the
// service since they depend on the personType value.
type RegisterClientRequest struct {
	PersonType        string `json:"personType" binding:"required,oneof=FISICA FISICA_EMPRESARIAL MORAL"`
	TaxID             string `json:"taxID" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	LegalName         string `json:"legalName"`
	BirthDate         string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	IncorporationDate string `json:"incorporationDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateClientStatusRequest defines the payload for client status changes.
type UpdateClientStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// ListClientsParams defines query parameters for listing clients.
type ListClientsParams struct {
	PersonType string `form:"personType" binding:"omitempty,oneof=FISICA FISICA_EMPRESARIAL MORAL"`
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	Search     string `form:"q"`
	Page       int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Limit      int    `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	SortBy     string `form:"sortBy,default=created_at" binding:"omitempty,oneof=created_at tax_id email status"`
	SortDesc   bool   `form:"sortDesc,default=true"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID          string     `json:"clientID"`
	PersonType        string     `json:"personType"`
	TaxID             string     `json:"taxID"`
	Email             string     `json:"email"`
	FirstName         string     `json:"firstName,omitempty"`
	LastName          string     `json:"lastName,omitempty"`
	LegalName         string     `json:"legalName,omitempty"`
	DisplayName       string     `json:"displayName"`
	BirthDate         *time.Time `json:"birthDate,omitempty"`
	IncorporationDate *time.Time `json:"incorporationDate,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	LastUpdatedAt     time.Time  `json:"lastUpdatedAt"`
}

// ClientDetailResponse is the client plus its associated records.
type ClientDetailResponse struct {
	ClientResponse
	Incomes      []IncomeResponse      `json:"incomes"`
	Documents    []SubmissionResponse  `json:"documents"`
	Applications []ApplicationResponse `json:"applications"`
}

// ListClientsResponse wraps a page of clients with pagination metadata.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
	PageMeta
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:          c.ClientID,
		PersonType:        string(c.PersonType),
		TaxID:             c.TaxID,
		Email:             c.Email,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		LegalName:         c.LegalName,
		DisplayName:       c.DisplayName(),
		BirthDate:         c.BirthDate,
		IncorporationDate: c.IncorporationDate,
		Status:            string(c.Status),
		CreatedAt:         c.CreatedAt,
		LastUpdatedAt:     c.LastUpdatedAt,
	}
}

// ToClientDetailResponse converts a domain.ClientDetail to its DTO
func ToClientDetailResponse(d *domain.ClientDetail) ClientDetailResponse {
	resp := ClientDetailResponse{
		ClientResponse: ToClientResponse(&d.Client),
		Incomes:        make([]IncomeResponse, len(d.Incomes)),
		Documents:      make([]SubmissionResponse, len(d.Documents)),
		Applications:   make([]ApplicationResponse, len(d.Applications)),
	}
	for i, inc := range d.Incomes {
		resp.Incomes[i] = ToIncomeResponse(&inc)
	}
	for i, sub := range d.Documents {
		resp.Documents[i] = ToSubmissionResponse(&sub)
	}
	for i, app := range d.Applications {
		resp.Applications[i] = ToApplicationResponse(&app)
	}
	return resp
}
