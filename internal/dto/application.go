package dto

import (
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RequestedProductLine is one product line in an application request.
// Credit products (FA, AP) additionally need termMonths >= 1, which is
// enforced in the service because it depends on the product code.
type RequestedProductLine struct {
	ProductCode  string          `json:"productCode" binding:"required,oneof=CA CC FA AP"`
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   *int            `json:"termMonths" binding:"omitempty,gte=1"`
	Observations string          `json:"observations"`
}

// CreateApplicationRequest defines the data for a new product application.
type CreateApplicationRequest struct {
	ClientID     string                 `json:"clientID" binding:"required"`
	Observations string                 `json:"observations"`
	Products     []RequestedProductLine `json:"products" binding:"required,min=1,dive"`
}

// TransitionApplicationRequest defines the payload for a status transition.
type TransitionApplicationRequest struct {
	Status       string `json:"status" binding:"required,oneof=IN_REVIEW APPROVED REJECTED CANCELLED"`
	Observations string `json:"observations"`
}

// RequestedProductResponse defines the data returned for a product line.
type RequestedProductResponse struct {
	LineNo       int             `json:"lineNo"`
	ProductCode  string          `json:"productCode"`
	Amount       decimal.Decimal `json:"amount"`
	TermMonths   *int            `json:"termMonths,omitempty"`
	Observations string          `json:"observations,omitempty"`
}

// ApplicationResponse defines the data returned for a product application.
type ApplicationResponse struct {
	ApplicationID   string                     `json:"applicationID"`
	ClientID        string                     `json:"clientID"`
	Folio           string                     `json:"folio"`
	Status          string                     `json:"status"`
	Observations    string                     `json:"observations,omitempty"`
	StatusChangedAt time.Time                  `json:"statusChangedAt"`
	CreatedAt       time.Time                  `json:"createdAt"`
	Products        []RequestedProductResponse `json:"products"`
}

// ToApplicationResponse converts a domain.ProductApplication to its DTO
func ToApplicationResponse(app *domain.ProductApplication) ApplicationResponse {
	products := make([]RequestedProductResponse, len(app.Products))
	for i, p := range app.Products {
		products[i] = RequestedProductResponse{
			LineNo:       p.LineNo,
			ProductCode:  string(p.ProductCode),
			Amount:       p.Amount,
			TermMonths:   p.TermMonths,
			Observations: p.Observations,
		}
	}
	return ApplicationResponse{
		ApplicationID:   app.ApplicationID,
		ClientID:        app.ClientID,
		Folio:           app.Folio,
		Status:          string(app.Status),
		Observations:    app.Observations,
		StatusChangedAt: app.StatusChangedAt,
		CreatedAt:       app.CreatedAt,
		Products:        products,
	}
}
