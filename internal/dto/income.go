package dto

import (
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordIncomeRequest defines the data for a new income declaration.
// The amount sign is validated in the service; binding cannot see inside
// decimal.Decimal.
type RecordIncomeRequest struct {
	Sector           string          `json:"sector" binding:"required"`
	EconomicActivity string          `json:"economicActivity" binding:"required"`
	AnnualAmount     decimal.Decimal `json:"annualAmount" binding:"required"`
	CurrencyCode     string          `json:"currencyCode" binding:"required,len=3,alpha"`
}

// IncomeResponse defines the data returned for an income declaration.
type IncomeResponse struct {
	IncomeID         string          `json:"incomeID"`
	ClientID         string          `json:"clientID"`
	Sector           string          `json:"sector"`
	EconomicActivity string          `json:"economicActivity"`
	AnnualAmount     decimal.Decimal `json:"annualAmount"`
	CurrencyCode     string          `json:"currencyCode"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToIncomeResponse converts a domain.IncomeDeclaration to IncomeResponse DTO
func ToIncomeResponse(inc *domain.IncomeDeclaration) IncomeResponse {
	return IncomeResponse{
		IncomeID:         inc.IncomeID,
		ClientID:         inc.ClientID,
		Sector:           inc.Sector,
		EconomicActivity: inc.EconomicActivity,
		AnnualAmount:     inc.AnnualAmount,
		CurrencyCode:     inc.CurrencyCode,
		CreatedAt:        inc.CreatedAt,
	}
}
