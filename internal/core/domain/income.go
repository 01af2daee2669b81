package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeDeclaration is a declared income record for a client. Declarations
// are append-only history; the most recent one is authoritative.
type IncomeDeclaration struct {
	IncomeID         string          `json:"incomeID"`
	ClientID         string          `json:"clientID"`
	Sector           string          `json:"sector"`
	EconomicActivity string          `json:"economicActivity"`
	AnnualAmount     decimal.Decimal `json:"annualAmount"` // Non-negative
	CurrencyCode     string          `json:"currencyCode"`
	AuditFields
}
