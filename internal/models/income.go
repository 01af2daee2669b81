package models

import "github.com/shopspring/decimal"

// IncomeDeclaration is the database representation of an income declaration.
type IncomeDeclaration struct {
	IncomeID         string          `db:"income_id"`
	ClientID         string          `db:"client_id"`
	Sector           string          `db:"sector"`
	EconomicActivity string          `db:"economic_activity"`
	AnnualAmount     decimal.Decimal `db:"annual_amount"`
	CurrencyCode     string          `db:"currency_code"`
	AuditFields
}
