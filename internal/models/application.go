package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductApplication is the database representation of an application header.
type ProductApplication struct {
	ApplicationID   string    `db:"application_id"`
	ClientID        string    `db:"client_id"`
	Folio           string    `db:"folio"`
	Status          string    `db:"status"`
	Observations    string    `db:"observations"`
	StatusChangedAt time.Time `db:"status_changed_at"`
	AuditFields
}

// RequestedProduct is the database representation of an application line.
type RequestedProduct struct {
	ProductID     string          `db:"product_id"`
	ApplicationID string          `db:"application_id"`
	LineNo        int             `db:"line_no"`
	ProductCode   string          `db:"product_code"`
	Amount        decimal.Decimal `db:"amount"`
	TermMonths    *int            `db:"term_months"`
	Observations  string          `db:"observations"`
}
