package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the workflow status of a product application.
type ApplicationStatus string

const (
	ApplicationStatusInitiated ApplicationStatus = "INITIATED"
	ApplicationStatusInReview  ApplicationStatus = "IN_REVIEW"
	ApplicationStatusApproved  ApplicationStatus = "APPROVED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// IsValid reports whether s is one of the known application statuses.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusInitiated, ApplicationStatusInReview, ApplicationStatusApproved,
		ApplicationStatusRejected, ApplicationStatusCancelled:
		return true
	}
	return false
}

// allowedTransitions is the explicit table of legal status moves. Approved,
// rejected and cancelled are terminal; cancellation is reachable from any
// non-terminal state.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusInitiated: {ApplicationStatusInReview, ApplicationStatusCancelled},
	ApplicationStatusInReview:  {ApplicationStatusApproved, ApplicationStatusRejected, ApplicationStatusCancelled},
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s.
func (s ApplicationStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// ProductCode identifies a requestable financial product.
type ProductCode string

const (
	ProductSavingsAccount  ProductCode = "CA" // Cuenta de ahorro
	ProductCheckingAccount ProductCode = "CC" // Cuenta de cheques
	ProductAutoFinancing   ProductCode = "FA" // Financiamiento automotriz
	ProductLeasing         ProductCode = "AP" // Arrendamiento puro
)

// IsValid reports whether p is one of the catalog product codes.
func (p ProductCode) IsValid() bool {
	switch p {
	case ProductSavingsAccount, ProductCheckingAccount, ProductAutoFinancing, ProductLeasing:
		return true
	}
	return false
}

// IsCredit reports whether the product carries credit and therefore
// requires a repayment term.
func (p ProductCode) IsCredit() bool {
	return p == ProductAutoFinancing || p == ProductLeasing
}

// RequestedProduct is one line item within a product application. LineNo
// preserves the order the products were requested in.
type RequestedProduct struct {
	ProductID     string          `json:"productID"`
	ApplicationID string          `json:"applicationID"`
	LineNo        int             `json:"lineNo"`
	ProductCode   ProductCode     `json:"productCode"`
	Amount        decimal.Decimal `json:"amount"`       // Zero permitted for non-credit products
	TermMonths    *int            `json:"termMonths"`   // Required >= 1 for credit products
	Observations  string          `json:"observations"`
}

// ProductApplication is a client's application for one or more products,
// identified externally by its folio.
type ProductApplication struct {
	ApplicationID   string             `json:"applicationID"`
	ClientID        string             `json:"clientID"`
	Folio           string             `json:"folio"`
	Status          ApplicationStatus  `json:"status"`
	Observations    string             `json:"observations"`
	StatusChangedAt time.Time          `json:"statusChangedAt"`
	Products        []RequestedProduct `json:"products"`
	AuditFields
}
