package domain

import (
	"regexp"
	"time"
)

// PersonType classifies a client for tax and KYC purposes. It drives which
// fields are mandatory at registration and which documents are required.
type PersonType string

const (
	// PersonTypeIndividual is a natural person without business activity.
	PersonTypeIndividual PersonType = "FISICA"
	// PersonTypeIndividualBusiness is a natural person with business activity.
	PersonTypeIndividualBusiness PersonType = "FISICA_EMPRESARIAL"
	// PersonTypeCorporate is a legal entity.
	PersonTypeCorporate PersonType = "MORAL"
)

// IsValid reports whether p is one of the known person types.
func (p PersonType) IsValid() bool {
	switch p {
	case PersonTypeIndividual, PersonTypeIndividualBusiness, PersonTypeCorporate:
		return true
	}
	return false
}

// IsIndividual reports whether p is one of the natural-person forms.
func (p PersonType) IsIndividual() bool {
	return p == PersonTypeIndividual || p == PersonTypeIndividualBusiness
}

// ClientStatus is the lifecycle status of a client record.
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "ACTIVE"
	ClientStatusInactive  ClientStatus = "INACTIVE"
	ClientStatusSuspended ClientStatus = "SUSPENDED"
)

// IsValid reports whether s is one of the known client statuses.
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusInactive, ClientStatusSuspended:
		return true
	}
	return false
}

// MinClientAgeYears is the minimum age for natural-person clients.
const MinClientAgeYears = 18

// RFC patterns: 13 characters for natural persons, 12 for legal entities.
var (
	taxIDIndividualPattern = regexp.MustCompile(`^[A-ZÑ&]{4}[0-9]{6}[A-Z0-9]{3}$`)
	taxIDCorporatePattern  = regexp.MustCompile(`^[A-ZÑ&]{3}[0-9]{6}[A-Z0-9]{3}$`)
)

// ValidTaxID reports whether taxID matches the RFC pattern for the given
// person type. Callers are expected to uppercase the value first.
func ValidTaxID(personType PersonType, taxID string) bool {
	switch personType {
	case PersonTypeIndividual, PersonTypeIndividualBusiness:
		return taxIDIndividualPattern.MatchString(taxID)
	case PersonTypeCorporate:
		return taxIDCorporatePattern.MatchString(taxID)
	}
	return false
}

// MeetsMinimumAge reports whether a birth date reaches MinClientAgeYears as of now.
func MeetsMinimumAge(birthDate time.Time, now time.Time) bool {
	return !birthDate.AddDate(MinClientAgeYears, 0, 0).After(now)
}

// Client is the identity record at the root of the onboarding workflow.
// Income declarations, document submissions and product applications all
// reference a client by ClientID.
type Client struct {
	ClientID          string       `json:"clientID"`
	PersonType        PersonType   `json:"personType"`
	TaxID             string       `json:"taxID"` // Unique across all clients
	Email             string       `json:"email"` // Unique across all clients
	FirstName         string       `json:"firstName"`         // Natural-person forms only
	LastName          string       `json:"lastName"`          // Natural-person forms only
	LegalName         string       `json:"legalName"`         // Corporate only
	BirthDate         *time.Time   `json:"birthDate"`         // Natural-person forms only
	IncorporationDate *time.Time   `json:"incorporationDate"` // Corporate only
	Status            ClientStatus `json:"status"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete marker
}

// ClientDetail is the read-time join of a client with its associated
// records. It is assembled per query and never stored.
type ClientDetail struct {
	Client
	Incomes      []IncomeDeclaration  `json:"incomes"`
	Documents    []DocumentSubmission `json:"documents"`
	Applications []ProductApplication `json:"applications"`
}

// DisplayName returns the legal name for corporate clients and the composed
// personal name otherwise.
func (c Client) DisplayName() string {
	if c.PersonType == PersonTypeCorporate {
		return c.LegalName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
