package models

import "time"

// Client is the database representation of a client record.
type Client struct {
	ClientID          string     `db:"client_id"`
	PersonType        string     `db:"person_type"`
	TaxID             string     `db:"tax_id"`
	Email             string     `db:"email"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	LegalName         string     `db:"legal_name"`
	BirthDate         *time.Time `db:"birth_date"`
	IncorporationDate *time.Time `db:"incorporation_date"`
	Status            string     `db:"status"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
