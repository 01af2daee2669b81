package models

import "time"

// DocumentType is the database representation of a required-document catalog
// entry. Applicability lives in the doc_type_applicability join table.
type DocumentType struct {
	DocTypeID    string `db:"doc_type_id"`
	Name         string `db:"name"`
	ValidityDays *int   `db:"validity_days"`
	Optional     bool   `db:"optional"`
	AuditFields
}

// DocumentSubmission is the database representation of a submitted document.
type DocumentSubmission struct {
	SubmissionID string     `db:"submission_id"`
	ClientID     string     `db:"client_id"`
	DocTypeID    string     `db:"doc_type_id"`
	StorageURL   string     `db:"storage_url"`
	DocumentDate time.Time  `db:"document_date"`
	ExpiresAt    *time.Time `db:"expires_at"`
	Status       string     `db:"status"`
	AuditFields
}
