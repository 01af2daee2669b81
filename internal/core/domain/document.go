package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the review status of a document submission.
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

// IsValid reports whether s is one of the known document statuses.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return true
	}
	return false
}

// RequiredDocumentType is a catalog entry describing a KYC document and the
// person types it applies to. Applicability is a set-valued lookup keyed by
// person type rather than one boolean column per type, so adding a person
// type does not ripple through the schema of every consumer.
type RequiredDocumentType struct {
	DocTypeID     string              `json:"docTypeID"`
	Name          string              `json:"name"`
	Applicability map[PersonType]bool `json:"applicability"`
	ValidityDays  *int                `json:"validityDays"` // nil means non-expiring
	Optional      bool                `json:"optional"`
	AuditFields
}

// AppliesTo reports whether the type is required for the given person type.
func (t RequiredDocumentType) AppliesTo(personType PersonType) bool {
	return t.Applicability[personType]
}

// ExpiryFor derives the expiration for a submission dated documentDate.
// Returns nil for non-expiring types.
func (t RequiredDocumentType) ExpiryFor(documentDate time.Time) *time.Time {
	if t.ValidityDays == nil {
		return nil
	}
	expires := documentDate.AddDate(0, 0, *t.ValidityDays)
	return &expires
}

// DocumentSubmission is one uploaded document for a client against a catalog
// type. Prior submissions are retained as history; at most one active
// submission per type counts toward completeness.
type DocumentSubmission struct {
	SubmissionID string         `json:"submissionID"`
	ClientID     string         `json:"clientID"`
	DocTypeID    string         `json:"docTypeID"`
	StorageURL   string         `json:"storageURL"` // Durable locator from the storage collaborator
	DocumentDate time.Time      `json:"documentDate"`
	ExpiresAt    *time.Time     `json:"expiresAt"` // nil for non-expiring types
	Status       DocumentStatus `json:"status"`
	AuditFields
}

// Qualifies reports whether the submission counts toward completeness at the
// given instant: not rejected and not expired.
func (s DocumentSubmission) Qualifies(now time.Time) bool {
	if s.Status == DocumentStatusRejected {
		return false
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return false
	}
	return true
}

// Completeness is the derived KYC document aggregate for a client. It is
// recomputed from source records on every query, never persisted.
type Completeness struct {
	Percentage decimal.Decimal `json:"percentage"` // 0-100, one decimal place
	Required   int             `json:"required"`
	Submitted  int             `json:"submitted"`
	Approved   int             `json:"approved"`
}

// ComputeCompleteness derives the completeness aggregate from the required
// type set and the client's submission history. A required type counts as
// submitted when it has at least one qualifying (non-rejected, non-expired)
// submission, and as approved when at least one of those is approved. Only
// approved types count toward the percentage; pending submissions raise the
// submitted counter only. Optional catalog entries are excluded entirely.
func ComputeCompleteness(required []RequiredDocumentType, submissions []DocumentSubmission, now time.Time) Completeness {
	byType := make(map[string][]DocumentSubmission)
	for _, sub := range submissions {
		byType[sub.DocTypeID] = append(byType[sub.DocTypeID], sub)
	}

	var requiredCount, submitted, approved int
	for _, t := range required {
		if t.Optional {
			continue
		}
		requiredCount++
		hasQualifying := false
		hasApproved := false
		for _, sub := range byType[t.DocTypeID] {
			if !sub.Qualifies(now) {
				continue
			}
			hasQualifying = true
			if sub.Status == DocumentStatusApproved {
				hasApproved = true
			}
		}
		if hasQualifying {
			submitted++
		}
		if hasApproved {
			approved++
		}
	}

	percentage := decimal.NewFromInt(100)
	if requiredCount > 0 {
		percentage = decimal.NewFromInt(int64(approved)).
			Div(decimal.NewFromInt(int64(requiredCount))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	return Completeness{
		Percentage: percentage,
		Required:   requiredCount,
		Submitted:  submitted,
		Approved:   approved,
	}
}
