package domain_test

import (
	"testing"
	"time"

	"github.com/finmex/onboarding_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func requiredTypes(n int) []domain.RequiredDocumentType {
	types := make([]domain.RequiredDocumentType, n)
	for i := range types {
		types[i] = domain.RequiredDocumentType{
			DocTypeID:     string(rune('A' + i)),
			Name:          "Doc " + string(rune('A'+i)),
			Applicability: map[domain.PersonType]bool{domain.PersonTypeIndividual: true},
		}
	}
	return types
}

func TestRequiredDocumentType_AppliesTo(t *testing.T) {
	docType := domain.RequiredDocumentType{
		Applicability: map[domain.PersonType]bool{
			domain.PersonTypeIndividual: true,
			domain.PersonTypeCorporate:  true,
		},
	}

	assert.True(t, docType.AppliesTo(domain.PersonTypeIndividual))
	assert.True(t, docType.AppliesTo(domain.PersonTypeCorporate))
	assert.False(t, docType.AppliesTo(domain.PersonTypeIndividualBusiness))
}

func TestRequiredDocumentType_ExpiryFor(t *testing.T) {
	docDate := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	nonExpiring := domain.RequiredDocumentType{ValidityDays: nil}
	assert.Nil(t, nonExpiring.ExpiryFor(docDate))

	ninetyDays := domain.RequiredDocumentType{ValidityDays: intPtr(90)}
	expires := ninetyDays.ExpiryFor(docDate)
	assert.NotNil(t, expires)
	assert.Equal(t, docDate.AddDate(0, 0, 90), *expires)
}

func TestDocumentSubmission_Qualifies(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		submission domain.DocumentSubmission
		want       bool
	}{
		{
			name:       "pending without expiry qualifies",
			submission: domain.DocumentSubmission{Status: domain.DocumentStatusPending},
			want:       true,
		},
		{
			name:       "approved with future expiry qualifies",
			submission: domain.DocumentSubmission{Status: domain.DocumentStatusApproved, ExpiresAt: timePtr(now.AddDate(0, 1, 0))},
			want:       true,
		},
		{
			name:       "rejected never qualifies",
			submission: domain.DocumentSubmission{Status: domain.DocumentStatusRejected},
			want:       false,
		},
		{
			name:       "expired does not qualify",
			submission: domain.DocumentSubmission{Status: domain.DocumentStatusApproved, ExpiresAt: timePtr(now.AddDate(0, 0, -1))},
			want:       false,
		},
		{
			name:       "expiring exactly now does not qualify",
			submission: domain.DocumentSubmission{Status: domain.DocumentStatusPending, ExpiresAt: timePtr(now)},
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.submission.Qualifies(now))
		})
	}
}

func TestComputeCompleteness(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	required := requiredTypes(5)

	t.Run("no submissions", func(t *testing.T) {
		got := domain.ComputeCompleteness(required, nil, now)
		assert.Equal(t, 5, got.Required)
		assert.Equal(t, 0, got.Submitted)
		assert.Equal(t, 0, got.Approved)
		assert.Equal(t, "0", got.Percentage.String())
	})

	t.Run("one approved of five required is 20 percent", func(t *testing.T) {
		subs := []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusApproved},
		}
		got := domain.ComputeCompleteness(required, subs, now)
		assert.Equal(t, 5, got.Required)
		assert.Equal(t, 1, got.Submitted)
		assert.Equal(t, 1, got.Approved)
		assert.True(t, got.Percentage.Equal(decimalFromString(t, "20.0")))
	})

	t.Run("pending counts as submitted but not toward percentage", func(t *testing.T) {
		subs := []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusApproved},
			{DocTypeID: "B", Status: domain.DocumentStatusPending},
		}
		got := domain.ComputeCompleteness(required, subs, now)
		assert.Equal(t, 2, got.Submitted)
		assert.Equal(t, 1, got.Approved)
		assert.True(t, got.Percentage.Equal(decimalFromString(t, "20.0")))
	})

	t.Run("rejected and expired submissions are ignored", func(t *testing.T) {
		subs := []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusRejected},
			{DocTypeID: "B", Status: domain.DocumentStatusApproved, ExpiresAt: timePtr(now.AddDate(0, 0, -1))},
		}
		got := domain.ComputeCompleteness(required, subs, now)
		assert.Equal(t, 0, got.Submitted)
		assert.Equal(t, 0, got.Approved)
	})

	t.Run("latest non-rejected submission wins after a rejection", func(t *testing.T) {
		subs := []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusRejected},
			{DocTypeID: "A", Status: domain.DocumentStatusApproved},
		}
		got := domain.ComputeCompleteness(required, subs, now)
		assert.Equal(t, 1, got.Submitted)
		assert.Equal(t, 1, got.Approved)
	})

	t.Run("optional types excluded from required set", func(t *testing.T) {
		withOptional := append(requiredTypes(2), domain.RequiredDocumentType{
			DocTypeID: "Z",
			Optional:  true,
		})
		got := domain.ComputeCompleteness(withOptional, nil, now)
		assert.Equal(t, 2, got.Required)
	})

	t.Run("all approved is 100 percent", func(t *testing.T) {
		subs := make([]domain.DocumentSubmission, 0, 5)
		for _, r := range required {
			subs = append(subs, domain.DocumentSubmission{DocTypeID: r.DocTypeID, Status: domain.DocumentStatusApproved})
		}
		got := domain.ComputeCompleteness(required, subs, now)
		assert.True(t, got.Percentage.Equal(decimalFromString(t, "100")))
	})

	t.Run("percentage rounds to one decimal", func(t *testing.T) {
		three := requiredTypes(3)
		subs := []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusApproved},
		}
		got := domain.ComputeCompleteness(three, subs, now)
		assert.True(t, got.Percentage.Equal(decimalFromString(t, "33.3")))
	})

	t.Run("monotone as documents progress", func(t *testing.T) {
		absent := domain.ComputeCompleteness(required, nil, now)
		pending := domain.ComputeCompleteness(required, []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusPending},
		}, now)
		approved := domain.ComputeCompleteness(required, []domain.DocumentSubmission{
			{DocTypeID: "A", Status: domain.DocumentStatusApproved},
		}, now)

		assert.True(t, pending.Percentage.GreaterThanOrEqual(absent.Percentage))
		assert.True(t, approved.Percentage.GreaterThanOrEqual(pending.Percentage))
		assert.GreaterOrEqual(t, pending.Submitted, absent.Submitted)
	})
}
