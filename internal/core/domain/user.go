package domain

import "time"

// UserRole is the permission role of an operator account.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleAnalyst UserRole = "ANALYST"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAnalyst
}

// User is an operator of the onboarding backoffice, not an onboarded client.
type User struct {
	UserID       string   `json:"userID"`
	Username     string   `json:"username"` // Unique
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
