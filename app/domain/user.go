package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// UserRole represents the role of a user within a tenant
type UserRole string

const (
	UserRoleOwner    UserRole = "owner"
	UserRoleAdmin    UserRole = "admin"
	UserRoleStaff    UserRole = "staff"
	UserRoleReadonly UserRole = "readonly"
)

// User represents the authenticated account as returned by the identity
// service. TenantName is empty until the account has completed company
// onboarding; the session gate keys off that field.
type User struct {
	Email          string   `json:"email"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Username       string   `json:"username,omitempty"`
	Role           UserRole `json:"role"`
	TenantName     string   `json:"tenant_name,omitempty"`
	TenantIndustry string   `json:"tenant_industry,omitempty"`
}

// NewUser creates a user record with validation
func NewUser(email, firstName, lastName string, role UserRole) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if role == "" {
		role = UserRoleStaff
	}

	return &User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
	}, nil
}

// Validate reports whether the record carries the fields every identity
// response must include. A user failing this check is treated as absent by
// the session gate (fail closed) rather than crashing downstream code.
func (u *User) Validate() error {
	if u == nil {
		return ErrSessionInvalid
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: user missing email", ErrSessionInvalid)
	}
	if strings.TrimSpace(string(u.Role)) == "" {
		return fmt.Errorf("%w: user missing role", ErrSessionInvalid)
	}
	return nil
}

// Provisioned returns true once the user has a completed company setup.
func (u *User) Provisioned() bool {
	return u != nil && strings.TrimSpace(u.TenantName) != ""
}

// AssignTenant records the company created during onboarding.
func (u *User) AssignTenant(name, industry string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	u.TenantName = name
	u.TenantIndustry = industry
	return nil
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
