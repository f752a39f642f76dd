package domain

import (
	"fmt"
	"strings"
	"time"
)

// TenantStatus represents the status of a tenant record.
type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "Active"
	TenantStatusSuspended TenantStatus = "Suspended"
)

// Tenant is a customer organization record owned by the identity service.
// Identity is the server-assigned id; the client never merges or caches
// tenants beyond the currently displayed page.
type Tenant struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Industry  string       `json:"industry"`
	Status    TenantStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// Branch is a sub-location belonging to a tenant.
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateTenantRequest is the tenant-creation payload.
type CreateTenantRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Industry string `json:"industry" validate:"required"`
	Status   string `json:"status"`
}

// TenantUpdates carries partial updates to a tenant.
type TenantUpdates struct {
	Name     *string `json:"name,omitempty"`
	Industry *string `json:"industry,omitempty"`
}

// NewCreateTenantRequest builds a creation payload with the fields the
// identity service expects.
func NewCreateTenantRequest(name, industry string) (*CreateTenantRequest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(industry) == "" {
		return nil, fmt.Errorf("industry is required")
	}
	return &CreateTenantRequest{
		Name:     name,
		Industry: industry,
		Status:   string(TenantStatusActive),
	}, nil
}

// CreateBranchRequest is the branch-creation payload.
type CreateBranchRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Location string `json:"location,omitempty"`
}
