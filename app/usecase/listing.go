package usecase

import (
	"context"
	"log/slog"
	"strings"

	"fluxdevs/app/domain"
	"fluxdevs/app/port"
)

// DirectoryService backs the paginated list screens. Each fetch replaces the
// previously displayed page; nothing is aggregated or cached locally.
type DirectoryService struct {
	identity port.IdentityGateway
	billing  port.BillingGateway
	logger   *slog.Logger
}

// NewDirectoryService wires the directory service.
func NewDirectoryService(identity port.IdentityGateway, billing port.BillingGateway, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{
		identity: identity,
		billing:  billing,
		logger:   logger,
	}
}

// Tenants fetches one page of tenants.
func (d *DirectoryService) Tenants(ctx context.Context, page int) (*domain.Page[domain.Tenant], error) {
	return d.identity.ListTenants(ctx, page)
}

// CreateTenant creates a tenant outside the onboarding wizard.
func (d *DirectoryService) CreateTenant(ctx context.Context, name, industry string) (*domain.Tenant, error) {
	req, err := domain.NewCreateTenantRequest(name, industry)
	if err != nil {
		return nil, domain.NewValidationError("name", err.Error())
	}
	return d.identity.CreateTenant(ctx, *req)
}

// UpdateTenant applies partial updates. Empty fields are left untouched.
func (d *DirectoryService) UpdateTenant(ctx context.Context, id, name, industry string) (*domain.Tenant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.NewValidationError("id", "tenant id is required")
	}
	var updates domain.TenantUpdates
	if name = strings.TrimSpace(name); name != "" {
		updates.Name = &name
	}
	if industry = strings.TrimSpace(industry); industry != "" {
		updates.Industry = &industry
	}
	if updates.Name == nil && updates.Industry == nil {
		return nil, domain.NewValidationError("updates", "nothing to update")
	}
	return d.identity.UpdateTenant(ctx, id, updates)
}

// DeleteTenant removes a tenant.
func (d *DirectoryService) DeleteTenant(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "tenant id is required")
	}
	return d.identity.DeleteTenant(ctx, id)
}

// Branches fetches one page of branches.
func (d *DirectoryService) Branches(ctx context.Context, page int) (*domain.Page[domain.Branch], error) {
	return d.identity.ListBranches(ctx, page)
}

// CreateBranch creates a branch, checking the name first so a taken name
// fails locally with a clear message instead of a server rejection.
func (d *DirectoryService) CreateBranch(ctx context.Context, name, location string) (*domain.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "branch name is required")
	}

	availability, err := d.identity.CheckBranchName(ctx, name)
	if err != nil {
		return nil, err
	}
	if availability == domain.AvailabilityTaken {
		return nil, domain.ErrNameTaken
	}

	return d.identity.CreateBranch(ctx, domain.CreateBranchRequest{Name: name, Location: location})
}

// Plans fetches the plan catalogue.
func (d *DirectoryService) Plans(ctx context.Context) ([]domain.Plan, error) {
	return d.billing.ListPlans(ctx)
}

// Subscriptions fetches one page of the tenant's subscriptions.
func (d *DirectoryService) Subscriptions(ctx context.Context, page int) (*domain.Page[domain.Subscription], error) {
	return d.billing.ListSubscriptions(ctx, page)
}
