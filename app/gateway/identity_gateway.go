package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fluxdevs/app/domain"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/port"
)

// IdentityGateway adapts the identity service's REST API to the domain.
type IdentityGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewIdentityGateway creates an identity gateway over the given client.
func NewIdentityGateway(client *rest.Client, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger,
	}
}

var _ port.IdentityGateway = (*IdentityGateway)(nil)

// loginResponse is the wire shape of a successful login.
type loginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *domain.User `json:"user"`
}

// Login authenticates with the identity service. The returned user may still
// lack a tenant_name; the session gate routes such accounts to onboarding.
func (g *IdentityGateway) Login(ctx context.Context, identifier, password string) (*port.LoginResult, error) {
	payload := map[string]string{
		"identifier": identifier,
		"password":   password,
	}

	resp, err := rest.Post[loginResponse](ctx, g.client, "/user/login/", payload, "Invalid credentials")
	if err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		g.logger.Error("login response missing access_token")
		return nil, domain.NewAPIError(0, "Invalid credentials", domain.ErrInvalidCredentials)
	}
	if resp.User == nil || resp.User.Validate() != nil {
		// Fail closed: a token without a usable user record is a broken
		// session, not a login.
		return nil, domain.NewAPIError(0, "Invalid credentials", domain.ErrSessionInvalid)
	}

	return &port.LoginResult{
		User:         resp.User,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Signup registers a new account.
func (g *IdentityGateway) Signup(ctx context.Context, req port.SignupRequest) (*domain.User, error) {
	return rest.Post[domain.User](ctx, g.client, "/user/signup/", req, "Signup failed")
}

// Logout revokes the server-side token. Callers treat this as best-effort:
// the local session clear has already happened by the time this runs.
func (g *IdentityGateway) Logout(ctx context.Context, tok string) error {
	return g.client.Do(ctx, "POST", "/user/logout/", map[string]string{"token": tok}, nil, "Logout failed")
}

// CreateTenant creates the company record.
func (g *IdentityGateway) CreateTenant(ctx context.Context, req domain.CreateTenantRequest) (*domain.Tenant, error) {
	return rest.Post[domain.Tenant](ctx, g.client, "/tenant/", req, "Failed to create company")
}

// ListTenants fetches one page of tenants.
func (g *IdentityGateway) ListTenants(ctx context.Context, page int) (*domain.Page[domain.Tenant], error) {
	return rest.GetPage[domain.Tenant](ctx, g.client, "/tenant/", page, "Failed to load companies")
}

// UpdateTenant applies partial updates to a tenant.
func (g *IdentityGateway) UpdateTenant(ctx context.Context, id string, updates domain.TenantUpdates) (*domain.Tenant, error) {
	return rest.Patch[domain.Tenant](ctx, g.client, fmt.Sprintf("/tenant/%s/", id), updates, "Failed to update company")
}

// DeleteTenant removes a tenant.
func (g *IdentityGateway) DeleteTenant(ctx context.Context, id string) error {
	return rest.Delete(ctx, g.client, fmt.Sprintf("/tenant/%s/", id), "Failed to delete company")
}

// CheckTenantName asks the identity service whether a company name is free.
// A rejection means taken; only transport failures surface as errors.
func (g *IdentityGateway) CheckTenantName(ctx context.Context, name, industry string) (domain.Availability, error) {
	if industry == "" {
		industry = "Basic"
	}
	payload := domain.CreateTenantRequest{
		Name:     name,
		Industry: industry,
		Status:   string(domain.TenantStatusActive),
	}

	err := g.client.Do(ctx, "POST", "/tenant/check-tenant-name/", payload, nil, "Unavailable")
	if err == nil {
		return domain.AvailabilityAvailable, nil
	}
	if errors.Is(err, domain.ErrRejected) {
		return domain.AvailabilityTaken, nil
	}
	return domain.AvailabilityChecking, err
}

// CreateBranch creates a branch under the current tenant.
func (g *IdentityGateway) CreateBranch(ctx context.Context, req domain.CreateBranchRequest) (*domain.Branch, error) {
	return rest.Post[domain.Branch](ctx, g.client, "/branch/", req, "Failed to create branch")
}

// ListBranches fetches one page of branches.
func (g *IdentityGateway) ListBranches(ctx context.Context, page int) (*domain.Page[domain.Branch], error) {
	return rest.GetPage[domain.Branch](ctx, g.client, "/branch/", page, "Failed to fetch branches")
}

// CheckBranchName asks whether a branch name is free within the tenant.
func (g *IdentityGateway) CheckBranchName(ctx context.Context, name string) (domain.Availability, error) {
	payload := map[string]string{"name": name}

	err := g.client.Do(ctx, "POST", "/branch/check-branch-name/", payload, nil, "Unavailable")
	if err == nil {
		return domain.AvailabilityAvailable, nil
	}
	if errors.Is(err, domain.ErrRejected) {
		return domain.AvailabilityTaken, nil
	}
	return domain.AvailabilityChecking, err
}

// RequestPasswordOTP starts the forgot-password flow.
func (g *IdentityGateway) RequestPasswordOTP(ctx context.Context, email string) error {
	return g.client.Do(ctx, "POST", "/user/forgot-password/request-forgot-password/",
		map[string]string{"email": email}, nil, "Failed to send OTP")
}

// ResendPasswordOTP re-sends the one-time code.
func (g *IdentityGateway) ResendPasswordOTP(ctx context.Context, email string) error {
	return g.client.Do(ctx, "POST", "/user/forgot-password/resend-otp/",
		map[string]string{"email": email}, nil, "Failed to resend OTP")
}

// VerifyPasswordOTP checks the one-time code.
func (g *IdentityGateway) VerifyPasswordOTP(ctx context.Context, email, otp string) error {
	return g.client.Do(ctx, "POST", "/user/forgot-password/verify-otp/",
		map[string]string{"email": email, "otp": otp}, nil, "Invalid OTP")
}

// SetNewPassword completes the forgot-password flow.
func (g *IdentityGateway) SetNewPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	payload := map[string]string{
		"email":            email,
		"new_password":     newPassword,
		"confirm_password": confirmPassword,
	}
	return g.client.Do(ctx, "POST", "/user/forgot-password/set-new-password/", payload, nil, "Failed to reset password")
}
