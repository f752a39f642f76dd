package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"fluxdevs/app/domain"
)

// LoginResult is the identity service's response to a successful login.
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// SignupRequest is the account-creation payload.
type SignupRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=2,max=100"`
	LastName       string `json:"last_name" validate:"required,min=2,max=100"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	VerifyPassword string `json:"verify_password" validate:"required,eqfield=Password"`
	Username       string `json:"username,omitempty" validate:"omitempty,username"`
}

// IdentityGateway defines the identity service contract: authentication,
// tenant and branch management, and the forgot-password OTP flow.
type IdentityGateway interface {
	// Authentication (unauthenticated except Logout)
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	Signup(ctx context.Context, req SignupRequest) (*domain.User, error)
	Logout(ctx context.Context, token string) error

	// Tenants
	CreateTenant(ctx context.Context, req domain.CreateTenantRequest) (*domain.Tenant, error)
	ListTenants(ctx context.Context, page int) (*domain.Page[domain.Tenant], error)
	UpdateTenant(ctx context.Context, id string, updates domain.TenantUpdates) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, id string) error
	CheckTenantName(ctx context.Context, name, industry string) (domain.Availability, error)

	// Branches
	CreateBranch(ctx context.Context, req domain.CreateBranchRequest) (*domain.Branch, error)
	ListBranches(ctx context.Context, page int) (*domain.Page[domain.Branch], error)
	CheckBranchName(ctx context.Context, name string) (domain.Availability, error)

	// Forgot password (all unauthenticated)
	RequestPasswordOTP(ctx context.Context, email string) error
	ResendPasswordOTP(ctx context.Context, email string) error
	VerifyPasswordOTP(ctx context.Context, email, otp string) error
	SetNewPassword(ctx context.Context, email, newPassword, confirmPassword string) error
}
