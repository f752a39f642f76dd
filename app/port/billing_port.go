package port

//go:generate mockgen -source=billing_port.go -destination=../mocks/mock_billing_port.go -package=mocks

import (
	"context"

	"fluxdevs/app/domain"
)

// BillingGateway defines the billing service contract.
type BillingGateway interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	CreatePlan(ctx context.Context, plan domain.Plan) (*domain.Plan, error)
	UpdatePlan(ctx context.Context, id string, plan domain.Plan) (*domain.Plan, error)
	DeletePlan(ctx context.Context, id string) error
	ListSubscriptions(ctx context.Context, page int) (*domain.Page[domain.Subscription], error)
	ActivateTrial(ctx context.Context, planID string) (*domain.Subscription, error)
}

// PaymentGateway defines the payment service contract. Initiate returns the
// provider redirect URL; an empty URL means no checkout step is required.
type PaymentGateway interface {
	Initiate(ctx context.Context, req domain.PaymentInitiateRequest) (*domain.PaymentInitiation, error)
}

// BrowserOpener opens the provider checkout URL outside the app. The wizard
// does not regain control until the user manually confirms completion.
type BrowserOpener interface {
	Open(url string) error
}
