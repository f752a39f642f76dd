package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"fluxdevs/app/domain"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/port"
)

// BillingGateway adapts the billing service's REST API to the domain.
type BillingGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewBillingGateway creates a billing gateway over the given client.
func NewBillingGateway(client *rest.Client, logger *slog.Logger) *BillingGateway {
	return &BillingGateway{
		client: client,
		logger: logger,
	}
}

var _ port.BillingGateway = (*BillingGateway)(nil)

// ListPlans fetches every available plan. The catalogue is small so the
// service does not paginate it; the first page carries all results.
func (g *BillingGateway) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	page, err := rest.GetPage[domain.Plan](ctx, g.client, "/billing/plans/", 1, "Failed to load plans")
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreatePlan adds a plan to the catalogue. Owner-only on the server side.
func (g *BillingGateway) CreatePlan(ctx context.Context, plan domain.Plan) (*domain.Plan, error) {
	return rest.Post[domain.Plan](ctx, g.client, "/billing/plans/", plan, "Failed to create plan")
}

// UpdatePlan applies changes to a catalogue plan.
func (g *BillingGateway) UpdatePlan(ctx context.Context, id string, plan domain.Plan) (*domain.Plan, error) {
	return rest.Patch[domain.Plan](ctx, g.client, fmt.Sprintf("/billing/plans/%s/", id), plan, "Failed to update plan")
}

// DeletePlan removes a catalogue plan.
func (g *BillingGateway) DeletePlan(ctx context.Context, id string) error {
	return rest.Delete(ctx, g.client, fmt.Sprintf("/billing/plans/%s/", id), "Failed to delete plan")
}

// ListSubscriptions fetches one page of the tenant's subscriptions.
func (g *BillingGateway) ListSubscriptions(ctx context.Context, page int) (*domain.Page[domain.Subscription], error) {
	return rest.GetPage[domain.Subscription](ctx, g.client, "/billing/subscriptions/", page, "Failed to load subscriptions")
}

// ActivateTrial starts a trial subscription on the given plan without a
// provider checkout.
func (g *BillingGateway) ActivateTrial(ctx context.Context, planID string) (*domain.Subscription, error) {
	payload := map[string]string{"plan_id": planID}
	return rest.Post[domain.Subscription](ctx, g.client, "/billing/trial/", payload, "Failed to activate trial")
}
