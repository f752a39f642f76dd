package gateway

import (
	"context"
	"log/slog"

	"fluxdevs/app/domain"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/port"
)

// PaymentGateway adapts the payment service's REST API to the domain.
type PaymentGateway struct {
	client *rest.Client
	logger *slog.Logger
}

// NewPaymentGateway creates a payment gateway over the given client.
func NewPaymentGateway(client *rest.Client, logger *slog.Logger) *PaymentGateway {
	return &PaymentGateway{
		client: client,
		logger: logger,
	}
}

var _ port.PaymentGateway = (*PaymentGateway)(nil)

// paymentInitiateResponse covers the field names the two providers use for
// their checkout URL. Paystack returns authorization_url, flutterwave link.
type paymentInitiateResponse struct {
	RedirectURL      string `json:"redirect_url"`
	AuthorizationURL string `json:"authorization_url"`
	Link             string `json:"link"`
	Reference        string `json:"reference"`
}

// Initiate asks the payment service to start a checkout. An empty redirect
// URL in the result means the plan needs no provider step.
func (g *PaymentGateway) Initiate(ctx context.Context, req domain.PaymentInitiateRequest) (*domain.PaymentInitiation, error) {
	resp, err := rest.Post[paymentInitiateResponse](ctx, g.client, "/payment/payment-initiate/", req, "Failed to initiate payment")
	if err != nil {
		return nil, err
	}

	redirect := resp.RedirectURL
	if redirect == "" {
		redirect = resp.AuthorizationURL
	}
	if redirect == "" {
		redirect = resp.Link
	}

	g.logger.Info("payment initiated",
		slog.String("provider", string(req.Provider)),
		slog.String("reference", resp.Reference),
		slog.Bool("checkout_required", redirect != ""),
	)

	return &domain.PaymentInitiation{
		RedirectURL: redirect,
		Reference:   resp.Reference,
	}, nil
}
