package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// PaymentProvider identifies a supported payment processor.
type PaymentProvider string

const (
	ProviderPaystack    PaymentProvider = "paystack"
	ProviderFlutterwave PaymentProvider = "flutterwave"
)

// PaymentStatus is the outcome reported on the provider's return path.
type PaymentStatus string

const (
	PaymentSuccess   PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
	// PaymentProcessing covers statuses this client does not recognize; the
	// provider has the authoritative outcome.
	PaymentProcessing PaymentStatus = "processing"
)

// PaymentInitiateRequest is the payload sent to the payment service.
type PaymentInitiateRequest struct {
	PlanID      string          `json:"plan_id" validate:"required"`
	Provider    PaymentProvider `json:"provider" validate:"required"`
	AutoRenew   bool            `json:"auto_renew"`
	CallbackURL string          `json:"callback_url,omitempty"`
}

// PaymentInitiation is the normalized payment-initiate response. An empty
// RedirectURL means no provider checkout is needed (trial activation) and the
// wizard skips the payment_pending stage.
type PaymentInitiation struct {
	RedirectURL string `json:"redirect_url,omitempty"`
	Reference   string `json:"reference,omitempty"`
}

// PaymentResult is the parse of the provider's return deep link
// (<scheme>://payment-callback?status=...&reference=...). It is display-only:
// the callback screen never feeds it back into onboarding state.
type PaymentResult struct {
	Status    PaymentStatus
	Reference string
}

// ParsePaymentCallback extracts status and reference from a callback query.
// A missing status reads as success (the providers omit it on some success
// paths); an unrecognized status reads as processing rather than guessing an
// outcome. The reference falls back to the provider's trxref field.
func ParsePaymentCallback(query url.Values) PaymentResult {
	status := PaymentStatus(strings.ToLower(query.Get("status")))
	switch status {
	case PaymentSuccess, PaymentFailed, PaymentCancelled:
	case "":
		status = PaymentSuccess
	default:
		status = PaymentProcessing
	}

	reference := query.Get("reference")
	if reference == "" {
		reference = query.Get("trxref")
	}

	return PaymentResult{Status: status, Reference: reference}
}

// CallbackURL builds the deep-link return path for the given app scheme.
func CallbackURL(scheme string) string {
	return fmt.Sprintf("%s://payment-callback", scheme)
}
