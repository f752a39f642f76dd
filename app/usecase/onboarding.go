package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"fluxdevs/app/domain"
	"fluxdevs/app/port"
)

// OnboardingFlow drives the provisioning wizard: company creation, plan
// selection and payment. At most one remote mutation runs at a time; a
// second submission while one is in flight is rejected, not queued. The
// wizard state lives only in memory and is discarded with the process.
type OnboardingFlow struct {
	store    port.SessionStore
	identity port.IdentityGateway
	billing  port.BillingGateway
	payments port.PaymentGateway
	browser  port.BrowserOpener
	names    *AvailabilityChecker
	logger   *slog.Logger

	callbackURL string
	provider    domain.PaymentProvider

	mu       sync.Mutex
	inFlight bool
	progress *domain.OnboardingProgress
}

// OnboardingDeps carries the flow's collaborators.
type OnboardingDeps struct {
	Store    port.SessionStore
	Identity port.IdentityGateway
	Billing  port.BillingGateway
	Payments port.PaymentGateway
	Browser  port.BrowserOpener
	Names    *AvailabilityChecker
	Logger   *slog.Logger

	// CallbackURL is where the provider sends the user after checkout.
	CallbackURL string
	Provider    domain.PaymentProvider
}

// NewOnboardingFlow creates a wizard at the company-form stage.
func NewOnboardingFlow(deps OnboardingDeps) *OnboardingFlow {
	provider := deps.Provider
	if provider == "" {
		provider = domain.ProviderPaystack
	}
	callbackURL := deps.CallbackURL
	if callbackURL == "" {
		callbackURL = domain.CallbackURL("fluxdevs")
	}
	return &OnboardingFlow{
		store:       deps.Store,
		identity:    deps.Identity,
		billing:     deps.Billing,
		payments:    deps.Payments,
		browser:     deps.Browser,
		names:       deps.Names,
		logger:      deps.Logger,
		callbackURL: callbackURL,
		provider:    provider,
		progress:    domain.NewOnboardingProgress(),
	}
}

// Stage returns the wizard's current stage.
func (f *OnboardingFlow) Stage() domain.OnboardingStage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress.Stage
}

// Names exposes the company-name availability checker.
func (f *OnboardingFlow) Names() *AvailabilityChecker {
	return f.names
}

// begin claims the single in-flight slot.
func (f *OnboardingFlow) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return domain.ErrRequestInFlight
	}
	f.inFlight = true
	return nil
}

func (f *OnboardingFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

// SubmitCompany creates the tenant from the drafted details. A name the
// checker has flagged taken is rejected locally without calling the server;
// an unchecked name is rejected too since the submit action stays disabled
// until the check settles. On success the session user gains the tenant
// before the stage advances, so a gate evaluation run immediately after no
// longer routes to onboarding.
func (f *OnboardingFlow) SubmitCompany(ctx context.Context, name, industry string) (*domain.Tenant, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	f.mu.Lock()
	if f.progress.Stage != domain.StageCompanyForm {
		stage := f.progress.Stage
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: company already submitted at %s", domain.ErrInvalidTransition, stage)
	}
	if err := f.progress.SetDraft(name, industry); err != nil {
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	draft := f.progress.CompanyDraft
	f.mu.Unlock()

	switch f.names.Result(draft.Name) {
	case domain.AvailabilityTaken:
		return nil, domain.ErrNameTaken
	case domain.AvailabilityChecking:
		return nil, domain.ErrNameUnchecked
	}

	req, err := domain.NewCreateTenantRequest(draft.Name, draft.Industry)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	tenant, err := f.identity.CreateTenant(ctx, *req)
	if err != nil {
		// Stage unchanged; the user retries the same step.
		return nil, err
	}

	session := f.store.Snapshot()
	if session.User != nil {
		user := *session.User
		if err := user.AssignTenant(tenant.Name, tenant.Industry); err != nil {
			return nil, err
		}
		f.store.SetUser(&user)
	}

	f.mu.Lock()
	err = f.progress.Advance(domain.StageCompanyCreated)
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	f.logger.Info("company created",
		slog.String("tenant", tenant.Name),
		slog.String("industry", tenant.Industry),
	)
	return tenant, nil
}

// BeginPlanSelection moves the wizard to plan selection and loads the
// catalogue.
func (f *OnboardingFlow) BeginPlanSelection(ctx context.Context) ([]domain.Plan, error) {
	f.mu.Lock()
	if f.progress.Stage == domain.StageCompanyCreated {
		if err := f.progress.Advance(domain.StagePlanSelection); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	} else if f.progress.Stage != domain.StagePlanSelection {
		stage := f.progress.Stage
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, stage, domain.StagePlanSelection)
	}
	f.mu.Unlock()

	return f.billing.ListPlans(ctx)
}

// SelectPlan initiates payment for the chosen plan. When the provider
// returns a checkout URL the wizard opens it and parks at payment_pending;
// when no checkout is needed (a trial) it confirms immediately.
func (f *OnboardingFlow) SelectPlan(ctx context.Context, plan domain.Plan, autoRenew bool) (*domain.PaymentInitiation, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	f.mu.Lock()
	if f.progress.Stage != domain.StagePlanSelection {
		stage := f.progress.Stage
		f.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot select a plan at %s", domain.ErrInvalidTransition, stage)
	}
	f.mu.Unlock()

	initiation, err := f.payments.Initiate(ctx, domain.PaymentInitiateRequest{
		PlanID:      plan.ID,
		Provider:    f.provider,
		AutoRenew:   autoRenew,
		CallbackURL: f.callbackURL,
	})
	if err != nil {
		return nil, err
	}

	next := domain.StagePaymentPending
	if initiation.RedirectURL == "" {
		next = domain.StagePlanConfirmed
	}

	f.mu.Lock()
	f.progress.SelectedPlan = &plan
	err = f.progress.Advance(next)
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if initiation.RedirectURL != "" && f.browser != nil {
		if err := f.browser.Open(initiation.RedirectURL); err != nil {
			f.logger.Warn("could not open checkout page",
				slog.String("url", initiation.RedirectURL),
				slog.String("error", err.Error()),
			)
		}
	}

	f.logger.Info("plan selected",
		slog.String("plan", plan.Name),
		slog.String("stage", string(next)),
		slog.String("reference", initiation.Reference),
	)
	return initiation, nil
}

// ConfirmPayment records the user's attestation that checkout completed and
// confirms the plan. The transaction reference is not verified server-side
// here; the billing service reconciles it out of band.
func (f *OnboardingFlow) ConfirmPayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Attestation only applies to a checkout in progress. The trial shortcut
	// reaches plan_confirmed from plan_selection through SelectPlan, never
	// through here.
	if f.progress.Stage != domain.StagePaymentPending {
		return fmt.Errorf("%w: no payment to confirm at %s", domain.ErrInvalidTransition, f.progress.Stage)
	}
	return f.progress.Advance(domain.StagePlanConfirmed)
}

// CancelPayment abandons the pending checkout and returns to plan selection.
func (f *OnboardingFlow) CancelPayment() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.progress.Stage != domain.StagePaymentPending {
		return fmt.Errorf("%w: no payment to cancel at %s", domain.ErrInvalidTransition, f.progress.Stage)
	}
	return f.progress.Advance(domain.StagePlanSelection)
}

// Finish closes the wizard, returning the route the caller should land on.
func (f *OnboardingFlow) Finish() (domain.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.progress.Terminal() {
		return "", fmt.Errorf("%w: onboarding incomplete at %s", domain.ErrInvalidTransition, f.progress.Stage)
	}
	return domain.RouteDashboard, nil
}
