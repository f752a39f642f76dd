package di

import (
	"fmt"
	"log/slog"

	"fluxdevs/app/callback"
	"fluxdevs/app/config"
	"fluxdevs/app/domain"
	"fluxdevs/app/driver/browser"
	"fluxdevs/app/driver/rest"
	"fluxdevs/app/gateway"
	"fluxdevs/app/port"
	"fluxdevs/app/store"
	"fluxdevs/app/usecase"
)

// Container holds all dependencies for the application.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	Store *store.FileStore

	// Gateways
	Identity port.IdentityGateway
	Billing  port.BillingGateway
	Payments port.PaymentGateway

	// Usecases
	Session    *usecase.SessionService
	Onboarding *usecase.OnboardingFlow
	Directory  *usecase.DirectoryService

	// Callback listener
	Callback *callback.Server
}

// NewContainer creates and wires the full dependency stack.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.Store, err = store.NewFileStore(cfg.Storage.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Every service client reads the token from the live session so a
	// login mid-process takes effect without rewiring.
	opts := rest.Options{
		Timeout:     cfg.HTTP.Timeout,
		RequestsPer: cfg.HTTP.RequestsPer,
		Burst:       cfg.HTTP.Burst,
		Token: func() string {
			return container.Store.Snapshot().Token
		},
	}

	identityClient, err := rest.NewClient(cfg.Services.IdentityURL, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize identity client: %w", err)
	}
	billingClient, err := rest.NewClient(cfg.Services.BillingURL, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize billing client: %w", err)
	}
	paymentClient, err := rest.NewClient(cfg.Services.PaymentURL, opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment client: %w", err)
	}

	container.Identity = gateway.NewIdentityGateway(identityClient, logger)
	container.Billing = gateway.NewBillingGateway(billingClient, logger)
	container.Payments = gateway.NewPaymentGateway(paymentClient, logger)

	names := usecase.NewAvailabilityChecker(
		container.Identity,
		logger,
		cfg.Onboarding.NameCheckDebounce,
		cfg.Onboarding.MinNameLength,
	)

	container.Session = usecase.NewSessionService(container.Store, container.Identity, logger)
	container.Onboarding = usecase.NewOnboardingFlow(usecase.OnboardingDeps{
		Store:       container.Store,
		Identity:    container.Identity,
		Billing:     container.Billing,
		Payments:    container.Payments,
		Browser:     browser.NewOpener(),
		Names:       names,
		Logger:      logger,
		CallbackURL: cfg.Payment.CallbackURL(),
		Provider:    domain.PaymentProvider(cfg.Payment.Provider),
	})
	container.Directory = usecase.NewDirectoryService(container.Identity, container.Billing, logger)
	container.Callback = callback.NewServer(logger, cfg.Payment.RedirectDelay)

	logger.Debug("container initialized")
	return container, nil
}

// Close flushes pending session writes and releases resources.
func (c *Container) Close() error {
	if c.Onboarding != nil {
		c.Onboarding.Names().Close()
	}
	if c.Store != nil {
		c.Store.Sync()
	}
	return nil
}
