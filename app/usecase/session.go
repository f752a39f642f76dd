package usecase

import (
	"context"
	"log/slog"
	"time"

	"fluxdevs/app/domain"
	"fluxdevs/app/port"
	"fluxdevs/app/utils/validator"
)

// SessionService owns the authenticated session: login, signup, logout and
// the gate inputs derived from the store.
type SessionService struct {
	store    port.SessionStore
	identity port.IdentityGateway
	validate *validator.Validator
	logger   *slog.Logger
}

// NewSessionService wires the session service.
func NewSessionService(store port.SessionStore, identity port.IdentityGateway, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:    store,
		identity: identity,
		validate: validator.New(),
		logger:   logger,
	}
}

// Hydrate loads the persisted session into memory. Safe to call more than
// once; only the first call reads storage.
func (s *SessionService) Hydrate(ctx context.Context) error {
	return s.store.Hydrate(ctx)
}

// Login authenticates and stores the resulting session. User and token are
// written in one atomic store mutation so no gate evaluation can observe a
// token without its user.
func (s *SessionService) Login(ctx context.Context, identifier, password string) (*domain.User, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.identity.Login(ctx, identifier, password)
	if err != nil {
		return nil, err
	}

	s.store.SetSession(result.User, result.AccessToken)
	s.logger.Info("logged in",
		slog.String("email", result.User.Email),
		slog.Bool("provisioned", result.User.Provisioned()),
	)
	return result.User, nil
}

// Signup registers a new account. It does not log the account in; the
// caller routes to login afterwards.
func (s *SessionService) Signup(ctx context.Context, req port.SignupRequest) (*domain.User, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, err
	}
	return s.identity.Signup(ctx, req)
}

// Logout clears the local session synchronously, then revokes the server
// token in the background. The local clear is authoritative: a failed remote
// revocation is logged, never retried and never surfaced.
func (s *SessionService) Logout() {
	snapshot := s.store.Snapshot()
	s.store.Logout()

	if snapshot.Token == "" {
		return
	}
	go func(tok string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.identity.Logout(ctx, tok); err != nil {
			s.logger.Warn("remote logout failed", slog.String("error", err.Error()))
		}
	}(snapshot.Token)
}

// GateInput bundles the current session snapshot for a gate evaluation.
func (s *SessionService) GateInput(route domain.Route, now time.Time) GateInput {
	snapshot := s.store.Snapshot()
	return GateInput{
		Hydrated: s.store.Hydrated(),
		Token:    snapshot.Token,
		User:     snapshot.User,
		Route:    route,
		Now:      now,
	}
}

// Current returns the in-memory session snapshot.
func (s *SessionService) Current() domain.Session {
	return s.store.Snapshot()
}

// RequestPasswordOTP starts the forgot-password flow for an email.
func (s *SessionService) RequestPasswordOTP(ctx context.Context, email string) error {
	if !validator.IsValidEmail(email) {
		return domain.NewValidationError("email", "invalid email address")
	}
	return s.identity.RequestPasswordOTP(ctx, email)
}

// ResendPasswordOTP re-sends the one-time code.
func (s *SessionService) ResendPasswordOTP(ctx context.Context, email string) error {
	return s.identity.ResendPasswordOTP(ctx, email)
}

// VerifyPasswordOTP checks the one-time code.
func (s *SessionService) VerifyPasswordOTP(ctx context.Context, email, otp string) error {
	return s.identity.VerifyPasswordOTP(ctx, email, otp)
}

// SetNewPassword completes the forgot-password flow.
func (s *SessionService) SetNewPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return domain.NewValidationError("confirm_password", "passwords do not match")
	}
	return s.identity.SetNewPassword(ctx, email, newPassword, confirmPassword)
}
