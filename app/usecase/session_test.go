package usecase_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fluxdevs/app/domain"
	"fluxdevs/app/mocks"
	"fluxdevs/app/port"
	"fluxdevs/app/usecase"
)

func newSessionService(t *testing.T) (*usecase.SessionService, *mocks.MockSessionStore, *mocks.MockIdentityGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)
	identity := mocks.NewMockIdentityGateway(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return usecase.NewSessionService(store, identity, logger), store, identity
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores user and token in one mutation", func(t *testing.T) {
		svc, store, identity := newSessionService(t)

		user := validUser("")
		identity.EXPECT().
			Login(gomock.Any(), "ada@example.com", "secret").
			Return(&port.LoginResult{User: user, AccessToken: "abc"}, nil)
		store.EXPECT().SetSession(user, "abc")

		got, err := svc.Login(ctx, "ada@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("empty credentials fail without a network call", func(t *testing.T) {
		svc, _, _ := newSessionService(t)

		_, err := svc.Login(ctx, "", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("gateway failure leaves the store untouched", func(t *testing.T) {
		svc, _, identity := newSessionService(t)

		identity.EXPECT().
			Login(gomock.Any(), "ada@example.com", "wrong").
			Return(nil, domain.NewAPIError(401, "Invalid credentials", domain.ErrRejected))

		_, err := svc.Login(ctx, "ada@example.com", "wrong")
		assert.Error(t, err)
	})
}

// Fresh login with an unprovisioned user: the gate on dashboard must route
// to onboarding.
func TestSessionService_LoginThenGate(t *testing.T) {
	svc, store, identity := newSessionService(t)

	user := validUser("")
	identity.EXPECT().
		Login(gomock.Any(), "ada@example.com", "secret").
		Return(&port.LoginResult{User: user, AccessToken: "abc"}, nil)

	session := domain.Session{}
	store.EXPECT().SetSession(user, "abc").Do(func(u *domain.User, tok string) {
		session = domain.Session{User: u, Token: tok}
	})

	_, err := svc.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)

	decision := usecase.EvaluateGate(usecase.GateInput{
		Hydrated: true,
		Token:    session.Token,
		User:     session.User,
		Route:    domain.RouteDashboard,
		Now:      time.Now(),
	})
	assert.Equal(t, usecase.GateRedirect, decision.Action)
	assert.Equal(t, domain.RouteOnboarding, decision.Target)
}

func TestSessionService_Logout(t *testing.T) {
	t.Run("clears locally and revokes in the background", func(t *testing.T) {
		svc, store, identity := newSessionService(t)

		store.EXPECT().Snapshot().Return(domain.Session{User: validUser("Acme Ltd"), Token: "abc"})
		store.EXPECT().Logout()

		revoked := make(chan string, 1)
		identity.EXPECT().Logout(gomock.Any(), "abc").DoAndReturn(func(_ context.Context, tok string) error {
			revoked <- tok
			return nil
		})

		svc.Logout()

		select {
		case tok := <-revoked:
			assert.Equal(t, "abc", tok)
		case <-time.After(time.Second):
			t.Fatal("remote logout never ran")
		}
	})

	t.Run("failed revocation is swallowed", func(t *testing.T) {
		svc, store, identity := newSessionService(t)

		store.EXPECT().Snapshot().Return(domain.Session{User: validUser("Acme Ltd"), Token: "abc"})
		store.EXPECT().Logout()

		done := make(chan struct{})
		identity.EXPECT().Logout(gomock.Any(), "abc").DoAndReturn(func(_ context.Context, _ string) error {
			close(done)
			return domain.ErrUnavailable
		})

		svc.Logout()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("remote logout never ran")
		}
	})

	t.Run("logged-out session skips the remote call", func(t *testing.T) {
		svc, store, _ := newSessionService(t)

		store.EXPECT().Snapshot().Return(domain.Session{})
		store.EXPECT().Logout()

		svc.Logout()
	})
}

func TestSessionService_SetNewPassword(t *testing.T) {
	svc, _, _ := newSessionService(t)

	err := svc.SetNewPassword(context.Background(), "ada@example.com", "newpass123", "different")
	assert.Error(t, err)
}
