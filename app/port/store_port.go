package port

//go:generate mockgen -source=store_port.go -destination=../mocks/mock_store_port.go -package=mocks

import (
	"context"

	"fluxdevs/app/domain"
)

// SessionStore defines the persisted session state contract. Mutations are
// synchronous from the caller's perspective; durable persistence is
// asynchronous and best-effort, whole-record per write.
type SessionStore interface {
	// Snapshot returns the latest in-memory session state.
	Snapshot() domain.Session

	// Hydrated reports whether the durable snapshot has finished loading.
	Hydrated() bool

	// Hydrate loads the persisted snapshot into memory and flips the
	// hydration flag exactly once. Invoked by the startup path, never by
	// screen code.
	Hydrate(ctx context.Context) error

	// SetUser replaces the user record without touching the token.
	SetUser(user *domain.User)

	// SetToken replaces the token without touching the user.
	SetToken(token string)

	// SetSession replaces user and token in a single mutation. Login uses
	// this so no gate evaluation can observe a half-written session.
	SetSession(user *domain.User, token string)

	// Logout clears user and token synchronously.
	Logout()
}
