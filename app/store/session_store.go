// Package store persists the session snapshot to durable local storage.
// The on-disk layout is a single JSON record under a fixed namespace name;
// the hydration flag is never persisted and is recomputed every process
// start.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"fluxdevs/app/domain"
)

// storageName is the fixed namespace for the persisted snapshot.
const storageName = "fluxdevs-user-storage.json"

// FileStore is a session store backed by a single whole-record JSON file.
// In-memory mutations are synchronous; disk persistence is asynchronous and
// best-effort. A crash between a mutation and its flush loses at most that
// mutation; the write-temp-then-rename discipline means the record on disk
// is never torn.
type FileStore struct {
	mu       sync.RWMutex
	session  domain.Session
	hydrated bool

	hydrateOnce sync.Once

	flushMu sync.Mutex
	flushWG sync.WaitGroup
	seq     uint64 // guards against an older flush landing after a newer one
	flushed uint64

	path   string
	logger *slog.Logger
}

// NewFileStore creates a store persisting under dir. Nothing is loaded until
// Hydrate runs.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{
		path:   filepath.Join(dir, storageName),
		logger: logger,
	}, nil
}

// Snapshot returns the latest in-memory session state.
func (s *FileStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Hydrated reports whether the durable snapshot has finished loading.
func (s *FileStore) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Hydrate loads the persisted snapshot into memory. The hydration flag flips
// to true exactly once, after the load completes, even on a second call or
// when no snapshot exists yet. A corrupt record hydrates empty rather than
// failing startup: the user re-authenticates instead of being stuck.
func (s *FileStore) Hydrate(ctx context.Context) error {
	var loadErr error
	s.hydrateOnce.Do(func() {
		if err := ctx.Err(); err != nil {
			loadErr = err
			return
		}

		var snapshot domain.Session
		data, err := os.ReadFile(s.path)
		switch {
		case os.IsNotExist(err):
			// First launch: hydrate empty.
		case err != nil:
			loadErr = fmt.Errorf("failed to read session snapshot: %w", err)
		default:
			if err := json.Unmarshal(data, &snapshot); err != nil {
				s.logger.Warn("session snapshot corrupt, hydrating empty", "error", err)
				snapshot = domain.Session{}
			}
		}

		s.mu.Lock()
		if loadErr == nil {
			s.session = snapshot
		}
		s.setHasHydrated()
		s.mu.Unlock()
	})
	return loadErr
}

// setHasHydrated flips the hydration flag. Internal: only the load-completion
// path above calls it, never application code. Callers hold s.mu.
func (s *FileStore) setHasHydrated() {
	s.hydrated = true
}

// SetUser replaces the user record without touching the token.
func (s *FileStore) SetUser(user *domain.User) {
	s.mu.Lock()
	s.session.User = user
	snapshot := s.session
	seq := s.nextSeq()
	s.mu.Unlock()

	go s.flush(snapshot, seq)
}

// SetToken replaces the token without touching the user.
func (s *FileStore) SetToken(tok string) {
	s.mu.Lock()
	s.session.Token = tok
	snapshot := s.session
	seq := s.nextSeq()
	s.mu.Unlock()

	go s.flush(snapshot, seq)
}

// SetSession replaces user and token in a single mutation, so the gate can
// never observe a token without its user or vice versa.
func (s *FileStore) SetSession(user *domain.User, tok string) {
	s.mu.Lock()
	s.session = domain.Session{User: user, Token: tok}
	snapshot := s.session
	seq := s.nextSeq()
	s.mu.Unlock()

	go s.flush(snapshot, seq)
}

// Logout clears user and token. The clear is synchronous in memory; the disk
// flush follows best-effort like every other mutation.
func (s *FileStore) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	snapshot := s.session
	seq := s.nextSeq()
	s.mu.Unlock()

	go s.flush(snapshot, seq)
}

// nextSeq allocates a flush sequence number and registers the pending flush.
// Callers hold s.mu.
func (s *FileStore) nextSeq() uint64 {
	s.seq++
	s.flushWG.Add(1)
	return s.seq
}

// flush writes the snapshot as a whole record: marshal, write to a temp file,
// rename over the target. Failures are logged, never surfaced; local memory
// is authoritative for the running process.
func (s *FileStore) flush(snapshot domain.Session, seq uint64) {
	defer s.flushWG.Done()

	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	if seq <= s.flushed {
		// A newer mutation already reached disk.
		return
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("failed to marshal session snapshot", "error", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.logger.Error("failed to write session snapshot", "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("failed to replace session snapshot", "error", err)
		return
	}

	s.flushed = seq
}

// Sync blocks until all flushes issued so far have completed. Shutdown and
// tests use it; screen code never needs to.
func (s *FileStore) Sync() {
	s.flushWG.Wait()
}
