package session

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrNotAuthenticated is returned by UpdateUser when no identity is set.
// Patching a session before login is a programmer error, not something the
// store papers over by fabricating a user record.
var ErrNotAuthenticated = errors.New("session: no authenticated user")

// Store is the single source of truth for the current session. Mutations are
// atomic, persist synchronously through the injected Storage, and notify
// subscribers before returning. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	state       State
	storage     Storage
	logger      *slog.Logger
	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore builds a store backed by the given storage and rehydrates any
// previously persisted session. A corrupt or inconsistent record (for example
// an authenticated flag without a token) is discarded rather than trusted.
func NewStore(storage Storage, logger *slog.Logger) (*Store, error) {
	if storage == nil {
		storage = NopStorage{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		storage:     storage,
		logger:      logger,
		subscribers: make(map[int]func(State)),
	}

	loaded, err := storage.Load()
	if err != nil {
		return nil, err
	}
	if loaded != nil {
		if loaded.IsAuthenticated && loaded.Token == "" {
			logger.Warn("discarding persisted session: authenticated without token")
		} else {
			s.state = loaded.clone()
		}
	}

	return s, nil
}

// SetAuth records a successful login: identity and token together, atomically.
func (s *Store) SetAuth(user User, token string) {
	s.mu.Lock()
	s.state.User = &user
	s.state.Token = token
	s.state.IsAuthenticated = true
	s.commitLocked()
}

// SetEmployee sets or clears the enrichment record. It is independent of the
// authentication fields.
func (s *Store) SetEmployee(employee *Employee) {
	s.mu.Lock()
	s.state.Employee = employee
	s.commitLocked()
}

// UpdateUser merges the patch into the current identity. Fields absent from
// the patch keep their previous value.
func (s *Store) UpdateUser(patch UserPatch) error {
	s.mu.Lock()
	if s.state.User == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	s.state.User.Apply(patch)
	s.commitLocked()
	return nil
}

// Logout clears the whole session. Calling it while already logged out is a
// no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	if s.state.User == nil && s.state.Employee == nil && s.state.Token == "" && !s.state.IsAuthenticated {
		s.mu.Unlock()
		return
	}
	s.state = State{}
	s.commitLocked()
}

// Token returns the current bearer token, empty when logged out. The API
// client reads this at dispatch time on every call.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	u := s.state.clone().User
	return u
}

func (s *Store) Employee() *Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Employee == nil {
		return nil
	}
	return s.state.clone().Employee
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsAuthenticated
}

// Snapshot returns a deep copy of the full session state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers an observer called synchronously after every committed
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// commitLocked persists the state and notifies subscribers, then releases the
// lock the caller acquired. Persistence failures are logged, not surfaced:
// the in-memory state is already the truth for this process.
func (s *Store) commitLocked() {
	snapshot := s.state.clone()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	if err := s.storage.Save(snapshot); err != nil {
		s.logger.Error("failed to persist session", "error", err)
	}
	for _, fn := range subs {
		fn(snapshot)
	}
}
