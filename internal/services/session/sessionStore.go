package session

import (
	"context"
	"sync"
	"time"

	"github.com/plateful/recipe-box/internal/services/docstore"
	"github.com/plateful/recipe-box/internal/services/identity"
)

const profilesCollection = "profiles"

// State is the store's knowledge of the current session.
type State int

const (
	// Unresolved means the provider has not yet reported the initial session
	// state. Absence of a session must not be read as "logged out" yet.
	Unresolved State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

// Snapshot is what observers receive. Identity is non-nil only when
// State is Authenticated.
type Snapshot struct {
	State    State
	Identity *identity.Identity
}

// Store is the process-wide source of truth for "who is logged in". It wraps
// the identity provider, tracks resolution, and fans provider transitions out
// to its observers.
type Store struct {
	provider identity.Provider
	docs     docstore.Store

	mu        sync.Mutex
	resolved  bool
	current   *identity.Identity
	nextID    int
	observers map[int]*observer
	closed    bool

	// tasks serializes every delivery, transitions and registration snapshots
	// alike, so an observer never ends on a stale snapshot.
	tasks chan func()

	stopProvider func()
}

type observer struct {
	mu     sync.Mutex
	closed bool
	fn     func(Snapshot)
}

func (o *observer) deliver(snap Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.closed {
		o.fn(snap)
	}
}

// New creates the store and begins tracking the provider's session state.
// The store lives for the process's duration; Close exists for tests.
func New(provider identity.Provider, docs docstore.Store) *Store {
	s := &Store{
		provider:  provider,
		docs:      docs,
		observers: make(map[int]*observer),
		tasks:     make(chan func(), 64),
	}
	go s.run()
	s.stopProvider = provider.OnSessionChange(s.handleSessionChange)
	return s
}

func (s *Store) run() {
	for task := range s.tasks {
		task()
	}
}

func (s *Store) enqueue(task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.tasks <- task
}

// Close detaches the store from the provider's notification stream and stops
// its delivery goroutine.
func (s *Store) Close() {
	s.stopProvider()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()
	close(s.tasks)
}

func (s *Store) handleSessionChange(current *identity.Identity) {
	s.mu.Lock()
	s.resolved = true
	s.current = current
	active := make([]*observer, 0, len(s.observers))
	for _, o := range s.observers {
		active = append(active, o)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.enqueue(func() {
		for _, o := range active {
			o.deliver(snap)
		}
	})
}

func (s *Store) snapshotLocked() Snapshot {
	switch {
	case !s.resolved:
		return Snapshot{State: Unresolved}
	case s.current == nil:
		return Snapshot{State: Anonymous}
	default:
		return Snapshot{State: Authenticated, Identity: s.current}
	}
}

// Current returns the store's present view of the session.
func (s *Store) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Observe registers fn for session snapshots. If the store has already
// resolved, fn receives the current snapshot once shortly after registration;
// afterwards it receives every transition. The returned function unsubscribes,
// guaranteeing no further callbacks once it returns.
func (s *Store) Observe(fn func(Snapshot)) func() {
	o := &observer{fn: fn}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	resolved := s.resolved
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if resolved {
		s.enqueue(func() { o.deliver(snap) })
	}

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()

		o.mu.Lock()
		o.closed = true
		o.mu.Unlock()
	}
}

// SignUp creates an account, then writes the user's profile record. A profile
// write failure propagates to the caller but does not roll back the created
// session: the provider stays authenticated and the returned session is valid.
func (s *Store) SignUp(ctx context.Context, email, password string) (identity.Session, error) {
	sess, err := s.provider.SignUp(ctx, email, password)
	if err != nil {
		return identity.Session{}, err
	}

	profile := docstore.Document{
		"email":     email,
		"createdAt": time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.docs.Set(ctx, profilesCollection, sess.Identity.UserID, profile); err != nil {
		return sess, err
	}

	return sess, nil
}

// SignIn authenticates the given credentials with the provider.
func (s *Store) SignIn(ctx context.Context, email, password string) (identity.Session, error) {
	return s.provider.SignIn(ctx, email, password)
}

// SignOut clears the current session.
func (s *Store) SignOut(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}
