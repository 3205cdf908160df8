package localProvider

import (
	"context"
	"sync"
	"time"

	"github.com/plateful/recipe-box/internal/services/docstore"
	"github.com/plateful/recipe-box/internal/services/identity"
	"github.com/plateful/recipe-box/pkg/auth/tokenAuth"
	"github.com/plateful/recipe-box/pkg/tools/password"
	"github.com/plateful/recipe-box/pkg/tools/validators"
)

const usersCollection = "users"

// Provider authenticates against credential records in the document store and
// mints paseto access tokens. It is the identity backend for deployments that
// do not delegate auth to an external service.
type Provider struct {
	docs          docstore.Store
	tokens        tokenAuth.Maker
	tokenDuration time.Duration

	mu        sync.Mutex
	current   *identity.Identity
	nextID    int
	listeners map[int]*listener
	closed    bool

	// tasks serializes every callback delivery so listeners see transitions
	// in the order they happened.
	tasks chan func()
}

type listener struct {
	mu     sync.Mutex
	closed bool
	fn     func(*identity.Identity)
}

func (l *listener) deliver(current *identity.Identity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.fn(current)
	}
}

// New creates a Provider over the given store and token maker.
func New(docs docstore.Store, tokens tokenAuth.Maker, tokenDuration time.Duration) *Provider {
	p := &Provider{
		docs:          docs,
		tokens:        tokens,
		tokenDuration: tokenDuration,
		listeners:     make(map[int]*listener),
		tasks:         make(chan func(), 64),
	}
	go p.run()
	return p
}

func (p *Provider) run() {
	for task := range p.tasks {
		task()
	}
}

func (p *Provider) enqueue(task func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.tasks <- task
}

// Close stops the delivery goroutine. Registered listeners receive no further
// callbacks once Close returns.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()
	close(p.tasks)
}

// OnSessionChange registers fn for session transitions. fn receives the current
// state once shortly after registration, then once per transition. The returned
// function unsubscribes; after it returns, fn is never invoked again.
func (p *Provider) OnSessionChange(fn func(current *identity.Identity)) func() {
	l := &listener{fn: fn}

	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = l
	current := p.current
	p.mu.Unlock()

	p.enqueue(func() { l.deliver(current) })

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()

		l.mu.Lock()
		l.closed = true
		l.mu.Unlock()
	}
}

func (p *Provider) setCurrent(current *identity.Identity) {
	p.mu.Lock()
	p.current = current
	active := make([]*listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		active = append(active, l)
	}
	p.mu.Unlock()

	p.enqueue(func() {
		for _, l := range active {
			l.deliver(current)
		}
	})
}

func (p *Provider) findByEmail(ctx context.Context, email string) (string, docstore.Document, error) {
	records, err := p.docs.Scan(ctx, usersCollection)
	if err != nil {
		return "", nil, err
	}
	for _, record := range records {
		if stored, ok := record.Doc["email"].(string); ok && stored == email {
			return record.ID, record.Doc, nil
		}
	}
	return "", nil, nil
}

func (p *Provider) SignUp(ctx context.Context, email, pw string) (identity.Session, error) {
	if !validators.Email(email) {
		return identity.Session{}, &identity.AuthError{Message: "invalid email address"}
	}
	if !validators.Password(pw) {
		return identity.Session{}, &identity.AuthError{Message: "password must be between 6 and 24 characters"}
	}

	existingID, _, err := p.findByEmail(ctx, email)
	if err != nil {
		return identity.Session{}, &identity.AuthError{Message: "could not create account", Err: err}
	}
	if existingID != "" {
		return identity.Session{}, &identity.AuthError{Message: "email already in use"}
	}

	hashedPassword, err := password.HashPassword(pw)
	if err != nil {
		return identity.Session{}, &identity.AuthError{Message: "could not create account", Err: err}
	}

	userID, err := p.docs.Insert(ctx, usersCollection, docstore.Document{
		"email":          email,
		"hashedPassword": hashedPassword,
		"createdAt":      time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return identity.Session{}, &identity.AuthError{Message: "could not create account", Err: err}
	}

	return p.startSession(userID, email)
}

func (p *Provider) SignIn(ctx context.Context, email, pw string) (identity.Session, error) {
	userID, doc, err := p.findByEmail(ctx, email)
	if err != nil {
		return identity.Session{}, &identity.AuthError{Message: "could not sign in", Err: err}
	}
	if userID == "" {
		return identity.Session{}, &identity.AuthError{Message: "invalid email or password"}
	}

	hashedPassword, _ := doc["hashedPassword"].(string)
	if err := password.CheckPassword(pw, hashedPassword); err != nil {
		return identity.Session{}, &identity.AuthError{Message: "invalid email or password", Err: err}
	}

	return p.startSession(userID, email)
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.setCurrent(nil)
	return nil
}

func (p *Provider) startSession(userID, email string) (identity.Session, error) {
	token, err := p.tokens.CreateToken(userID, email, p.tokenDuration)
	if err != nil {
		return identity.Session{}, &identity.AuthError{Message: "could not start session", Err: err}
	}

	id := identity.Identity{UserID: userID, Email: email}

	// Switching accounts passes through the signed-out state first, so
	// listeners never see one identity replaced directly by another.
	p.mu.Lock()
	previous := p.current
	p.mu.Unlock()
	if previous != nil && previous.UserID != userID {
		p.setCurrent(nil)
	}
	p.setCurrent(&id)

	return identity.Session{
		Identity:    id,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(p.tokenDuration),
	}, nil
}
