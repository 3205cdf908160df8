package identity

import (
	"context"
	"time"
)

// Identity is the opaque handle of an authenticated user.
type Identity struct {
	UserID string
	Email  string
}

// Session is the result of a successful credential operation.
type Session struct {
	Identity    Identity
	AccessToken string
	ExpiresAt   time.Time
}

// AuthError reports a rejected credential operation. Message is safe to show
// to the end user as-is.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Provider authenticates users and tracks the process-wide current session.
// Session-change callbacks are delivered asynchronously, in transition order,
// with a nil identity meaning no session. Every new callback receives the
// current state once shortly after registration.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (Session, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context) error
	OnSessionChange(fn func(current *Identity)) (unsubscribe func())
}
