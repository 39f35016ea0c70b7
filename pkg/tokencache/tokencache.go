// Package tokencache defines the persistence interface for the cached
// bearer token shared across process invocations.
package tokencache

import (
	"context"
	"time"
)

// Entry represents a cached token together with its age, measured from the
// moment it was last saved.
type Entry struct {
	Token string
	Age   time.Duration
}

// Store defines interface for persisting the session token.
// This is the lowest storage layer - it works with the raw token string and
// knows nothing about staleness policy; staleness is judged by the caller.
type Store interface {
	// Save persists the token and resets its age to zero.
	// A partial write must not corrupt the next Load.
	Save(ctx context.Context, token string) error

	// Load returns the stored token and its age.
	// Returns ErrTokenNotFound if no token has been saved.
	Load(ctx context.Context) (*Entry, error)

	// Invalidate removes the stored token.
	// Invalidating an empty store is not an error.
	Invalidate(ctx context.Context) error
}
