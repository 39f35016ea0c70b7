// Package memory implements an in-memory token cache. Nothing survives the
// process; useful for tests and for embedders that do not want a token file
// on disk.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/zini/nella/pkg/tokencache"
)

// Store is an in-memory token cache
type Store struct {
	mu      sync.Mutex
	token   string
	savedAt time.Time
}

// Compile-time check that Store implements tokencache.Store
var _ tokencache.Store = (*Store)(nil)

// New creates an empty in-memory store
func New() *Store {
	return &Store{}
}

// Save stores the token and resets its age
func (s *Store) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.savedAt = time.Now()
	return nil
}

// Load returns the stored token and its age
func (s *Store) Load(ctx context.Context) (*tokencache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return nil, tokencache.ErrTokenNotFound
	}
	return &tokencache.Entry{
		Token: s.token,
		Age:   time.Since(s.savedAt),
	}, nil
}

// Invalidate removes the stored token
func (s *Store) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.savedAt = time.Time{}
	return nil
}

// SetAge backdates the stored token so it reads as saved age ago.
// Exists for tests that exercise staleness handling.
func (s *Store) SetAge(age time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedAt = time.Now().Add(-age)
}
