// Package session holds the signed-in state of one browser: the
// isAuthenticated flag and the bearer token, persisted in a storage.SessionStore
// under the keys the browser client kept in localStorage.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/endoclin/admin/internal/storage"
)

const (
	KeyAuthToken       = "authToken"
	KeyIsAuthenticated = "isAuthenticated"
)

var ErrEmptyToken = errors.New("session: empty token")

type Session struct {
	store     storage.SessionStore
	namespace string

	mu              sync.RWMutex
	isAuthenticated bool
	token           string
}

// Load reads the persisted state for namespace. Only the literal "true" counts
// as authenticated; no expiry or remote check is made.
func Load(ctx context.Context, store storage.SessionStore, namespace string) (*Session, error) {
	s := &Session{store: store, namespace: namespace}
	flag, _, err := store.Get(ctx, namespace, KeyIsAuthenticated)
	if err != nil {
		return nil, err
	}
	token, _, err := store.Get(ctx, namespace, KeyAuthToken)
	if err != nil {
		return nil, err
	}
	s.isAuthenticated = flag == "true"
	s.token = token
	return s, nil
}

func (s *Session) Namespace() string { return s.namespace }

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Login persists the token and the flag, then marks the session authenticated.
func (s *Session) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Set(ctx, s.namespace, KeyAuthToken, token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, s.namespace, KeyIsAuthenticated, "true"); err != nil {
		return err
	}
	s.mu.Lock()
	s.token = token
	s.isAuthenticated = true
	s.mu.Unlock()
	return nil
}

// Clear removes both persisted keys. The in-memory state is reset even when the
// store fails, so the caller always ends up signed out.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.isAuthenticated = false
	s.mu.Unlock()
	return s.store.Remove(ctx, s.namespace, KeyAuthToken, KeyIsAuthenticated)
}
