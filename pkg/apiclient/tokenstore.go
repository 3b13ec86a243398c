package apiclient

import (
	"context"
	"sync"
)

// TokenStore holds the session token attached as the bearer credential.
type TokenStore interface {
	Get(ctx context.Context) string
	Set(ctx context.Context, token string)
	Clear(ctx context.Context)
}

// MemoryStore keeps a single token for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Get(context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Set(_ context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *MemoryStore) Clear(context.Context) {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

type sessionKey struct{}

// session is the per-request token slot. Handlers read it back after
// login/logout to mirror the change into the cookie.
type session struct {
	mu    sync.Mutex
	token string
}

// WithSession returns a context carrying a mutable session slot seeded with token.
func WithSession(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionKey{}, &session{token: token})
}

// SessionToken returns the current token of the request session, if any.
func SessionToken(ctx context.Context) string {
	s, ok := ctx.Value(sessionKey{}).(*session)
	if !ok {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ContextStore reads and writes the token slot installed by WithSession.
// Writes on a context without a slot are dropped.
type ContextStore struct{}

func (ContextStore) Get(ctx context.Context) string { return SessionToken(ctx) }

func (ContextStore) Set(ctx context.Context, token string) {
	if s, ok := ctx.Value(sessionKey{}).(*session); ok {
		s.mu.Lock()
		s.token = token
		s.mu.Unlock()
	}
}

func (ContextStore) Clear(ctx context.Context) {
	ContextStore{}.Set(ctx, "")
}

type requestIDKey struct{}

// WithRequestID tags outbound calls made with ctx with the given request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
