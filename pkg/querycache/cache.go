// Package querycache caches backend query results per session with a staleness
// window per key, and drops whole resources when a mutation succeeds.
package querycache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Key identifies a query. Resource is the invalidation unit.
type Key struct {
	Resource string
	Parts    []string
}

func NewKey(resource string, parts ...string) Key {
	return Key{Resource: resource, Parts: parts}
}

type Options struct {
	Prefix    string
	StaleTime time.Duration
	// Scope partitions keys, typically by session. Empty scope means shared.
	Scope  func(ctx context.Context) string
	Logger *logrus.Logger
}

type Client struct {
	backend   Backend
	prefix    string
	staleTime time.Duration
	scope     func(ctx context.Context) string
	logger    *logrus.Logger

	flights singleflight.Group

	// gens counts invalidations per resource; a fetch that started before one
	// must not write its result back.
	mu   sync.RWMutex
	gens map[string]uint64
}

func New(backend Backend, opts Options) *Client {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "qos:query"
	}
	stale := opts.StaleTime
	if stale <= 0 {
		stale = 30 * time.Second
	}
	return &Client{backend: backend, prefix: prefix, staleTime: stale, scope: opts.Scope, logger: opts.Logger, gens: map[string]uint64{}}
}

type fetchConfig struct {
	staleTime time.Duration
}

type FetchOption func(*fetchConfig)

// WithStaleTime overrides the client default for one query.
func WithStaleTime(d time.Duration) FetchOption {
	return func(fc *fetchConfig) { fc.staleTime = d }
}

func (c *Client) resourcePrefix(resource string) string {
	return c.prefix + ":" + resource + ":"
}

func (c *Client) storageKey(ctx context.Context, k Key) string {
	scope := "shared"
	if c.scope != nil {
		if s := c.scope(ctx); s != "" {
			scope = s
		}
	}
	return c.resourcePrefix(k.Resource) + scope + ":" + strings.Join(k.Parts, ":")
}

// Fetch returns the cached value for key or runs fn, caching a successful result.
// Concurrent fetches of the same key share one call to fn, which runs detached
// from any single caller's cancellation. A nil client always runs fn.
func Fetch[T any](ctx context.Context, c *Client, key Key, fn func(ctx context.Context) (T, error), opts ...FetchOption) (T, error) {
	var zero T
	if c == nil || c.backend == nil {
		return fn(ctx)
	}
	fc := fetchConfig{staleTime: c.staleTime}
	for _, o := range opts {
		o(&fc)
	}
	sk := c.storageKey(ctx, key)
	gen := c.generation(key.Resource)

	if raw, ok, err := c.backend.Get(ctx, sk); err != nil {
		c.warn(err, sk, "cache read failed")
	} else if ok {
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		c.warn(err, sk, "cache entry undecodable")
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(sk+"#"+strconv.FormatUint(gen, 10), func() (any, error) {
		val, err := fn(flightCtx)
		if err != nil {
			return val, err
		}
		raw, mErr := json.Marshal(val)
		if mErr != nil {
			return val, nil
		}
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.gens[key.Resource] != gen {
			return val, nil
		}
		if sErr := c.backend.Set(flightCtx, sk, raw, fc.staleTime); sErr != nil {
			c.warn(sErr, sk, "cache write failed")
		}
		return val, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func (c *Client) generation(resource string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[resource]
}

// Invalidate drops every cached query of the given resources across all scopes.
// Fetches already in flight for those resources finish without caching.
func (c *Client) Invalidate(ctx context.Context, resources ...string) {
	if c == nil || c.backend == nil {
		return
	}
	c.mu.Lock()
	for _, r := range resources {
		c.gens[r]++
	}
	c.mu.Unlock()
	for _, r := range resources {
		if err := c.backend.DeletePrefix(ctx, c.resourcePrefix(r)); err != nil {
			c.warn(err, r, "cache invalidation failed")
		}
	}
}

func (c *Client) warn(err error, key, msg string) {
	if c.logger == nil {
		return
	}
	c.logger.WithError(err).WithField("key", key).Warn(msg)
}
