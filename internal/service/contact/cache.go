package contact

import (
	"context"
	"sync"
	"time"
)

// Cached decorates a Service with a short-lived List cache. Writes through
// Submit or UpdateStatus invalidate the cache, so reads in this process
// reflect stored changes immediately; the TTL bounds staleness caused by
// writers in other processes.
type Cached struct {
	next Service
	ttl  time.Duration

	mu     sync.Mutex
	listed []*Contact
	fresh  bool
	gen    uint64 // bumped on every invalidation
	expiry *time.Timer
}

// NewCached wraps next with a List cache expiring after ttl. A non-positive
// ttl disables caching entirely and every call passes through.
func NewCached(next Service, ttl time.Duration) *Cached {
	return &Cached{next: next, ttl: ttl}
}

// Submit delegates to the underlying service and invalidates the cache on success.
func (c *Cached) Submit(ctx context.Context, params SubmitParams) (*Contact, error) {
	created, err := c.next.Submit(ctx, params)
	if err != nil {
		return nil, err
	}
	c.Invalidate()
	return created, nil
}

// List serves the cached result when fresh, otherwise fills the cache from
// the underlying service.
func (c *Cached) List(ctx context.Context) ([]*Contact, error) {
	if c.ttl <= 0 {
		return c.next.List(ctx)
	}

	c.mu.Lock()
	if c.fresh {
		cached := cloneList(c.listed)
		c.mu.Unlock()
		return cached, nil
	}
	gen := c.gen
	c.mu.Unlock()

	contacts, err := c.next.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// A write that landed while the fill was in flight bumped the generation;
	// storing that snapshot would hide the write until the TTL expires, so it
	// is returned but not cached.
	if c.gen == gen {
		c.listed = contacts
		c.fresh = true
		c.armExpiryLocked()
	}
	c.mu.Unlock()

	return cloneList(contacts), nil
}

// UpdateStatus delegates to the underlying service and invalidates the cache on success.
func (c *Cached) UpdateStatus(ctx context.Context, id string, status Status) (*Contact, error) {
	updated, err := c.next.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	c.Invalidate()
	return updated, nil
}

// Invalidate drops the cached list. The next List call refills it.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked()
}

// Close cancels the pending expiry timer. Safe to call more than once.
func (c *Cached) Close() {
	c.Invalidate()
}

// armExpiryLocked starts the TTL countdown, cancelling any previous timer
// first so that at most one timer is ever pending.
func (c *Cached) armExpiryLocked() {
	if c.expiry != nil {
		c.expiry.Stop()
	}
	c.expiry = time.AfterFunc(c.ttl, c.Invalidate)
}

func (c *Cached) invalidateLocked() {
	c.fresh = false
	c.listed = nil
	c.gen++
	if c.expiry != nil {
		c.expiry.Stop()
		c.expiry = nil
	}
}

func cloneList(contacts []*Contact) []*Contact {
	cloned := make([]*Contact, len(contacts))
	copy(cloned, contacts)
	return cloned
}

// Compile-time interface check
var _ Service = (*Cached)(nil)
