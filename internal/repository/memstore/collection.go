// Package memstore holds the mutex-guarded ordered collection that backs the in-memory repositories.
package memstore

import (
	"sync"
	"time"

	"assistmenow/internal/domain"
	"github.com/google/uuid"
)

// Fields tells a Collection where the id and audit timestamps of T live.
type Fields[T any] struct {
	ID        func(*T) *string
	CreatedAt func(*T) *time.Time
	UpdatedAt func(*T) *time.Time
	// Clone deep-copies a record. Nil means a plain value copy is enough.
	Clone func(T) T
}

// Collection is an insertion-ordered set of records addressed by id. Lookups are linear scans;
// a single RWMutex guards the whole collection.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	fields Fields[T]
	now    func() time.Time
	newID  func() string
}

// Option configures a Collection.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides uuid generation.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// New builds an empty Collection.
func New[T any](fields Fields[T], opts ...Option) *Collection[T] {
	o := options{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{fields: fields, now: o.now, newID: o.newID}
}

func (c *Collection[T]) clone(v T) T {
	if c.fields.Clone == nil {
		return v
	}
	return c.fields.Clone(v)
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if *c.fields.ID(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

// Create assigns a fresh id, stamps both timestamps and appends the record.
func (c *Collection[T]) Create(v T) T {
	rec := c.clone(v)
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	*c.fields.ID(&rec) = c.newID()
	*c.fields.CreatedAt(&rec) = now
	*c.fields.UpdatedAt(&rec) = now
	c.items = append(c.items, rec)
	return c.clone(rec)
}

// List returns copies of every record in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, c.clone(it))
	}
	return out
}

// Get returns the record with the given id or domain.ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(id)
	if idx < 0 {
		var zero T
		return zero, domain.ErrNotFound
	}
	return c.clone(c.items[idx]), nil
}

// Update applies mutate to a copy of the record and stores it when mutate succeeds. The id and
// createdAt cannot be changed by mutate; updatedAt always moves forward. mutate runs under the
// collection lock and must not call back into the collection.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return zero, domain.ErrNotFound
	}
	cur := c.items[idx]
	next := c.clone(cur)
	if err := mutate(&next); err != nil {
		return zero, err
	}
	*c.fields.ID(&next) = id
	*c.fields.CreatedAt(&next) = *c.fields.CreatedAt(&cur)

	prev := *c.fields.UpdatedAt(&cur)
	now := c.now()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	*c.fields.UpdatedAt(&next) = now

	c.items[idx] = next
	return c.clone(next), nil
}

// Delete removes the record with the given id.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// Upsert stores v under its own id, replacing an existing record in place. Missing timestamps are
// filled with the current time.
func (c *Collection[T]) Upsert(v T) T {
	rec := c.clone(v)
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.fields.ID(&rec)
	if *id == "" {
		*id = c.newID()
	}
	now := c.now()
	if c.fields.CreatedAt(&rec).IsZero() {
		*c.fields.CreatedAt(&rec) = now
	}
	if c.fields.UpdatedAt(&rec).IsZero() {
		*c.fields.UpdatedAt(&rec) = *c.fields.CreatedAt(&rec)
	}
	if idx := c.indexOf(*id); idx >= 0 {
		c.items[idx] = rec
	} else {
		c.items = append(c.items, rec)
	}
	return c.clone(rec)
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if pred(it) {
			return c.clone(it), nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
