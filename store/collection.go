package store

import (
	"slices"
	"strings"
	"sync"
)

// Record is implemented by every entity held in a Collection. WithID must
// return a copy, leaving the receiver untouched. Clone must return a copy
// sharing no pointers or slices with the receiver.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Clone() T
	SearchFields() []string
}

// Collection is an ordered set of records of one kind. Records are kept and
// handed out by value, in insertion order. It is safe for concurrent use.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
	ids   IDGenerator
}

func newCollection[T Record[T]](ids IDGenerator) *Collection[T] {
	return &Collection[T]{ids: ids}
}

// List returns every record in insertion order
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, rec := range c.items {
		out[i] = rec.Clone()
	}
	return out
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with the given id. The boolean is false when no
// such record exists.
func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Filter returns the records whose search fields contain term, ignoring case.
// A blank term matches everything; any other term is matched as given,
// surrounding spaces included.
func (c *Collection[T]) Filter(term string) []T {
	if strings.TrimSpace(term) == "" {
		return c.List()
	}
	term = strings.ToLower(term)
	return c.Where(func(rec T) bool {
		return Matches(rec, term)
	})
}

// Where returns the records satisfying pred, in insertion order
func (c *Collection[T]) Where(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, rec := range c.items {
		if pred(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Insert stores rec under a freshly generated id and returns the stored copy.
// Any id already set on rec is ignored.
func (c *Collection[T]) Insert(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.ids.Next()
	for c.indexOf(id) >= 0 {
		id = c.ids.Next()
	}

	stored := rec.Clone().WithID(id)
	c.items = append(c.items, stored)
	return stored.Clone()
}

// Update replaces the record carrying rec's id, keeping its position.
// It reports false, changing nothing, when the id is unknown.
func (c *Collection[T]) Update(rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(rec.GetID())
	if i < 0 {
		return false
	}
	c.items[i] = rec.Clone()
	return true
}

// Delete removes the record with the given id. It reports false, changing
// nothing, when the id is unknown.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

// load appends records keeping their ids, skipping ids already present
func (c *Collection[T]) load(recs ...T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	observer, _ := c.ids.(interface{ Observe(id string) })
	for _, rec := range recs {
		id := rec.GetID()
		if id == "" || c.indexOf(id) >= 0 {
			continue
		}
		c.items = append(c.items, rec.Clone())
		if observer != nil {
			observer.Observe(id)
		}
	}
}

// indexOf must be called with mu held
func (c *Collection[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, rec := range c.items {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

// Matches reports whether any search field of rec contains term, ignoring
// case. term must already be lower case.
func Matches[T Record[T]](rec T, term string) bool {
	for _, field := range rec.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
