// Package memory provides the in-memory record store used for tests, local
// development and the sample-data fallback.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

var _ repository.RecordStore[struct{}] = (*Collection[struct{}])(nil)

// Collection is a keyed record container with an auto-incrementing id counter.
// Records are held as encoded documents, so values handed in or out never
// share slices with the stored state.
type Collection[T any] struct {
	mu    sync.RWMutex
	docs  map[int64][]byte
	order []int64
	next  int64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{docs: map[int64][]byte{}, next: 1}
}

func (c *Collection[T]) Put(_ context.Context, id int64, rec T) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %d: %w", id, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		c.order = append(c.order, id)
	}
	c.docs[id] = b
	// Explicitly put ids (seed data) must never be handed out again.
	if id >= c.next {
		c.next = id + 1
	}
	return nil
}

func (c *Collection[T]) Get(_ context.Context, id int64) (T, bool, error) {
	var rec T
	c.mu.RLock()
	b, ok := c.docs[id]
	c.mu.RUnlock()
	if !ok {
		return rec, false, nil
	}
	if err := json.Unmarshal(b, &rec); err != nil {
		return rec, false, fmt.Errorf("decode record %d: %v: %w", id, err, domain.ErrCorruptState)
	}
	return rec, true, nil
}

func (c *Collection[T]) All(_ context.Context) ([]T, error) {
	c.mu.RLock()
	raw := make([][]byte, 0, len(c.order))
	for _, id := range c.order {
		raw = append(raw, c.docs[id])
	}
	c.mu.RUnlock()

	out := make([]T, 0, len(raw))
	for _, b := range raw {
		var rec T
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %v: %w", err, domain.ErrCorruptState)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (c *Collection[T]) Find(ctx context.Context, m repository.Match[T]) ([]T, error) {
	if m.Pred == nil {
		return nil, errors.New("memory: match without predicate")
	}
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, rec := range all {
		if m.Pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (c *Collection[T]) NextID(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.next
	c.next++
	return id, nil
}

// Len reports how many records are held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
