package sample

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

// Fallback serves reads from a secondary store when the primary reports
// ErrStoreUnavailable. Writes always go to the primary and surface its errors.
type Fallback[T any] struct {
	primary   repository.RecordStore[T]
	secondary repository.RecordStore[T]
	name      string
	logger    *logrus.Logger
}

func NewFallback[T any](name string, primary, secondary repository.RecordStore[T], logger *logrus.Logger) *Fallback[T] {
	return &Fallback[T]{primary: primary, secondary: secondary, name: name, logger: logger}
}

func (f *Fallback[T]) Put(ctx context.Context, id int64, rec T) error {
	return f.primary.Put(ctx, id, rec)
}

func (f *Fallback[T]) NextID(ctx context.Context) (int64, error) {
	return f.primary.NextID(ctx)
}

func (f *Fallback[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	rec, found, err := f.primary.Get(ctx, id)
	if f.unavailable(err) {
		return f.secondary.Get(ctx, id)
	}
	return rec, found, err
}

// GetFresh never falls back: a mutation must not be built on sample data.
func (f *Fallback[T]) GetFresh(ctx context.Context, id int64) (T, bool, error) {
	return repository.GetFresh(ctx, f.primary, id)
}

func (f *Fallback[T]) All(ctx context.Context) ([]T, error) {
	recs, err := f.primary.All(ctx)
	if f.unavailable(err) {
		return f.secondary.All(ctx)
	}
	return recs, err
}

func (f *Fallback[T]) Find(ctx context.Context, m repository.Match[T]) ([]T, error) {
	recs, err := f.primary.Find(ctx, m)
	if f.unavailable(err) {
		return f.secondary.Find(ctx, m)
	}
	return recs, err
}

func (f *Fallback[T]) unavailable(err error) bool {
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		return false
	}
	if f.logger != nil {
		f.logger.WithError(err).WithField("collection", f.name).Warn("store unavailable, serving sample data")
	}
	return true
}

var (
	_ repository.RecordStore[struct{}] = (*Fallback[struct{}])(nil)
	_ repository.FreshReader[struct{}] = (*Fallback[struct{}])(nil)
)
