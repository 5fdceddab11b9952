package repository

import (
	"context"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

// Match selects records by one field. Field and Value are used by stores that can
// push the comparison down (the JSON field name); Pred is the equivalent typed
// predicate for stores that scan in memory. Contains means array membership
// rather than equality.
type Match[T any] struct {
	Field    string
	Value    string
	Contains bool
	Pred     func(T) bool
}

// RecordStore holds one collection of same-typed records keyed by integer id.
// A missing id is reported through the found flag of Get, never as an error.
type RecordStore[T any] interface {
	Put(ctx context.Context, id int64, rec T) error
	Get(ctx context.Context, id int64) (T, bool, error)
	// All returns every record in insertion order.
	All(ctx context.Context) ([]T, error)
	Find(ctx context.Context, m Match[T]) ([]T, error)
	// NextID hands out the next unused id; ids never repeat.
	NextID(ctx context.Context) (int64, error)
}

// FreshReader is implemented by store decorators that can read straight from
// the authoritative store, bypassing caches and read fallbacks.
type FreshReader[T any] interface {
	GetFresh(ctx context.Context, id int64) (T, bool, error)
}

// GetFresh reads one record for a read-modify-write cycle. Decorators that
// implement FreshReader are skipped; plain stores are read with Get.
func GetFresh[T any](ctx context.Context, s RecordStore[T], id int64) (T, bool, error) {
	if f, ok := s.(FreshReader[T]); ok {
		return f.GetFresh(ctx, id)
	}
	return s.Get(ctx, id)
}

// Equal builds an equality match.
func Equal[T any](field, value string, get func(T) string) Match[T] {
	return Match[T]{
		Field: field,
		Value: value,
		Pred:  func(rec T) bool { return get(rec) == value },
	}
}

// Contains builds an array-membership match. Elements are compared exactly.
func Contains[T any](field, value string, get func(T) []string) Match[T] {
	return Match[T]{
		Field:    field,
		Value:    value,
		Contains: true,
		Pred: func(rec T) bool {
			for _, v := range get(rec) {
				if v == value {
					return true
				}
			}
			return false
		},
	}
}

// Stores is one record store per collection, composed once at startup.
type Stores struct {
	Users    RecordStore[entity.User]
	Talents  RecordStore[entity.Talent]
	Works    RecordStore[entity.Work]
	Projects RecordStore[entity.Project]
}
