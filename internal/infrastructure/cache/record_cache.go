// Package cache puts a Redis read-through cache in front of a record store.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/pkg/helpers"
)

// RecordCache caches All and Get results as JSON under a per-collection
// generation. Put bumps the generation, so a value loaded before the write and
// stored after it lands under a generation nobody reads any more. Redis
// failures are logged and the call falls through to the wrapped store.
type RecordCache[T any] struct {
	inner  repository.RecordStore[T]
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
	logger *logrus.Logger
}

func NewRecordCache[T any](inner repository.RecordStore[T], rdb *redis.Client, collection string, ttl time.Duration, logger *logrus.Logger) *RecordCache[T] {
	return &RecordCache[T]{inner: inner, rdb: rdb, prefix: "talenthub:" + collection, ttl: ttl, logger: logger}
}

func (c *RecordCache[T]) genKey() string { return c.prefix + ":gen" }

func (c *RecordCache[T]) allKey(gen int64) string {
	return c.prefix + ":" + strconv.FormatInt(gen, 10) + ":all"
}

func (c *RecordCache[T]) idKey(gen, id int64) string {
	return c.prefix + ":" + strconv.FormatInt(gen, 10) + ":id:" + strconv.FormatInt(id, 10)
}

// generation returns the current generation; ok is false when Redis cannot
// be read and the cache must be bypassed.
func (c *RecordCache[T]) generation(ctx context.Context) (int64, bool) {
	gen, err := c.rdb.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.warn(err, "cache generation read failed")
		return 0, false
	}
	return gen, true
}

func (c *RecordCache[T]) Put(ctx context.Context, id int64, rec T) error {
	if err := c.inner.Put(ctx, id, rec); err != nil {
		return err
	}
	if _, err := helpers.RedisIncr(ctx, c.rdb, c.genKey()); err != nil {
		c.warn(err, "cache invalidate failed")
	}
	return nil
}

func (c *RecordCache[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	gen, ok := c.generation(ctx)
	if !ok {
		return c.inner.Get(ctx, id)
	}
	var rec T
	hit, err := helpers.RedisGetJSON(ctx, c.rdb, c.idKey(gen, id), &rec)
	if err != nil {
		c.warn(err, "cache read failed")
	}
	if hit {
		return rec, true, nil
	}
	rec, found, err := c.inner.Get(ctx, id)
	if err != nil || !found {
		return rec, found, err
	}
	if err := helpers.RedisSetJSON(ctx, c.rdb, c.idKey(gen, id), rec, c.ttl); err != nil {
		c.warn(err, "cache write failed")
	}
	return rec, true, nil
}

// GetFresh skips the cache; read-modify-write cycles use it.
func (c *RecordCache[T]) GetFresh(ctx context.Context, id int64) (T, bool, error) {
	return repository.GetFresh(ctx, c.inner, id)
}

func (c *RecordCache[T]) All(ctx context.Context) ([]T, error) {
	gen, ok := c.generation(ctx)
	if !ok {
		return c.inner.All(ctx)
	}
	var recs []T
	hit, err := helpers.RedisGetJSON(ctx, c.rdb, c.allKey(gen), &recs)
	if err != nil {
		c.warn(err, "cache read failed")
	}
	if hit {
		return recs, nil
	}
	recs, err = c.inner.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := helpers.RedisSetJSON(ctx, c.rdb, c.allKey(gen), recs, c.ttl); err != nil {
		c.warn(err, "cache write failed")
	}
	return recs, nil
}

// Find is not cached; filtered reads go straight to the store.
func (c *RecordCache[T]) Find(ctx context.Context, m repository.Match[T]) ([]T, error) {
	return c.inner.Find(ctx, m)
}

func (c *RecordCache[T]) NextID(ctx context.Context) (int64, error) {
	return c.inner.NextID(ctx)
}

func (c *RecordCache[T]) warn(err error, msg string) {
	if c.logger != nil {
		c.logger.WithError(err).WithField("prefix", c.prefix).Warn(msg)
	}
}

var (
	_ repository.RecordStore[struct{}] = (*RecordCache[struct{}])(nil)
	_ repository.FreshReader[struct{}] = (*RecordCache[struct{}])(nil)
)
