package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/memory"
)

// unreachableRedis points at a closed port so every cache call fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// countingStore counts reads that reach the wrapped collection.
type countingStore struct {
	*memory.Collection[entity.Work]
	mu   sync.Mutex
	gets int
	alls int
}

func (s *countingStore) Get(ctx context.Context, id int64) (entity.Work, bool, error) {
	s.mu.Lock()
	s.gets++
	s.mu.Unlock()
	return s.Collection.Get(ctx, id)
}

func (s *countingStore) All(ctx context.Context) ([]entity.Work, error) {
	s.mu.Lock()
	s.alls++
	s.mu.Unlock()
	return s.Collection.All(ctx)
}

func (s *countingStore) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets, s.alls
}

func TestRecordCache_FailsOpenWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	rdb := unreachableRedis()
	defer func() { _ = rdb.Close() }()

	inner := memory.NewCollection[entity.Work]()
	c := NewRecordCache[entity.Work](inner, rdb, "works", time.Minute, nil)

	id, err := c.NextID(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, id, entity.Work{ID: id, Title: "Poster"}))

	w, found, err := c.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Poster", w.Title)

	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, found, err = c.Get(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRecordCache_Keys(t *testing.T) {
	c := NewRecordCache[entity.Talent](memory.NewCollection[entity.Talent](), nil, "talents", time.Minute, nil)
	assert.Equal(t, "talenthub:talents:gen", c.genKey())
	assert.Equal(t, "talenthub:talents:3:all", c.allKey(3))
	assert.Equal(t, "talenthub:talents:0:id:12", c.idKey(0, 12))
}

func TestRecordCache_ServesHitsAndInvalidatesOnPut(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedis(t)
	inner := &countingStore{Collection: memory.NewCollection[entity.Work]()}
	c := NewRecordCache[entity.Work](inner, rdb, "works", time.Minute, nil)

	require.NoError(t, inner.Collection.Put(ctx, 1, entity.Work{ID: 1, Title: "v1"}))

	for i := 0; i < 3; i++ {
		w, found, err := c.Get(ctx, 1)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "v1", w.Title)
		all, err := c.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	}
	gets, alls := inner.counts()
	assert.Equal(t, 1, gets)
	assert.Equal(t, 1, alls)

	require.NoError(t, c.Put(ctx, 1, entity.Work{ID: 1, Title: "v2"}))
	require.NoError(t, c.Put(ctx, 2, entity.Work{ID: 2, Title: "other"}))

	w, _, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "v2", w.Title)
	all, err := c.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	gets, alls = inner.counts()
	assert.Equal(t, 2, gets)
	assert.Equal(t, 2, alls)
}

func TestRecordCache_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	c := NewRecordCache[entity.Work](memory.NewCollection[entity.Work](), rdb, "works", time.Minute, nil)

	_, found, err := c.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, mr.Exists(c.idKey(0, 7)))
}

func TestRecordCache_EntriesExpireAfterTTL(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	inner := &countingStore{Collection: memory.NewCollection[entity.Work]()}
	c := NewRecordCache[entity.Work](inner, rdb, "works", 30*time.Second, nil)
	require.NoError(t, inner.Collection.Put(ctx, 1, entity.Work{ID: 1, Title: "v1"}))

	_, _, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, mr.TTL(c.idKey(0, 1)))

	mr.FastForward(31 * time.Second)
	assert.False(t, mr.Exists(c.idKey(0, 1)))

	_, _, err = c.Get(ctx, 1)
	require.NoError(t, err)
	gets, _ := inner.counts()
	assert.Equal(t, 2, gets)
}

// pausingStore stops the first Get after it has loaded its value, until the
// test lets it go.
type pausingStore struct {
	*memory.Collection[entity.Project]
	once    sync.Once
	loaded  chan struct{}
	release chan struct{}
}

func (s *pausingStore) Get(ctx context.Context, id int64) (entity.Project, bool, error) {
	p, found, err := s.Collection.Get(ctx, id)
	s.once.Do(func() {
		close(s.loaded)
		<-s.release
	})
	return p, found, err
}

func TestRecordCache_SlowReaderCannotCacheOverwrittenValue(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedis(t)
	inner := &pausingStore{
		Collection: memory.NewCollection[entity.Project](),
		loaded:     make(chan struct{}),
		release:    make(chan struct{}),
	}
	c := NewRecordCache[entity.Project](inner, rdb, "projects", time.Minute, nil)
	require.NoError(t, inner.Collection.Put(ctx, 1, entity.Project{ID: 1, Status: entity.ProjectInProgress}))

	done := make(chan entity.Project)
	go func() {
		p, _, err := c.Get(ctx, 1)
		assert.NoError(t, err)
		done <- p
	}()

	<-inner.loaded
	require.NoError(t, c.Put(ctx, 1, entity.Project{ID: 1, Status: entity.ProjectCompleted}))
	close(inner.release)
	assert.Equal(t, entity.ProjectInProgress, (<-done).Status)

	p, found, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entity.ProjectCompleted, p.Status)
}

func TestRecordCache_GetFreshBypassesCache(t *testing.T) {
	ctx := context.Background()
	_, rdb := newRedis(t)
	inner := &countingStore{Collection: memory.NewCollection[entity.Work]()}
	c := NewRecordCache[entity.Work](inner, rdb, "works", time.Minute, nil)
	require.NoError(t, inner.Collection.Put(ctx, 1, entity.Work{ID: 1, Title: "v1"}))

	_, _, err := c.Get(ctx, 1)
	require.NoError(t, err)
	// Written behind the cache's back.
	require.NoError(t, inner.Collection.Put(ctx, 1, entity.Work{ID: 1, Title: "v2"}))

	cached, _, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "v1", cached.Title)

	fresh, found, err := repository.GetFresh[entity.Work](ctx, c, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", fresh.Title)
}
