package postgres

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/memory"
)

// testPool connects to TEST_DATABASE_URL, migrates it and empties the works
// collection. Tests using it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	require.NoError(t, RunMigrations(dsn, "../../../db/migrations", quietLogger()))
	pool, err := NewPool(ctx, dsn, 4, 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE works`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `ALTER SEQUENCE works_id_seq RESTART WITH 1`)
	require.NoError(t, err)
	return pool
}

func integrationWorks() []entity.Work {
	return []entity.Work{
		{ID: 1, Title: "City Birds", Category: "Graphic Design", Tags: []string{"Poster", "Illustration"}, Creator: entity.PersonRef{ID: 2, Name: "Michael Chen"}},
		{ID: 2, Title: "Launch Film", Category: "Video Editing", Tags: []string{"Video"}, Creator: entity.PersonRef{ID: 3, Name: "Emily Rodriguez"}},
		{ID: 3, Title: "Jazz Night", Category: "Graphic Design", Tags: []string{"Poster Series"}, Creator: entity.PersonRef{ID: 2, Name: "Michael Chen"}},
		{ID: 4, Title: "Brand Book", Category: "graphic design", Tags: []string{"poster"}, Creator: entity.PersonRef{ID: 12, Name: "Nina"}},
	}
}

func titles(ws []entity.Work) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Title)
	}
	return out
}

func TestDocumentStore_FindMatchesInMemoryPredicate(t *testing.T) {
	ctx := context.Background()
	pg, err := NewDocumentStore[entity.Work](testPool(t), WorksTable)
	require.NoError(t, err)
	mem := memory.NewCollection[entity.Work]()
	for _, w := range integrationWorks() {
		require.NoError(t, pg.Put(ctx, w.ID, w))
		require.NoError(t, mem.Put(ctx, w.ID, w))
	}

	category := func(w entity.Work) string { return w.Category }
	tags := func(w entity.Work) []string { return w.Tags }
	creator := func(w entity.Work) string { return strconv.FormatInt(w.Creator.ID, 10) }
	tests := []struct {
		name  string
		match repository.Match[entity.Work]
		want  []string
	}{
		{"equality is exact", repository.Equal("category", "Graphic Design", category), []string{"City Birds", "Jazz Night"}},
		{"membership is exact", repository.Contains("tags", "Poster", tags), []string{"City Birds"}},
		{"no substring membership", repository.Contains("tags", "Post", tags), []string{}},
		{"nested creator id", repository.Equal("creator.id", "2", creator), []string{"City Birds", "Jazz Night"}},
		{"nested id is not a prefix match", repository.Equal("creator.id", "1", creator), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromPG, err := pg.Find(ctx, tt.match)
			require.NoError(t, err)
			fromMem, err := mem.Find(ctx, tt.match)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, titles(fromPG))
			assert.ElementsMatch(t, titles(fromMem), titles(fromPG))
		})
	}
}

func TestDocumentStore_ExplicitIDsBumpSequence(t *testing.T) {
	ctx := context.Background()
	pg, err := NewDocumentStore[entity.Work](testPool(t), WorksTable)
	require.NoError(t, err)

	require.NoError(t, pg.Put(ctx, 10, entity.Work{ID: 10, Title: "Seeded"}))
	id, err := pg.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	// A lower explicit id never moves the sequence back.
	require.NoError(t, pg.Put(ctx, 3, entity.Work{ID: 3, Title: "Older"}))
	id, err = pg.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestDocumentStore_AllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	pg, err := NewDocumentStore[entity.Work](testPool(t), WorksTable)
	require.NoError(t, err)

	for _, id := range []int64{7, 2, 5} {
		require.NoError(t, pg.Put(ctx, id, entity.Work{ID: id, Title: "w" + strconv.FormatInt(id, 10)}))
		time.Sleep(2 * time.Millisecond)
	}
	// Overwriting keeps the original position.
	require.NoError(t, pg.Put(ctx, 7, entity.Work{ID: 7, Title: "w7 edited"}))

	all, err := pg.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"w7 edited", "w2", "w5"}, titles(all))

	w, found, err := pg.Get(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "w2", w.Title)

	_, found, err = pg.Get(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}
