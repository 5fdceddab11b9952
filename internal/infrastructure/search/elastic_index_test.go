package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

func TestParseHitIDs(t *testing.T) {
	body := `{"hits":{"hits":[{"_id":"3"},{"_id":"x"},{"_id":"1"}]}}`
	ids, err := parseHitIDs(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids)
}

// fakeES answers like a single-node cluster and records request paths.
func fakeES(t *testing.T) (*elasticsearch.Client, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/_search") {
			_, _ = io.WriteString(w, `{"hits":{"hits":[{"_id":"2"}]}}`)
			return
		}
		_, _ = io.WriteString(w, `{"result":"created"}`)
	}))
	t.Cleanup(srv.Close)
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es, &paths
}

func TestElasticIndex_IndexAndSearch(t *testing.T) {
	es, paths := fakeES(t)
	idx := NewElasticIndex(es, "talents", "works", nil)
	ctx := context.Background()

	require.NoError(t, idx.IndexTalent(ctx, &entity.Talent{ID: 5, Name: "David Kim", CreatedAt: time.Now()}))
	require.NoError(t, idx.IndexWork(ctx, &entity.Work{ID: 9, Title: "City Birds"}))

	talentIDs, workIDs, err := idx.Search(ctx, "birds", 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, talentIDs)
	assert.Equal(t, []int64{2}, workIDs)

	assert.Contains(t, *paths, "PUT /talents/_doc/5")
	assert.Contains(t, *paths, "PUT /works/_doc/9")
	searched := false
	for _, p := range *paths {
		if strings.HasSuffix(p, " /talents/_search") {
			searched = true
		}
	}
	assert.True(t, searched)
}
