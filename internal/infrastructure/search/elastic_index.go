// Package search keeps talents and works in Elasticsearch for /api/search.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

const requestTimeout = 3 * time.Second

type ElasticIndex struct {
	ES           *elasticsearch.Client
	TalentsIndex string
	WorksIndex   string
	Logger       *logrus.Logger
}

func NewElasticIndex(es *elasticsearch.Client, talentsIndex, worksIndex string, logger *logrus.Logger) *ElasticIndex {
	return &ElasticIndex{ES: es, TalentsIndex: talentsIndex, WorksIndex: worksIndex, Logger: logger}
}

func talentDoc(t *entity.Talent) map[string]any {
	return map[string]any{
		"id":           t.ID,
		"name":         t.Name,
		"role":         t.Role,
		"bio":          t.Bio,
		"skills":       t.Skills,
		"location":     t.Location,
		"availability": t.Availability,
		"created_at":   t.CreatedAt.Format(time.RFC3339Nano),
	}
}

func workDoc(w *entity.Work) map[string]any {
	return map[string]any{
		"id":           w.ID,
		"title":        w.Title,
		"description":  w.Description,
		"category":     w.Category,
		"tags":         w.Tags,
		"creator_name": w.Creator.Name,
		"created_at":   w.CreatedAt.Format(time.RFC3339Nano),
	}
}

func (x *ElasticIndex) IndexTalent(ctx context.Context, t *entity.Talent) error {
	return x.index(ctx, x.TalentsIndex, t.ID, talentDoc(t))
}

func (x *ElasticIndex) IndexWork(ctx context.Context, w *entity.Work) error {
	return x.index(ctx, x.WorksIndex, w.ID, workDoc(w))
}

func (x *ElasticIndex) index(ctx context.Context, index string, id int64, doc map[string]any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: index, DocumentID: strconv.FormatInt(id, 10), Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index %s/%d: %s", index, id, res.Status())
	}
	return nil
}

// Search runs one multi_match per index and returns the matching ids in score order.
func (x *ElasticIndex) Search(ctx context.Context, q string, size int) ([]int64, []int64, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	talentIDs, err := x.searchIDs(ctx, x.TalentsIndex, q, size, []string{"name^2", "role", "bio", "skills"})
	if err != nil {
		return nil, nil, err
	}
	workIDs, err := x.searchIDs(ctx, x.WorksIndex, q, size, []string{"title^2", "description", "creator_name", "tags"})
	if err != nil {
		return nil, nil, err
	}
	return talentIDs, workIDs, nil
}

func (x *ElasticIndex) searchIDs(ctx context.Context, index, q string, size int, fields []string) ([]int64, error) {
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": fields,
			},
		},
		"size":    size,
		"_source": false,
	}
	b, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	res, err := x.ES.Search(x.ES.Search.WithContext(c), x.ES.Search.WithIndex(index), x.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("es search %s: %s", index, res.Status())
	}
	return parseHitIDs(res.Body)
}

func parseHitIDs(body io.Reader) ([]int64, error) {
	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		id, err := strconv.ParseInt(h.ID, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}
