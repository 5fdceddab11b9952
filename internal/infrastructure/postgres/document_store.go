package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

// Collections created by the migrations. Table names are interpolated into SQL,
// so only these are accepted.
const (
	UsersTable    = "users"
	TalentsTable  = "talents"
	WorksTable    = "works"
	ProjectsTable = "projects"
)

var knownTables = map[string]bool{
	UsersTable:    true,
	TalentsTable:  true,
	WorksTable:    true,
	ProjectsTable: true,
}

// DocumentStore keeps records of one collection as JSONB documents keyed by id.
type DocumentStore[T any] struct {
	pool  *pgxpool.Pool
	table string
	seq   string
}

func NewDocumentStore[T any](pool *pgxpool.Pool, table string) (*DocumentStore[T], error) {
	if !knownTables[table] {
		return nil, fmt.Errorf("postgres: unknown collection %q", table)
	}
	return &DocumentStore[T]{pool: pool, table: table, seq: table + "_id_seq"}, nil
}

func (s *DocumentStore[T]) Put(ctx context.Context, id int64, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s %d: %w", s.table, id, err)
	}
	upsert := `INSERT INTO ` + s.table + ` (id, doc) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`
	// Explicit ids (seeding) push the sequence forward so NextID never repeats them.
	bump := `SELECT setval('` + s.seq + `', GREATEST($1, (SELECT last_value FROM ` + s.seq + `)))`
	err = pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, upsert, id, doc); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, bump, id)
		return err
	})
	return classify("put "+s.table, err)
}

func (s *DocumentStore[T]) Get(ctx context.Context, id int64) (T, bool, error) {
	var rec T
	var doc []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM `+s.table+` WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, false, nil
	}
	if err != nil {
		return rec, false, classify("get "+s.table, err)
	}
	if err := decode(doc, &rec); err != nil {
		return rec, false, fmt.Errorf("%s %d: %w", s.table, id, err)
	}
	return rec, true, nil
}

func (s *DocumentStore[T]) All(ctx context.Context) ([]T, error) {
	return s.query(ctx, `SELECT doc FROM `+s.table+` ORDER BY inserted_at, id`)
}

// Find pushes the match into the WHERE clause. Dotted field names address
// nested keys; a Contains match tests array membership.
func (s *DocumentStore[T]) Find(ctx context.Context, m repository.Match[T]) ([]T, error) {
	if m.Field == "" {
		return nil, errors.New("postgres: match without field")
	}
	path := strings.Split(m.Field, ".")
	q := `SELECT doc FROM ` + s.table + ` WHERE doc #>> $1 = $2 ORDER BY inserted_at, id`
	if m.Contains {
		q = `SELECT doc FROM ` + s.table + ` WHERE doc #> $1 @> to_jsonb($2::text) ORDER BY inserted_at, id`
	}
	return s.query(ctx, q, path, m.Value)
}

func (s *DocumentStore[T]) NextID(ctx context.Context) (int64, error) {
	var id int64
	if err := s.pool.QueryRow(ctx, `SELECT nextval('`+s.seq+`')`).Scan(&id); err != nil {
		return 0, classify("next id "+s.table, err)
	}
	return id, nil
}

func (s *DocumentStore[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, classify("query "+s.table, err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, classify("scan "+s.table, err)
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := decode(doc, &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", s.table, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func decode(doc []byte, dest any) error {
	if err := json.Unmarshal(doc, dest); err != nil {
		return fmt.Errorf("decode document: %v: %w", err, domain.ErrCorruptState)
	}
	return nil
}

var _ repository.RecordStore[struct{}] = (*DocumentStore[struct{}])(nil)
