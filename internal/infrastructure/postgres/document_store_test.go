package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
)

func TestNewDocumentStore_RejectsUnknownTable(t *testing.T) {
	_, err := NewDocumentStore[entity.User](nil, "users; DROP TABLE users")
	require.Error(t, err)

	s, err := NewDocumentStore[entity.Talent](nil, TalentsTable)
	require.NoError(t, err)
	assert.Equal(t, "talents_id_seq", s.seq)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: uniqueViolation}, domain.ErrConflict},
		{"dial failure", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, domain.ErrStoreUnavailable},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), domain.ErrStoreUnavailable},
		{"schema not migrated", &pgconn.PgError{Code: undefinedTable}, domain.ErrStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify("op", tt.err), tt.want)
		})
	}

	plain := classify("op", &pgconn.PgError{Code: "22P02"})
	assert.False(t, errors.Is(plain, domain.ErrStoreUnavailable))
	assert.NoError(t, classify("op", nil))
}

func TestDecode_CorruptTasksSurfaceCorruptState(t *testing.T) {
	var p entity.Project
	err := decode([]byte(`{"id":1,"tasks":"not json"}`), &p)
	assert.ErrorIs(t, err, domain.ErrCorruptState)

	require.NoError(t, decode([]byte(`{"id":1,"tasks":"[{\"id\":1,\"name\":\"Design\"}]"}`), &p))
	assert.Equal(t, "Design", p.Tasks[0].Name)
}
