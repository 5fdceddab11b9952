package container

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/infrastructure/sample"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestNewStoresMemory(t *testing.T) {
	ctx := context.Background()
	s, err := NewStores(ctx, &config.Config{StoreBackend: "memory"}, nil, nil, quietLogger())
	require.NoError(t, err)

	talents, err := s.Talents.All(ctx)
	require.NoError(t, err)
	data, err := sample.Load()
	require.NoError(t, err)
	assert.Len(t, talents, len(data.Talents))

	next, err := s.Talents.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data.Talents)+1), next)
}

func TestNewStoresEachCallIsIndependent(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StoreBackend: "memory"}
	a, err := NewStores(ctx, cfg, nil, nil, quietLogger())
	require.NoError(t, err)
	b, err := NewStores(ctx, cfg, nil, nil, quietLogger())
	require.NoError(t, err)

	id, err := a.Works.NextID(ctx)
	require.NoError(t, err)
	require.NoError(t, a.Works.Put(ctx, id, entity.Work{ID: id, Title: "Only in a"}))

	inA, err := a.Works.All(ctx)
	require.NoError(t, err)
	inB, err := b.Works.All(ctx)
	require.NoError(t, err)
	assert.Len(t, inA, len(inB)+1)
}

func TestNewStoresRejectsBadBackend(t *testing.T) {
	ctx := context.Background()
	_, err := NewStores(ctx, &config.Config{StoreBackend: "mongo"}, nil, nil, quietLogger())
	assert.ErrorContains(t, err, "unknown STORE_BACKEND")

	_, err = NewStores(ctx, &config.Config{StoreBackend: "postgres"}, nil, nil, quietLogger())
	assert.Error(t, err)
}

func TestOptionalClientsYieldNilInterfaces(t *testing.T) {
	SetRabbitPub(nil)
	SetES(nil)
	assert.Nil(t, GetPublisher())
	assert.Nil(t, GetSearchIndex())
}
