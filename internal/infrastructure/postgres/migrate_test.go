package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/talenthub/internal/domain"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestMigrateWhenReady_RetriesUntilDatabaseIsBack(t *testing.T) {
	pings, migrations := 0, 0
	ping := func(context.Context) error {
		pings++
		if pings < 3 {
			return fmt.Errorf("ping: %w", domain.ErrStoreUnavailable)
		}
		return nil
	}
	migrate := func() error {
		migrations++
		if migrations == 1 {
			return errors.New("connection reset")
		}
		return nil
	}

	err := MigrateWhenReady(context.Background(), ping, migrate, time.Millisecond, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 4, pings)
	assert.Equal(t, 2, migrations)
}

func TestMigrateWhenReady_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ping := func(context.Context) error {
		cancel()
		return domain.ErrStoreUnavailable
	}
	migrate := func() error {
		t.Fatal("migrate must not run while ping fails")
		return nil
	}

	err := MigrateWhenReady(ctx, ping, migrate, time.Hour, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
