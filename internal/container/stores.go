package container

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/cache"
	"github.com/oksasatya/talenthub/internal/infrastructure/postgres"
	"github.com/oksasatya/talenthub/internal/infrastructure/sample"
)

// NewStores picks the record store backend once at startup.
//
// memory: a fresh in-process store preloaded with the sample dataset.
// postgres: JSONB document tables, optionally behind the Redis cache, and
// with reads falling back to the sample dataset while the database is down.
func NewStores(ctx context.Context, c *config.Config, pool *pgxpool.Pool, rdb *redis.Client, logger *logrus.Logger) (repository.Stores, error) {
	switch c.StoreBackend {
	case "", "memory":
		st, err := sample.NewMemoryStore(ctx)
		if err != nil {
			return repository.Stores{}, fmt.Errorf("load sample dataset: %w", err)
		}
		logger.Info("using in-memory record store")
		return st.Stores(), nil
	case "postgres":
		if pool == nil {
			return repository.Stores{}, fmt.Errorf("postgres backend selected without a pool")
		}
		out := postgres.NewStore(pool).Stores()
		if rdb != nil {
			out = cached(out, rdb, c.CacheTTL, logger)
		}
		if c.SampleFallbackEnabled {
			fb, err := sample.NewMemoryStore(ctx)
			if err != nil {
				return repository.Stores{}, fmt.Errorf("load sample dataset: %w", err)
			}
			out = withFallback(out, fb.Stores(), logger)
		}
		logger.WithFields(logrus.Fields{
			"cache":    rdb != nil,
			"fallback": c.SampleFallbackEnabled,
		}).Info("using postgres record store")
		return out, nil
	default:
		return repository.Stores{}, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
}

func cached(s repository.Stores, rdb *redis.Client, ttl time.Duration, logger *logrus.Logger) repository.Stores {
	return repository.Stores{
		Users:    cache.NewRecordCache(s.Users, rdb, postgres.UsersTable, ttl, logger),
		Talents:  cache.NewRecordCache(s.Talents, rdb, postgres.TalentsTable, ttl, logger),
		Works:    cache.NewRecordCache(s.Works, rdb, postgres.WorksTable, ttl, logger),
		Projects: cache.NewRecordCache(s.Projects, rdb, postgres.ProjectsTable, ttl, logger),
	}
}

func withFallback(primary, secondary repository.Stores, logger *logrus.Logger) repository.Stores {
	return repository.Stores{
		Users:    sample.NewFallback("users", primary.Users, secondary.Users, logger),
		Talents:  sample.NewFallback("talents", primary.Talents, secondary.Talents, logger),
		Works:    sample.NewFallback("works", primary.Works, secondary.Works, logger),
		Projects: sample.NewFallback("projects", primary.Projects, secondary.Projects, logger),
	}
}
