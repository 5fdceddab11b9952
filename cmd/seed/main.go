package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/config"
	pginfra "github.com/oksasatya/talenthub/internal/infrastructure/postgres"
	"github.com/oksasatya/talenthub/internal/infrastructure/sample"
	"github.com/oksasatya/talenthub/pkg/helpers"
)

// seed loads the embedded sample dataset into the postgres document store.
// Records keep their dataset ids, so running it twice overwrites instead of
// duplicating.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	data, err := sample.Load()
	if err != nil {
		log.Fatalf("failed to load sample dataset: %v", err)
	}
	if err := data.WriteTo(ctx, pginfra.NewStore(pool).Stores()); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"users":    len(data.Users),
		"talents":  len(data.Talents),
		"works":    len(data.Works),
		"projects": len(data.Projects),
	}).Info("sample dataset seeded")
}
