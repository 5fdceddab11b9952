package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

// RunMigrations applies db/migrations through a database/sql handle opened with
// the pgx stdlib driver.
func RunMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return classify("migrate", err)
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}

// MigrateWhenReady pings and migrates, retrying every interval until both
// succeed or ctx is done. It lets the service start on the sample fallback and
// pick up the schema once the database comes back.
func MigrateWhenReady(ctx context.Context, ping func(context.Context) error, migrate func() error, every time.Duration, logger *logrus.Logger) error {
	for attempt := 1; ; attempt++ {
		err := ping(ctx)
		if err == nil {
			if err = migrate(); err == nil {
				logger.WithField("attempt", attempt).Info("migrations applied")
				return nil
			}
		}
		logger.WithError(err).WithField("attempt", attempt).Warn("migrations pending, database not ready")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(every):
		}
	}
}
