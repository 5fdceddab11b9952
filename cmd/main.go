package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/container"
	pginfra "github.com/oksasatya/talenthub/internal/infrastructure/postgres"
	"github.com/oksasatya/talenthub/internal/interface/middleware"
	"github.com/oksasatya/talenthub/internal/router"
	"github.com/oksasatya/talenthub/pkg/helpers"
	"github.com/oksasatya/talenthub/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()
	migrateCtx, stopMigrations := context.WithCancel(ctx)
	defer stopMigrations()

	// Postgres only when it backs the record store
	var pool *pgxpool.Pool
	if cfg.UsePostgres() {
		var err error
		pool, err = pginfra.OpenPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
		if err != nil {
			log.Fatalf("invalid postgres config: %v", err)
		}
		defer pool.Close()
		if err := pginfra.Ping(ctx, pool); err != nil {
			if !cfg.SampleFallbackEnabled {
				log.Fatalf("failed to connect to postgres: %v", err)
			}
			// Reads are served from the sample dataset until the database is
			// reachable and migrated.
			logger.WithError(err).Warn("postgres unreachable at startup, migrating in background")
			go func() {
				err := pginfra.MigrateWhenReady(migrateCtx,
					func(ctx context.Context) error { return pginfra.Ping(ctx, pool) },
					func() error { return pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger) },
					cfg.MigrateRetry, logger)
				if err != nil && !errors.Is(err, context.Canceled) {
					logger.WithError(err).Error("background migrations stopped")
				}
			}()
		} else if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	// Redis: read cache and write rate limiting
	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, cache and rate limiting disabled")
			_ = rdb.Close()
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	// Elasticsearch: search index
	if cfg.ElasticsearchEnabled {
		es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err == nil {
			err = helpers.PingES(ctx, es)
		}
		if err != nil {
			logger.WithError(err).Warn("elasticsearch unavailable, search falls back to scanning")
		} else {
			container.SetES(es)
		}
	}

	// RabbitMQ: domain events for the event worker
	if cfg.RabbitMQEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable, domain events disabled")
		} else {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	stores, err := container.NewStores(ctx, cfg, pool, rdb, logger)
	if err != nil {
		log.Fatalf("failed to init record store: %v", err)
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetPGPool(pool)
	container.SetRedis(rdb)
	container.SetStores(stores)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestIDMiddleware())
	if cfg.MetricsEnabled {
		metrics := middleware.NewMetrics()
		container.SetMetrics(metrics)
		r.Use(metrics.Middleware())
	}
	// CORS
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.WithField("backend", cfg.StoreBackend).Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")
	stopMigrations()

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
