package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/search"
	"github.com/oksasatya/talenthub/internal/interface/middleware"
	"github.com/oksasatya/talenthub/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router auto-wires modules from these singletons. Optional clients stay nil
// when their service is disabled or unreachable.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	rabbitPub   *helpers.RabbitPublisher
	esClient    *elasticsearch.Client
	stores      repository.Stores
	metrics     *middleware.Metrics
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }
func SetStores(s repository.Stores)           { stores = s }
func GetStores() repository.Stores            { return stores }
func SetMetrics(m *middleware.Metrics)        { metrics = m }
func GetMetrics() *middleware.Metrics         { return metrics }

// GetPublisher returns the event publisher, or a nil interface when RabbitMQ
// is not connected so services skip publishing.
func GetPublisher() application.Publisher {
	if rabbitPub == nil {
		return nil
	}
	return rabbitPub
}

// GetSearchIndex returns the Elasticsearch-backed index, or a nil interface
// when no client is configured so services fall back to scanning.
func GetSearchIndex() application.SearchIndex {
	if esClient == nil {
		return nil
	}
	return search.NewElasticIndex(esClient, cfg.ESTalentsIndex, cfg.ESWorksIndex, logger)
}
