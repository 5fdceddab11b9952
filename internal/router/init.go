package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/internal/container"
	"github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/internal/infrastructure/persistence"
	handlers "github.com/oksasatya/talenthub/internal/interface/http"
	"github.com/oksasatya/talenthub/internal/interface/middleware"
	"github.com/oksasatya/talenthub/internal/router/modules"
)

// Services is the application layer built on one set of record stores.
type Services struct {
	Users    *application.UserService
	Talents  *application.TalentService
	Works    *application.WorkService
	Projects *application.ProjectService
	Search   *application.SearchService
}

func buildServices(stores repository.Stores, pub application.Publisher, index application.SearchIndex, logger *logrus.Logger) Services {
	userRepo := persistence.NewUserRepository(stores.Users, nil)
	talentRepo := persistence.NewTalentRepository(stores.Talents, nil)
	workRepo := persistence.NewWorkRepository(stores.Works, nil)
	projectRepo := persistence.NewProjectRepository(stores.Projects, nil)

	talents := application.NewTalentService(talentRepo, index, pub, logger)
	works := application.NewWorkService(workRepo, index, pub, logger)
	return Services{
		Users:    application.NewUserService(userRepo, pub, logger),
		Talents:  talents,
		Works:    works,
		Projects: application.NewProjectService(projectRepo, talentRepo, pub, logger),
		Search:   application.NewSearchService(talents, works, index, logger),
	}
}

// addModules registers every feature module. limit guards write routes and
// may be nil.
func addModules(r *Registry, svcs Services, limit gin.HandlerFunc, logger *logrus.Logger) {
	r.Add(modules.NewUserModule(handlers.NewUserHandler(svcs.Users, logger), limit))
	r.Add(modules.NewTalentModule(handlers.NewTalentHandler(svcs.Talents, logger), limit))
	r.Add(modules.NewWorkModule(handlers.NewWorkHandler(svcs.Works, logger), limit))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(svcs.Projects, logger), limit))
	r.Add(modules.NewSearchModule(handlers.NewSearchHandler(svcs.Search, logger)))
}

// InitModules initializes all application modules from the container and
// registers them with the router registry. Call once during startup, after
// the container is populated.
func InitModules(r *Registry) *Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	svcs := buildServices(container.GetStores(), container.GetPublisher(), container.GetSearchIndex(), logger)

	var limit gin.HandlerFunc
	if rdb := container.GetRedis(); rdb != nil && cfg.RateLimitPerMinute > 0 {
		allow := middleware.AllowReads()
		if cfg.Env == "development" {
			allow = middleware.AnyOf(allow, middleware.AllowPrivateIP())
		}
		limit = middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute, middleware.KeyByIPAndPath(), allow)
	}
	addModules(r, svcs, limit, logger)

	if m := container.GetMetrics(); m != nil && cfg.MetricsEnabled {
		r.AddRoot(modules.NewMetricsModule(handlers.NewMetricsHandler(m, svcs.Projects, logger)))
	}
	return &svcs
}
