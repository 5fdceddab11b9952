package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

// UserModule serves /users. Writes are rate limited by the shared write limiter.
type UserModule struct {
	Handler *handlers.UserHandler
	Limit   gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, limit gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Limit: orPass(limit)}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Limit, m.Handler.Create)
}
