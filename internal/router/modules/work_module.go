package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

type WorkModule struct {
	Handler *handlers.WorkHandler
	Limit   gin.HandlerFunc
}

func NewWorkModule(h *handlers.WorkHandler, limit gin.HandlerFunc) *WorkModule {
	return &WorkModule{Handler: h, Limit: orPass(limit)}
}

func (m *WorkModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/works")
	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Limit, m.Handler.Create)
}
