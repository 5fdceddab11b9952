package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

// ProjectModule serves /projects including the status and task mutations.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	Limit   gin.HandlerFunc
}

func NewProjectModule(h *handlers.ProjectHandler, limit gin.HandlerFunc) *ProjectModule {
	return &ProjectModule{Handler: h, Limit: orPass(limit)}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/projects")
	g.GET("", m.Handler.List)
	g.GET("/stats", m.Handler.Stats)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Limit, m.Handler.Create)
	g.PATCH("/:id/status", m.Limit, m.Handler.UpdateStatus)
	g.PATCH("/:id/tasks/:taskId", m.Limit, m.Handler.UpdateTask)
}
