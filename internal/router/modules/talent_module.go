package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

type TalentModule struct {
	Handler *handlers.TalentHandler
	Limit   gin.HandlerFunc
}

func NewTalentModule(h *handlers.TalentHandler, limit gin.HandlerFunc) *TalentModule {
	return &TalentModule{Handler: h, Limit: orPass(limit)}
}

func (m *TalentModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/talents")
	g.GET("", m.Handler.List)
	g.GET("/:id", m.Handler.Get)
	g.POST("", m.Limit, m.Handler.Create)
}
