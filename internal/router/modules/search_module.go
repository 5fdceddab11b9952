package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

type SearchModule struct {
	Handler *handlers.SearchHandler
}

func NewSearchModule(h *handlers.SearchHandler) *SearchModule {
	return &SearchModule{Handler: h}
}

func (m *SearchModule) Register(rg *gin.RouterGroup) {
	rg.GET("/search", m.Handler.Search)
}
