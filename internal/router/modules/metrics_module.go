package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/talenthub/internal/interface/http"
)

// MetricsModule exposes the Prometheus registry at /metrics on the group it
// is registered on.
type MetricsModule struct {
	Handler *handlers.MetricsHandler
}

func NewMetricsModule(h *handlers.MetricsHandler) *MetricsModule {
	return &MetricsModule{Handler: h}
}

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/metrics", m.Handler.Serve)
}
