package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/internal/interface/middleware"
)

type MetricsHandler struct {
	Metrics  *middleware.Metrics
	Projects *application.ProjectService
	Logger   *logrus.Logger
}

func NewMetricsHandler(m *middleware.Metrics, projects *application.ProjectService, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{Metrics: m, Projects: projects, Logger: logger}
}

// Serve refreshes the per-status project gauge and writes the exposition.
func (h *MetricsHandler) Serve(c *gin.Context) {
	projects, err := h.Projects.List(c.Request.Context(), application.Criteria{})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("refresh project gauge failed")
		}
	} else {
		h.Metrics.Projects.Reset()
		for _, p := range projects {
			h.Metrics.Projects.WithLabelValues(p.Status).Inc()
		}
	}
	h.Metrics.Handler().ServeHTTP(c.Writer, c.Request)
}
