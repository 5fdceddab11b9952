package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
)

type SearchHandler struct {
	Svc    *application.SearchService
	Logger *logrus.Logger
}

func NewSearchHandler(svc *application.SearchService, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{Svc: svc, Logger: logger}
}

// Search handles GET /search?q=.
func (h *SearchHandler) Search(c *gin.Context) {
	res, err := h.Svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.Logger, "Result", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
