package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/pkg/helpers"
	"github.com/oksasatya/talenthub/pkg/response"
)

// respondError maps service errors onto status codes. subject names the
// resource in not-found messages, e.g. "Project".
func respondError(c *gin.Context, logger *logrus.Logger, subject string, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		response.Error[any](c, http.StatusBadRequest, "Validation error", ve.Fields)
	case errors.Is(err, domain.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, "Validation error", nil)
	case errors.Is(err, domain.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, subject+" not found", nil)
	case errors.Is(err, domain.ErrConflict):
		response.Error[any](c, http.StatusConflict, subject+" already exists", nil)
	default:
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString("request_id"),
				"path":       c.FullPath(),
				"corrupt":    errors.Is(err, domain.ErrCorruptState),
				"store_down": errors.Is(err, domain.ErrStoreUnavailable),
			})
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// paramID parses a positive integer path parameter, writing a 400 on failure.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
