package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/pkg/response"
	"github.com/oksasatya/talenthub/pkg/validation"
)

type WorkHandler struct {
	Svc    *application.WorkService
	Logger *logrus.Logger
}

func NewWorkHandler(svc *application.WorkService, logger *logrus.Logger) *WorkHandler {
	return &WorkHandler{Svc: svc, Logger: logger}
}

type personRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Avatar string `json:"avatar"`
}

func (p personRequest) input() application.PersonInput {
	return application.PersonInput{ID: p.ID, Name: p.Name, Avatar: p.Avatar}
}

type createWorkRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	ImageURL    string        `json:"imageUrl" binding:"required"`
	Category    string        `json:"category" binding:"required"`
	Tags        []string      `json:"tags"`
	Creator     personRequest `json:"creator"`
}

func (h *WorkHandler) List(c *gin.Context) {
	works, err := h.Svc.List(c.Request.Context(), application.Criteria{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Creator:  c.Query("creator"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		respondError(c, h.Logger, "Work", err)
		return
	}
	c.JSON(http.StatusOK, works)
}

func (h *WorkHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	w, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "Work", err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) Create(c *gin.Context) {
	var req createWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation error", validation.ToDetails(err))
		return
	}
	w, err := h.Svc.Create(c.Request.Context(), application.CreateWorkInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Tags:        req.Tags,
		Creator:     req.Creator.input(),
	})
	if err != nil {
		respondError(c, h.Logger, "Work", err)
		return
	}
	c.JSON(http.StatusCreated, w)
}
