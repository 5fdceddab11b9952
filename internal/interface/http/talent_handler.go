package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/pkg/response"
	"github.com/oksasatya/talenthub/pkg/validation"
)

type TalentHandler struct {
	Svc    *application.TalentService
	Logger *logrus.Logger
}

func NewTalentHandler(svc *application.TalentService, logger *logrus.Logger) *TalentHandler {
	return &TalentHandler{Svc: svc, Logger: logger}
}

type createTalentRequest struct {
	Name         string   `json:"name" binding:"required"`
	Role         string   `json:"role" binding:"required"`
	Bio          string   `json:"bio" binding:"required"`
	Avatar       string   `json:"avatar"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location" binding:"required"`
	Availability string   `json:"availability" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	LinkedIn     string   `json:"linkedIn"`
	Website      string   `json:"website"`
}

func (h *TalentHandler) List(c *gin.Context) {
	talents, err := h.Svc.List(c.Request.Context(), application.Criteria{
		Role:         c.Query("role"),
		Skill:        c.Query("skill"),
		Availability: c.Query("availability"),
		Search:       c.Query("search"),
	})
	if err != nil {
		respondError(c, h.Logger, "Talent", err)
		return
	}
	c.JSON(http.StatusOK, talents)
}

func (h *TalentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "Talent", err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TalentHandler) Create(c *gin.Context) {
	var req createTalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation error", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), application.CreateTalentInput{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		Avatar:       req.Avatar,
		Skills:       req.Skills,
		Location:     req.Location,
		Availability: req.Availability,
		Email:        req.Email,
		LinkedIn:     req.LinkedIn,
		Website:      req.Website,
	})
	if err != nil {
		respondError(c, h.Logger, "Talent", err)
		return
	}
	c.JSON(http.StatusCreated, t)
}
