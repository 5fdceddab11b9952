package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/pkg/response"
	"github.com/oksasatya/talenthub/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type taskRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" binding:"required"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

type createProjectRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Client      string          `json:"client" binding:"required"`
	Status      string          `json:"status" binding:"required"`
	DueDate     string          `json:"dueDate" binding:"required"`
	Budget      *string         `json:"budget"`
	Tasks       []taskRequest   `json:"tasks" binding:"dive"`
	Team        []personRequest `json:"team" binding:"dive"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updateTaskRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context(), application.Criteria{
		Status:   c.Query("status"),
		Assignee: c.Query("assignee"),
		Client:   c.Query("client"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, h.Logger, "Project", err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(projects, func(p entity.Project, _ int) projectView { return newProjectView(&p) }))
}

func (h *ProjectHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "Project", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "Project", err)
		return
	}
	c.JSON(http.StatusOK, newProjectView(p))
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation error", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Client:      req.Client,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Budget:      req.Budget,
		Tasks: lo.Map(req.Tasks, func(t taskRequest, _ int) application.TaskInput {
			return application.TaskInput{ID: t.ID, Name: t.Name, Status: t.Status, Completed: t.Completed}
		}),
		Team: lo.Map(req.Team, func(m personRequest, _ int) application.PersonInput { return m.input() }),
	})
	if err != nil {
		respondError(c, h.Logger, "Project", err)
		return
	}
	c.JSON(http.StatusCreated, newProjectView(p))
}

func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Status is required", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.Logger, "Project", err)
		return
	}
	c.JSON(http.StatusOK, newProjectView(p))
}

func (h *ProjectHandler) UpdateTask(c *gin.Context) {
	projectID, ok := paramID(c, "id")
	if !ok {
		return
	}
	taskID, ok := paramID(c, "taskId")
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Completed status is required", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdateTask(c.Request.Context(), projectID, taskID, *req.Completed)
	if err != nil {
		respondError(c, h.Logger, "Project or task", err)
		return
	}
	c.JSON(http.StatusOK, newProjectView(p))
}
