package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/application"
	"github.com/oksasatya/talenthub/pkg/response"
	"github.com/oksasatya/talenthub/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"omitempty,pwd"`
	Role     string   `json:"role" binding:"required"`
	Bio      string   `json:"bio"`
	Avatar   string   `json:"avatar"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Website  string   `json:"website"`
	Skills   []string `json:"skills"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context(), application.Criteria{Search: c.Query("search")})
	if err != nil {
		respondError(c, h.Logger, "User", err)
		return
	}
	out := make([]userView, 0, len(users))
	for i := range users {
		out = append(out, newUserView(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, "User", err)
		return
	}
	c.JSON(http.StatusOK, newUserView(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "Validation error", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
		Location: req.Location,
		Website:  req.Website,
		Skills:   req.Skills,
	})
	if err != nil {
		respondError(c, h.Logger, "User", err)
		return
	}
	c.JSON(http.StatusCreated, newUserView(u))
}
