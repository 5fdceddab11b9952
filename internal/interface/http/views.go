package handlers

import (
	"time"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

// userView is the public shape of a user; the password hash never leaves the service.
type userView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	Website   string    `json:"website"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		Phone:     u.Phone,
		Location:  u.Location,
		Website:   u.Website,
		Skills:    u.Skills,
		CreatedAt: u.CreatedAt,
	}
}

// projectView adds the derived completion percentage.
type projectView struct {
	entity.Project
	Progress int `json:"progress"`
}

func newProjectView(p *entity.Project) projectView {
	return projectView{Project: *p, Progress: p.Progress()}
}
