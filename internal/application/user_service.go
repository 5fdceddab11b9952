package application

import (
	"context"
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/event"
	repo "github.com/oksasatya/talenthub/internal/domain/repository"
	"github.com/oksasatya/talenthub/pkg/helpers"
)

type UserService struct {
	Repo      repo.UserRepository
	Publisher Publisher
	Logger    *logrus.Logger
}

func NewUserService(repo repo.UserRepository, pub Publisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Publisher: pub, Logger: logger}
}

type CreateUserInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     string   `json:"role"`
	Bio      string   `json:"bio"`
	Avatar   string   `json:"avatar"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Website  string   `json:"website"`
	Skills   []string `json:"skills"`
}

func (in CreateUserInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Length(8, 72)),
		validation.Field(&in.Role, validation.Required),
		validation.Field(&in.Avatar, is.URL),
		validation.Field(&in.Website, is.URL),
	)
}

// Create validates the input, hashes the optional password and stores the user.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, toValidationError(err)
	}
	u := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Role:     in.Role,
		Bio:      in.Bio,
		Avatar:   in.Avatar,
		Phone:    in.Phone,
		Location: in.Location,
		Website:  in.Website,
		Skills:   nonNil(in.Skills),
	}
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return nil, domain.NewValidationError(map[string]string{"password": "the length must be no more than 72 bytes"})
		}
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{Type: event.UserCreated, EntityID: u.ID, Title: u.Name, OccurredAt: u.CreatedAt})
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// List filters by Search (name, role, email) and orders by id.
func (s *UserService) List(ctx context.Context, crit Criteria) ([]entity.User, error) {
	c := crit.normalized()
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		if c.Search != "" && !anyContainsFold(c.Search, u.Name, u.Role, u.Email) {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
