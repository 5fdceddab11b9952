package application

import (
	"context"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/event"
	repo "github.com/oksasatya/talenthub/internal/domain/repository"
)

type TalentService struct {
	Repo      repo.TalentRepository
	Index     SearchIndex
	Publisher Publisher
	Logger    *logrus.Logger
}

func NewTalentService(repo repo.TalentRepository, index SearchIndex, pub Publisher, logger *logrus.Logger) *TalentService {
	return &TalentService{Repo: repo, Index: index, Publisher: pub, Logger: logger}
}

// CreateTalentInput has no rating or completedProjects: both are server-owned.
type CreateTalentInput struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Bio          string   `json:"bio"`
	Avatar       string   `json:"avatar"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location"`
	Availability string   `json:"availability"`
	Email        string   `json:"email"`
	LinkedIn     string   `json:"linkedIn"`
	Website      string   `json:"website"`
}

func (in CreateTalentInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&in.Role, validation.Required),
		validation.Field(&in.Bio, validation.Required),
		validation.Field(&in.Location, validation.Required),
		validation.Field(&in.Availability, validation.Required, validation.In(lo.ToAnySlice(entity.Availabilities)...)),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Avatar, is.URL),
		validation.Field(&in.LinkedIn, is.URL),
		validation.Field(&in.Website, is.URL),
	)
}

func (s *TalentService) Create(ctx context.Context, in CreateTalentInput) (*entity.Talent, error) {
	if err := in.Validate(); err != nil {
		return nil, toValidationError(err)
	}
	t := &entity.Talent{
		Name:         in.Name,
		Role:         in.Role,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		Skills:       nonNil(in.Skills),
		Location:     in.Location,
		Availability: in.Availability,
		Email:        in.Email,
		LinkedIn:     in.LinkedIn,
		Website:      in.Website,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"talent_id": t.ID, "role": t.Role}).Info("talent created")
	}
	if s.Index != nil {
		if err := s.Index.IndexTalent(ctx, t); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("talent_id", t.ID).Warn("index talent failed")
		}
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{Type: event.TalentCreated, EntityID: t.ID, Title: t.Name, OccurredAt: t.CreatedAt})
	return t, nil
}

func (s *TalentService) Get(ctx context.Context, id int64) (*entity.Talent, error) {
	return s.Repo.GetByID(ctx, id)
}

// List pushes the first set of availability, role and skill down to the
// repository, applies every set dimension in memory and orders by rating.
func (s *TalentService) List(ctx context.Context, crit Criteria) ([]entity.Talent, error) {
	c := crit.normalized()

	var (
		talents []entity.Talent
		err     error
	)
	switch {
	case c.Availability != "":
		talents, err = s.Repo.FindByAvailability(ctx, c.Availability)
	case c.Role != "":
		talents, err = s.Repo.FindByRole(ctx, c.Role)
	case c.Skill != "":
		talents, err = s.Repo.FindBySkill(ctx, c.Skill)
	default:
		talents, err = s.Repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := lo.Filter(talents, func(t entity.Talent, _ int) bool { return matchTalent(t, c) })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func matchTalent(t entity.Talent, c Criteria) bool {
	if c.Availability != "" && t.Availability != c.Availability {
		return false
	}
	if c.Role != "" && t.Role != c.Role {
		return false
	}
	if c.Skill != "" && !lo.Contains(t.Skills, c.Skill) {
		return false
	}
	if c.Search != "" && !anyContainsFold(c.Search, t.Name, t.Role, t.Bio) {
		return false
	}
	return true
}
