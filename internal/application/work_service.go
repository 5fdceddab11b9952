package application

import (
	"context"
	"sort"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/event"
	repo "github.com/oksasatya/talenthub/internal/domain/repository"
)

type WorkService struct {
	Repo      repo.WorkRepository
	Index     SearchIndex
	Publisher Publisher
	Logger    *logrus.Logger
}

func NewWorkService(repo repo.WorkRepository, index SearchIndex, pub Publisher, logger *logrus.Logger) *WorkService {
	return &WorkService{Repo: repo, Index: index, Publisher: pub, Logger: logger}
}

// PersonInput is a caller-supplied snapshot of a talent or user.
type PersonInput struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (p PersonInput) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Avatar, is.URL),
	)
}

func (p PersonInput) ref() entity.PersonRef {
	return entity.PersonRef{ID: p.ID, Name: p.Name, Avatar: p.Avatar}
}

type CreateWorkInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageURL    string      `json:"imageUrl"`
	Category    string      `json:"category"`
	Tags        []string    `json:"tags"`
	Creator     PersonInput `json:"creator"`
}

func (in CreateWorkInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.ImageURL, validation.Required),
		validation.Field(&in.Category, validation.Required),
		validation.Field(&in.Tags, validation.Each(validation.Required)),
		validation.Field(&in.Creator),
	)
}

func (s *WorkService) Create(ctx context.Context, in CreateWorkInput) (*entity.Work, error) {
	if err := in.Validate(); err != nil {
		return nil, toValidationError(err)
	}
	w := &entity.Work{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Tags:        nonNil(in.Tags),
		Creator:     in.Creator.ref(),
	}
	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"work_id": w.ID, "category": w.Category, "creator_id": w.Creator.ID}).Info("work created")
	}
	if s.Index != nil {
		if err := s.Index.IndexWork(ctx, w); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("work_id", w.ID).Warn("index work failed")
		}
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{Type: event.WorkCreated, EntityID: w.ID, Title: w.Title, OccurredAt: w.CreatedAt})
	return w, nil
}

func (s *WorkService) Get(ctx context.Context, id int64) (*entity.Work, error) {
	return s.Repo.GetByID(ctx, id)
}

// List pushes the first set of category, tag and creator down to the
// repository, applies every set dimension in memory and sorts by Sort.
func (s *WorkService) List(ctx context.Context, crit Criteria) ([]entity.Work, error) {
	c := crit.normalized()

	var creatorID int64
	if c.Creator != "" {
		id, err := strconv.ParseInt(c.Creator, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(map[string]string{"creator": "must be a numeric id"})
		}
		creatorID = id
	}

	var (
		works []entity.Work
		err   error
	)
	switch {
	case c.Category != "":
		works, err = s.Repo.FindByCategory(ctx, c.Category)
	case c.Tag != "":
		works, err = s.Repo.FindByTag(ctx, c.Tag)
	case c.Creator != "":
		works, err = s.Repo.FindByCreator(ctx, creatorID)
	default:
		works, err = s.Repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := lo.Filter(works, func(w entity.Work, _ int) bool {
		if c.Category != "" && w.Category != c.Category {
			return false
		}
		if c.Tag != "" && !lo.Contains(w.Tags, c.Tag) {
			return false
		}
		if c.Creator != "" && w.Creator.ID != creatorID {
			return false
		}
		return c.Search == "" || anyContainsFold(c.Search, w.Title, w.Description, w.Creator.Name)
	})
	sortWorks(out, c.Sort)
	return out, nil
}

// sortWorks orders alphabetically by title for "alphabetical" and newest first
// otherwise. There is no popularity signal, so "popular" falls back to newest.
func sortWorks(works []entity.Work, by string) {
	sort.SliceStable(works, func(i, j int) bool {
		a, b := works[i], works[j]
		if by == SortAlphabetical {
			ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if ta != tb {
				return ta < tb
			}
			return a.ID < b.ID
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
