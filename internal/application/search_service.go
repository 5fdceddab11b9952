package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
)

type SearchResult struct {
	Talents []entity.Talent `json:"talents"`
	Works   []entity.Work   `json:"works"`
}

// SearchService answers free-text queries across talents and works. With an
// index it resolves index hits through the repositories; without one it falls
// back to the list filters.
type SearchService struct {
	Talents *TalentService
	Works   *WorkService
	Index   SearchIndex
	Logger  *logrus.Logger
}

func NewSearchService(talents *TalentService, works *WorkService, index SearchIndex, logger *logrus.Logger) *SearchService {
	return &SearchService{Talents: talents, Works: works, Index: index, Logger: logger}
}

const defaultSearchSize = 10

func (s *SearchService) Search(ctx context.Context, q string) (*SearchResult, error) {
	if !isSet(q) {
		return &SearchResult{Talents: []entity.Talent{}, Works: []entity.Work{}}, nil
	}
	if s.Index == nil {
		return s.scan(ctx, q)
	}
	talentIDs, workIDs, err := s.Index.Search(ctx, q, defaultSearchSize)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("search index unavailable, scanning store")
		}
		return s.scan(ctx, q)
	}
	res := &SearchResult{Talents: []entity.Talent{}, Works: []entity.Work{}}
	for _, id := range talentIDs {
		t, err := s.Talents.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		res.Talents = append(res.Talents, *t)
	}
	for _, id := range workIDs {
		w, err := s.Works.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		res.Works = append(res.Works, *w)
	}
	return res, nil
}

func (s *SearchService) scan(ctx context.Context, q string) (*SearchResult, error) {
	talents, err := s.Talents.List(ctx, Criteria{Search: q})
	if err != nil {
		return nil, err
	}
	works, err := s.Works.List(ctx, Criteria{Search: q})
	if err != nil {
		return nil, err
	}
	return &SearchResult{Talents: talents, Works: works}, nil
}
