package persistence

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

type WorkRepository struct {
	store repository.RecordStore[entity.Work]
	clock Clock
}

func NewWorkRepository(store repository.RecordStore[entity.Work], clock Clock) *WorkRepository {
	return &WorkRepository{store: store, clock: clock}
}

func (r *WorkRepository) Create(ctx context.Context, w *entity.Work) error {
	id, err := r.store.NextID(ctx)
	if err != nil {
		return fmt.Errorf("allocate work id: %w", err)
	}
	w.ID = id
	w.CreatedAt = r.clock.now()
	if err := r.store.Put(ctx, id, *w); err != nil {
		return fmt.Errorf("create work: %w", err)
	}
	return nil
}

func (r *WorkRepository) GetByID(ctx context.Context, id int64) (*entity.Work, error) {
	w, found, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get work: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("work %d: %w", id, domain.ErrNotFound)
	}
	return &w, nil
}

func (r *WorkRepository) List(ctx context.Context) ([]entity.Work, error) {
	works, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

func (r *WorkRepository) FindByCategory(ctx context.Context, category string) ([]entity.Work, error) {
	return r.find(ctx, repository.Equal("category", category, func(w entity.Work) string { return w.Category }))
}

func (r *WorkRepository) FindByTag(ctx context.Context, tag string) ([]entity.Work, error) {
	return r.find(ctx, repository.Contains("tags", tag, func(w entity.Work) []string { return w.Tags }))
}

// FindByCreator matches the id of the denormalized creator snapshot.
func (r *WorkRepository) FindByCreator(ctx context.Context, creatorID int64) ([]entity.Work, error) {
	return r.find(ctx, repository.Equal("creator.id", strconv.FormatInt(creatorID, 10), func(w entity.Work) string {
		return strconv.FormatInt(w.Creator.ID, 10)
	}))
}

func (r *WorkRepository) find(ctx context.Context, m repository.Match[entity.Work]) ([]entity.Work, error) {
	works, err := r.store.Find(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("find works by %s: %w", m.Field, err)
	}
	return works, nil
}

var _ repository.WorkRepository = (*WorkRepository)(nil)
