package persistence

import (
	"context"
	"fmt"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

type TalentRepository struct {
	store repository.RecordStore[entity.Talent]
	clock Clock
}

func NewTalentRepository(store repository.RecordStore[entity.Talent], clock Clock) *TalentRepository {
	return &TalentRepository{store: store, clock: clock}
}

// Create assigns the id and resets the server-owned counters.
func (r *TalentRepository) Create(ctx context.Context, t *entity.Talent) error {
	id, err := r.store.NextID(ctx)
	if err != nil {
		return fmt.Errorf("allocate talent id: %w", err)
	}
	t.ID = id
	t.Rating = 0
	t.CompletedProjects = 0
	t.CreatedAt = r.clock.now()
	if err := r.store.Put(ctx, id, *t); err != nil {
		return fmt.Errorf("create talent: %w", err)
	}
	return nil
}

func (r *TalentRepository) GetByID(ctx context.Context, id int64) (*entity.Talent, error) {
	t, found, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get talent: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("talent %d: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}

func (r *TalentRepository) List(ctx context.Context) ([]entity.Talent, error) {
	talents, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list talents: %w", err)
	}
	return talents, nil
}

func (r *TalentRepository) FindBySkill(ctx context.Context, skill string) ([]entity.Talent, error) {
	return r.find(ctx, repository.Contains("skills", skill, func(t entity.Talent) []string { return t.Skills }))
}

func (r *TalentRepository) FindByAvailability(ctx context.Context, availability string) ([]entity.Talent, error) {
	return r.find(ctx, repository.Equal("availability", availability, func(t entity.Talent) string { return t.Availability }))
}

func (r *TalentRepository) FindByRole(ctx context.Context, role string) ([]entity.Talent, error) {
	return r.find(ctx, repository.Equal("role", role, func(t entity.Talent) string { return t.Role }))
}

func (r *TalentRepository) find(ctx context.Context, m repository.Match[entity.Talent]) ([]entity.Talent, error) {
	talents, err := r.store.Find(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("find talents by %s: %w", m.Field, err)
	}
	return talents, nil
}

var _ repository.TalentRepository = (*TalentRepository)(nil)
