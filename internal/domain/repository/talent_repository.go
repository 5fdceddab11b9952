package repository

import (
	"context"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

type TalentRepository interface {
	Create(ctx context.Context, t *entity.Talent) error
	GetByID(ctx context.Context, id int64) (*entity.Talent, error)
	List(ctx context.Context) ([]entity.Talent, error)
	FindBySkill(ctx context.Context, skill string) ([]entity.Talent, error)
	FindByAvailability(ctx context.Context, availability string) ([]entity.Talent, error)
	FindByRole(ctx context.Context, role string) ([]entity.Talent, error)
}
