package repository

import (
	"context"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

type WorkRepository interface {
	Create(ctx context.Context, w *entity.Work) error
	GetByID(ctx context.Context, id int64) (*entity.Work, error)
	List(ctx context.Context) ([]entity.Work, error)
	FindByCategory(ctx context.Context, category string) ([]entity.Work, error)
	FindByTag(ctx context.Context, tag string) ([]entity.Work, error)
	FindByCreator(ctx context.Context, creatorID int64) ([]entity.Work, error)
}
