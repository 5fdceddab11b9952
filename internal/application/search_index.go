package application

import (
	"context"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

// SearchIndex is the full-text index kept next to the store. Hits are ids; the
// records themselves are always read back from the repositories.
type SearchIndex interface {
	IndexTalent(ctx context.Context, t *entity.Talent) error
	IndexWork(ctx context.Context, w *entity.Work) error
	Search(ctx context.Context, q string, size int) (talentIDs, workIDs []int64, err error)
}
