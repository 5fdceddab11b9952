package repository

import (
	"context"

	"github.com/oksasatya/talenthub/internal/domain/entity"
)

// ProjectRepository stores projects with their embedded tasks and team.
// UpdateStatus and UpdateTask are read-modify-write without any concurrency
// token: the last writer wins. Both read the authoritative store, never a
// cache or the sample fallback.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	List(ctx context.Context) ([]entity.Project, error)
	FindByStatus(ctx context.Context, status string) ([]entity.Project, error)
	FindByClient(ctx context.Context, client string) ([]entity.Project, error)
	UpdateStatus(ctx context.Context, id int64, status string) (p *entity.Project, previous string, err error)
	UpdateTask(ctx context.Context, projectID, taskID int64, completed bool) (*entity.Project, error)
}
