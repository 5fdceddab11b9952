package persistence

import (
	"context"
	"fmt"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/repository"
)

type ProjectRepository struct {
	store repository.RecordStore[entity.Project]
	clock Clock
}

func NewProjectRepository(store repository.RecordStore[entity.Project], clock Clock) *ProjectRepository {
	return &ProjectRepository{store: store, clock: clock}
}

// Create assigns the id and resets the file and comment counters.
func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	id, err := r.store.NextID(ctx)
	if err != nil {
		return fmt.Errorf("allocate project id: %w", err)
	}
	p.ID = id
	p.FileCount = 0
	p.CommentCount = 0
	p.CreatedAt = r.clock.now()
	if err := r.store.Put(ctx, id, *p); err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	p, found, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	projects, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepository) FindByStatus(ctx context.Context, status string) ([]entity.Project, error) {
	return r.find(ctx, repository.Equal("status", status, func(p entity.Project) string { return p.Status }))
}

func (r *ProjectRepository) FindByClient(ctx context.Context, client string) ([]entity.Project, error) {
	return r.find(ctx, repository.Equal("client", client, func(p entity.Project) string { return p.Client }))
}

// getForUpdate reads the authoritative copy, skipping the read cache and the
// sample-data fallback.
func (r *ProjectRepository) getForUpdate(ctx context.Context, id int64) (*entity.Project, error) {
	p, found, err := repository.GetFresh(ctx, r.store, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// UpdateStatus replaces only the status field and reports the status it replaced.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Project, string, error) {
	p, err := r.getForUpdate(ctx, id)
	if err != nil {
		return nil, "", err
	}
	previous := p.Status
	p.Status = status
	if err := r.store.Put(ctx, id, *p); err != nil {
		return nil, "", fmt.Errorf("update project status: %w", err)
	}
	return p, previous, nil
}

// UpdateTask sets the completion flag of one embedded task and rewrites the
// whole project document.
func (r *ProjectRepository) UpdateTask(ctx context.Context, projectID, taskID int64, completed bool) (*entity.Project, error) {
	p, err := r.getForUpdate(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.SetTaskCompleted(taskID, completed) {
		return nil, fmt.Errorf("task %d in project %d: %w", taskID, projectID, domain.ErrNotFound)
	}
	if err := r.store.Put(ctx, projectID, *p); err != nil {
		return nil, fmt.Errorf("update project task: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) find(ctx context.Context, m repository.Match[entity.Project]) ([]entity.Project, error) {
	projects, err := r.store.Find(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("find projects by %s: %w", m.Field, err)
	}
	return projects, nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
