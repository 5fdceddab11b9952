package application

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/event"
	repo "github.com/oksasatya/talenthub/internal/domain/repository"
)

type ProjectService struct {
	Repo       repo.ProjectRepository
	TalentRepo repo.TalentRepository
	Publisher  Publisher
	Logger     *logrus.Logger
}

func NewProjectService(repo repo.ProjectRepository, talents repo.TalentRepository, pub Publisher, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: repo, TalentRepo: talents, Publisher: pub, Logger: logger}
}

type TaskInput struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

func (t TaskInput) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.ID, validation.Min(int64(0))),
		validation.Field(&t.Name, validation.Required),
		validation.Field(&t.Status, validation.In(entity.TaskNotStarted, entity.TaskInProgress, entity.TaskCompleted)),
	)
}

type CreateProjectInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Client      string        `json:"client"`
	Status      string        `json:"status"`
	DueDate     string        `json:"dueDate"`
	Budget      *string       `json:"budget"`
	Tasks       []TaskInput   `json:"tasks"`
	Team        []PersonInput `json:"team"`
}

func (in CreateProjectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Client, validation.Required),
		validation.Field(&in.Status, validation.Required, validation.In(lo.ToAnySlice(entity.ProjectStatuses)...)),
		validation.Field(&in.DueDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&in.Tasks, validation.By(uniqueTaskIDs)),
		validation.Field(&in.Team),
	)
}

func uniqueTaskIDs(value interface{}) error {
	tasks, _ := value.([]TaskInput)
	ids := lo.FilterMap(tasks, func(t TaskInput, _ int) (int64, bool) { return t.ID, t.ID != 0 })
	if len(lo.Uniq(ids)) != len(ids) {
		return validation.NewError("validation_task_ids_unique", "task ids must be unique")
	}
	return nil
}

// buildTasks assigns the next free id to tasks submitted without one and
// defaults an empty status from the completion flag.
func buildTasks(in []TaskInput) entity.TaskList {
	var next int64
	for _, t := range in {
		if t.ID > next {
			next = t.ID
		}
	}
	tasks := make(entity.TaskList, 0, len(in))
	for _, t := range in {
		task := entity.Task{ID: t.ID, Name: t.Name, Status: t.Status, Completed: t.Completed}
		if task.ID == 0 {
			next++
			task.ID = next
		}
		if task.Status == "" {
			task.Status = entity.TaskNotStarted
			if task.Completed {
				task.Status = entity.TaskCompleted
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*entity.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, toValidationError(err)
	}
	p := &entity.Project{
		Title:       in.Title,
		Description: in.Description,
		Client:      in.Client,
		Status:      in.Status,
		DueDate:     in.DueDate,
		Budget:      in.Budget,
		Tasks:       buildTasks(in.Tasks),
		Team:        lo.Map(in.Team, func(m PersonInput, _ int) entity.PersonRef { return m.ref() }),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": p.ID, "client": p.Client, "status": p.Status}).Info("project created")
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{
		Type: event.ProjectCreated, EntityID: p.ID, Title: p.Title, Status: p.Status, Client: p.Client, OccurredAt: p.CreatedAt,
	})
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*entity.Project, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateStatus accepts any non-blank status, not only the ones allowed at
// creation, and stores it exactly as submitted.
func (s *ProjectService) UpdateStatus(ctx context.Context, id int64, status string) (*entity.Project, error) {
	if strings.TrimSpace(status) == "" {
		return nil, domain.NewValidationError(map[string]string{"status": "Status is required"})
	}
	p, previous, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": id, "status": status, "previous": previous}).Info("project status updated")
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{
		Type: event.ProjectStatusChanged, EntityID: p.ID, Title: p.Title, Status: p.Status, PreviousStatus: previous, Client: p.Client, OccurredAt: time.Now(),
	})
	return p, nil
}

// UpdateTask marks one task completed or not and returns the whole project.
func (s *ProjectService) UpdateTask(ctx context.Context, projectID, taskID int64, completed bool) (*entity.Project, error) {
	p, err := s.Repo.UpdateTask(ctx, projectID, taskID, completed)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": projectID, "task_id": taskID, "completed": completed}).Info("project task updated")
	}
	publish(ctx, s.Publisher, s.Logger, event.Event{
		Type: event.ProjectTaskUpdated, EntityID: p.ID, Title: p.Title, Status: p.Status, TaskID: taskID, Completed: &completed, OccurredAt: time.Now(),
	})
	return p, nil
}

// List pushes status (or else client) down to the repository, applies every
// set dimension in memory and orders by due date.
func (s *ProjectService) List(ctx context.Context, crit Criteria) ([]entity.Project, error) {
	c := crit.normalized()

	var assignee int64
	if c.Assignee != "" {
		id, err := strconv.ParseInt(c.Assignee, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(map[string]string{"assignee": "must be a numeric id"})
		}
		assignee = id
	}

	var (
		projects []entity.Project
		err      error
	)
	switch {
	case c.Status != "":
		projects, err = s.Repo.FindByStatus(ctx, c.Status)
	case c.Client != "":
		projects, err = s.Repo.FindByClient(ctx, c.Client)
	default:
		projects, err = s.Repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := lo.Filter(projects, func(p entity.Project, _ int) bool {
		if c.Status != "" && p.Status != c.Status {
			return false
		}
		if c.Client != "" && p.Client != c.Client {
			return false
		}
		if c.Assignee != "" && !p.HasMember(assignee) {
			return false
		}
		return c.Search == "" || anyContainsFold(c.Search, p.Title, p.Description, p.Client)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DueDate != out[j].DueDate {
			return out[i].DueDate < out[j].DueDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// TeamStats is the team overview: talent headcount and project split.
type TeamStats struct {
	TeamSize          int `json:"teamSize"`
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`
}

func (s *ProjectService) Stats(ctx context.Context) (*TeamStats, error) {
	talents, err := s.TalentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	completed := lo.CountBy(projects, func(p entity.Project) bool { return p.Status == entity.ProjectCompleted })
	return &TeamStats{
		TeamSize:          len(talents),
		ActiveProjects:    len(projects) - completed,
		CompletedProjects: completed,
	}, nil
}
