package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	ProjectInProgress  = "In Progress"
	ProjectOnHold      = "On Hold"
	ProjectUnderReview = "Under Review"
	ProjectCompleted   = "Completed"
)

// ProjectStatuses lists the statuses accepted when a project is created.
var ProjectStatuses = []string{ProjectInProgress, ProjectOnHold, ProjectUnderReview, ProjectCompleted}

const (
	TaskNotStarted = "Not Started"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// Task lives only inside its project; ids are unique per project.
type Task struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Status    string `json:"status" yaml:"status"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TaskList is the embedded task list of a project. Older documents stored it as
// a JSON-encoded string; both forms decode here, once, when the document is loaded.
type TaskList []Task

func (l *TaskList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var blob string
		if err := json.Unmarshal(b, &blob); err != nil {
			return err
		}
		b = []byte(blob)
	}
	var tasks []Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}
	*l = tasks
	return nil
}

type Project struct {
	ID           int64       `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	Client       string      `json:"client" yaml:"client"`
	Status       string      `json:"status" yaml:"status"`
	DueDate      string      `json:"dueDate" yaml:"dueDate"`
	Budget       *string     `json:"budget" yaml:"budget"`
	Tasks        TaskList    `json:"tasks" yaml:"tasks"`
	Team         []PersonRef `json:"team" yaml:"team"`
	FileCount    int         `json:"fileCount" yaml:"fileCount"`
	CommentCount int         `json:"commentCount" yaml:"commentCount"`
	CreatedAt    time.Time   `json:"createdAt" yaml:"createdAt"`
}

// TaskIndex returns the position of the task with the given id, or -1.
func (p *Project) TaskIndex(taskID int64) int {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// SetTaskCompleted flips the completion flag and derives the task status from it,
// overwriting any finer-grained status the task had.
func (p *Project) SetTaskCompleted(taskID int64, completed bool) bool {
	i := p.TaskIndex(taskID)
	if i < 0 {
		return false
	}
	p.Tasks[i].Completed = completed
	if completed {
		p.Tasks[i].Status = TaskCompleted
	} else {
		p.Tasks[i].Status = TaskInProgress
	}
	return true
}

// Progress is the rounded percentage of completed tasks.
func (p *Project) Progress() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(p.Tasks))))
}

// HasMember reports whether the denormalized team contains the given id.
func (p *Project) HasMember(id int64) bool {
	for _, m := range p.Team {
		if m.ID == id {
			return true
		}
	}
	return false
}
