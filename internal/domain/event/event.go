// Package event defines the domain events published after successful writes.
package event

import (
	"strings"
	"time"
)

const (
	ProjectCreated       = "project.created"
	ProjectStatusChanged = "project.status_changed"
	ProjectTaskUpdated   = "project.task_updated"
	TalentCreated        = "talent.created"
	WorkCreated          = "work.created"
	UserCreated          = "user.created"
)

// Event is the message body put on the events queue. PreviousStatus is only
// set on project.status_changed.
type Event struct {
	Type           string    `json:"type"`
	EntityID       int64     `json:"entityId"`
	Title          string    `json:"title"`
	Status         string    `json:"status,omitempty"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	TaskID         int64     `json:"taskId,omitempty"`
	Completed      *bool     `json:"completed,omitempty"`
	Client         string    `json:"client,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// BecameCompleted reports a status change into Completed from any other status.
func (e Event) BecameCompleted(completed string) bool {
	return e.Type == ProjectStatusChanged &&
		strings.EqualFold(strings.TrimSpace(e.Status), completed) &&
		!strings.EqualFold(strings.TrimSpace(e.PreviousStatus), completed)
}
