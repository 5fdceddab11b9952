package helpers

import (
	"strings"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/domain/entity"
	"github.com/oksasatya/talenthub/internal/domain/event"
	"github.com/oksasatya/talenthub/pkg/mailer"
	mailtpl "github.com/oksasatya/talenthub/pkg/mailer/templates"
)

// JobForEvent maps a domain event onto a notification email for
// cfg.NotifyEmail. Only new projects and projects moving into Completed notify
// (a repeated Completed does not);
// ok is false for every other event or when no recipient is configured.
func JobForEvent(cfg *config.Config, ev event.Event) (job mailer.EmailJob, ok bool) {
	to := strings.TrimSpace(cfg.NotifyEmail)
	if to == "" {
		return mailer.EmailJob{}, false
	}
	opts := []mailtpl.Option{
		mailtpl.WithProject(ev.EntityID, ev.Title, ev.Client, ev.Status),
		mailtpl.WithTime(ev.OccurredAt),
	}
	switch ev.Type {
	case event.ProjectCreated:
		return mailer.EmailJob{
			To:       to,
			Template: mailtpl.ProjectCreated,
			Data:     mailtpl.NewProjectCreatedData(cfg, to, opts...),
		}, true
	case event.ProjectStatusChanged:
		if !ev.BecameCompleted(entity.ProjectCompleted) {
			return mailer.EmailJob{}, false
		}
		return mailer.EmailJob{
			To:       to,
			Template: mailtpl.ProjectCompleted,
			Data:     mailtpl.NewProjectCompletedData(cfg, to, opts...),
		}, true
	}
	return mailer.EmailJob{}, false
}
