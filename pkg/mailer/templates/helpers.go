package templates

import (
	"time"

	"github.com/oksasatya/talenthub/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithProject(id int64, title, client, status string) Option {
	return func(d *EmailData) {
		d.ProjectID = id
		d.ProjectTitle = title
		d.Client = client
		d.Status = status
	}
}

// NewBaseEmailData fills the footer fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, recipient string, opts ...Option) EmailData {
	d := EmailData{
		RecipientEmail: recipient,
		Type:           typ,

		CompanyName:    cfg.CompanyName,
		CompanyAddress: cfg.CompanyAddress,
		AppName:        cfg.AppName,

		LogoURL:      cfg.LogoURL,
		SupportURL:   cfg.SupportURL,
		DashboardURL: cfg.DashboardURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewProjectCreatedData(cfg *config.Config, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, ProjectCreated, recipient, opts...))
}

func NewProjectCompletedData(cfg *config.Config, recipient string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, ProjectCompleted, recipient, opts...))
}
