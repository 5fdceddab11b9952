package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/internal/domain/event"
)

// Publisher delivers domain events; helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// publish is best-effort: the write already happened, so failures are logged only.
func publish(ctx context.Context, pub Publisher, logger *logrus.Logger, ev event.Event) {
	if pub == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if err := pub.PublishJSON(ctx, ev); err != nil && logger != nil {
		logger.WithError(err).WithFields(logrus.Fields{"type": ev.Type, "entity_id": ev.EntityID}).Warn("publish event failed")
	}
}
