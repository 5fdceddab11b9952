package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/talenthub/config"
	"github.com/oksasatya/talenthub/internal/domain/event"
	"github.com/oksasatya/talenthub/pkg/helpers"
	"github.com/oksasatya/talenthub/pkg/mailer"
	mailtpl "github.com/oksasatya/talenthub/pkg/mailer/templates"
)

// event_worker consumes domain events and emails NOTIFY_EMAIL when a project
// is created or completed. Other events are acknowledged and dropped.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-event-worker", cfg.Env, cfg.LogLevel)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.NotifyEmail == "" {
		logger.Warn("NOTIFY_EMAIL empty; events will be consumed without sending mail")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQEventsQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	var mg *mailer.Mailgun
	if cfg.MailSendEnabled {
		mg, err = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender, cfg.MailgunAPIBase)
		if err != nil {
			log.Fatalf("mailgun: %v", err)
		}
	}
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			handle(ctx, cfg, mg, logger, msg)
		}
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQEventsQueue).Info("event worker listening")
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func handle(ctx context.Context, cfg *config.Config, mg *mailer.Mailgun, logger *logrus.Logger, msg amqp.Delivery) {
	var ev event.Event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		logger.WithError(err).Warn("bad message")
		_ = msg.Nack(false, false)
		return
	}
	entry := logger.WithFields(logrus.Fields{"type": ev.Type, "entity_id": ev.EntityID})

	job, ok := helpers.JobForEvent(cfg, ev)
	if !ok {
		_ = msg.Ack(false)
		return
	}
	subject, text, html, err := mailtpl.Render(job.Template, job.Data)
	if err != nil {
		entry.WithError(err).Error("render failed")
		_ = msg.Nack(false, false)
		return
	}
	if mg == nil {
		entry.WithFields(logrus.Fields{"to": job.To, "subject": subject}).Info("MAIL_SEND_ENABLED=false; notification not sent")
		_ = msg.Ack(false)
		return
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	id, err := mg.Deliver(c, job, subject, text, html)
	if err != nil {
		entry.WithError(err).Warn("send failed")
		_ = msg.Nack(false, true)
		return
	}
	entry.WithFields(logrus.Fields{"to": job.To, "message_id": id}).Info("notification sent")
	_ = msg.Ack(false)
}
