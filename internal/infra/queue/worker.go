package queue

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/focusin/hub/internal/infra/http/middleware"
)

// Notifier is the outbound side of the worker, implemented by the
// Discord webhook client.
type Notifier interface {
	SendCheckIn(displayName string, at time.Time) error
	SendCheckOut(displayName string, at time.Time) error
	SendWorkSummary(displayName string, checkIn, checkOut time.Time, summary string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
	Log      *zap.Logger
}

func NewWorker(ch *amqp.Channel, notifier Notifier, log *zap.Logger) *Worker {
	return &Worker{Channel: ch, Notifier: notifier, Log: log}
}

// Start consumes the notification queue until the channel closes.
// Malformed messages are rejected without requeue so they land on
// the DLQ instead of blocking the queue.
func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	w.Log.Info("notification worker running", zap.String("queue", queueName))

	for d := range msgs {
		var event NotificationEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			w.Log.Warn("dropping malformed notification", zap.Error(err))
			d.Nack(false, false)
			continue
		}

		if err := w.process(event); err != nil {
			w.Log.Error("notification delivery failed",
				zap.String("type", event.Type),
				zap.String("user", event.DisplayName),
				zap.Error(err))
			middleware.RecordWebhookDelivery(event.Type, "error")
			d.Nack(false, false)
			continue
		}
		middleware.RecordWebhookDelivery(event.Type, "ok")
		d.Ack(false)
	}
	return nil
}

func (w *Worker) process(event NotificationEvent) error {
	switch event.Type {
	case EventCheckIn:
		return w.Notifier.SendCheckIn(event.DisplayName, event.CheckIn)
	case EventCheckOut:
		return w.Notifier.SendCheckOut(event.DisplayName, event.CheckOut)
	case EventWorkSummary:
		return w.Notifier.SendWorkSummary(event.DisplayName, event.CheckIn, event.CheckOut, event.Summary)
	default:
		// Unknown type: ack and move on, nothing can handle it.
		w.Log.Warn("unknown notification type", zap.String("type", event.Type))
		return nil
	}
}
