package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventCheckIn     = "check_in"
	EventCheckOut    = "check_out"
	EventWorkSummary = "work_summary"
)

// NotificationEvent is the message published for every attendance
// action. The worker fans it out to the Discord webhooks.
type NotificationEvent struct {
	Type        string    `json:"type"`
	DisplayName string    `json:"displayName"`
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut,omitempty"`
	Summary     string    `json:"summary,omitempty"`
}

type ProducerInterface interface {
	PublishNotification(ctx context.Context, event NotificationEvent) error
}

type RabbitMQProducer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, event NotificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
