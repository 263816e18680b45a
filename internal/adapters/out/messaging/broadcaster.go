// Package messaging publishes job post announcements to RabbitMQ so worker
// clients learn about new shifts without polling.
package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"

	"staffing/internal/core/ports"
)

// jobPostsExchange is a fanout exchange so every connected worker client
// receives the announcement.
const jobPostsExchange = "job_posts"

// RabbitMQBroadcaster implements ports.Broadcaster using RabbitMQ.
type RabbitMQBroadcaster struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewRabbitMQBroadcaster dials the broker and declares the announcement
// exchange. The declaration is idempotent.
func NewRabbitMQBroadcaster(amqpURL string, logger *slog.Logger) (*RabbitMQBroadcaster, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		jobPostsExchange,
		"fanout",
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RabbitMQ-Broadcaster",
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 30,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &RabbitMQBroadcaster{
		conn:   conn,
		ch:     ch,
		cb:     cb,
		logger: logger,
	}, nil
}

// BroadcastJobPosted publishes the announcement as JSON. The circuit breaker
// sheds publishes while the broker is down so checkout and posting paths do
// not pile up on a dead connection.
func (b *RabbitMQBroadcaster) BroadcastJobPosted(ctx context.Context, event ports.JobPostedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok {
		if time.Until(deadline) <= 0 {
			return ctx.Err()
		}
	}

	_, err = b.cb.Execute(func() (interface{}, error) {
		err := b.ch.PublishWithContext(
			ctx,
			jobPostsExchange,
			"",    // routing key (ignored by fanout)
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}

func (b *RabbitMQBroadcaster) Close() error {
	if b.ch != nil {
		if err := b.ch.Close(); err != nil {
			return err
		}
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
