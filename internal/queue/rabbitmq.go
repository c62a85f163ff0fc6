package queue

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds one connection and one channel. Publish is serialised on mu
// because an amqp channel must not publish from several goroutines at once.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

type QueueName string

const (
	QueueNotificationMail QueueName = "notification_mail_queue"
	// Jobs rejected without requeue end up here for inspection
	QueueNotificationMailDead QueueName = "notification_mail_dead_letter"
)

const (
	MAX_QUEUE_RETRY = 3
)

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	r := &RabbitMQ{conn: conn, channel: channel}
	if err := r.declareQueues(); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Both queues are durable. Nacked mail jobs are routed to the dead letter queue
// through the default exchange.
func (r *RabbitMQ) declareQueues() error {
	if _, err := r.channel.QueueDeclare(string(QueueNotificationMailDead), true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare %s: %w", QueueNotificationMailDead, err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": string(QueueNotificationMailDead),
	}
	if _, err := r.channel.QueueDeclare(string(QueueNotificationMail), true, false, false, false, args); err != nil {
		return fmt.Errorf("failed to declare %s: %w", QueueNotificationMail, err)
	}

	return nil
}

func (r *RabbitMQ) Close() error {
	if err := r.channel.Close(); err != nil {
		return err
	}
	return r.conn.Close()
}

func (r *RabbitMQ) Publish(ctx context.Context, routingKey QueueName, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.channel.PublishWithContext(ctx, "", string(routingKey), false, false, amqp.Publishing{
		// survives a broker restart
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
}

// Consume delivers one unacknowledged message per consumer at a time.
// Docs: https://www.rabbitmq.com/tutorials/tutorial-two-go#fair-dispatch
func (r *RabbitMQ) Consume(queueName QueueName) (<-chan amqp.Delivery, error) {
	if err := r.channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	return r.channel.Consume(string(queueName), "", false, false, false, false, nil)
}

func (r *RabbitMQ) Ack(delivery amqp.Delivery) error {
	return delivery.Ack(false)
}

// A nack without requeue dead letters the message
func (r *RabbitMQ) Nack(delivery amqp.Delivery, requeue bool) error {
	return delivery.Nack(false, requeue)
}
