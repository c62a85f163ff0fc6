package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SeakMengs/PropDesk/internal/config"
	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/SeakMengs/PropDesk/internal/metrics"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type MailConsumerContext struct {
	Config     *config.Config
	Logger     *zap.SugaredLogger
	Repository *repository.Repository
	Mailer     mailer.Client
}

// ToEmail may be empty, the consumer then resolves the address from UserID.
type MailJobPayload struct {
	UserID       string                  `json:"user_id"`
	ToEmail      string                  `json:"to_email"`
	TemplateFile mailer.MailTemplateFile `json:"template_file"`
	Data         json.RawMessage         `json:"data"`
	CreatedAt    string                  `json:"created_at"`
	Try          int                     `json:"try" default:"0"`
}

func NewMailJobPayload[T any](userId, toEmail string, templateFile mailer.MailTemplateFile, data T) (MailJobPayload, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return MailJobPayload{}, fmt.Errorf("failed to marshal data: %w", err)
	}

	return MailJobPayload{
		UserID:       userId,
		ToEmail:      toEmail,
		TemplateFile: templateFile,
		Data:         dataBytes,
		Try:          0,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

func NewNotificationMailJob(userId string, data mailer.NotificationMailData) (MailJobPayload, error) {
	return NewMailJobPayload(userId, "", mailer.TemplateNotification, data)
}

func (r *RabbitMQ) PublishMailJob(ctx context.Context, job MailJobPayload) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal mail job: %w", err)
	}
	return r.Publish(ctx, QueueNotificationMail, body)
}

// Returns whether the job should be retried, and the error if any
type MailJobHandler func(ctx context.Context, jobPayload MailJobPayload, app *MailConsumerContext) (bool, error)

func (r *RabbitMQ) ConsumeMailJob(ctx context.Context, handler MailJobHandler, maxWorker int, app *MailConsumerContext) error {
	msgs, err := r.Consume(QueueNotificationMail)
	if err != nil {
		return fmt.Errorf("failed to start consuming mail jobs: %w", err)
	}

	for i := range maxWorker {
		go func(workerNumber int) {
			runMailWorker(ctx, r, workerNumber, msgs, handler, app)
		}(i + 1)
	}

	return nil
}

func runMailWorker(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msgs <-chan amqp091.Delivery, handler MailJobHandler, app *MailConsumerContext) {
	for {
		select {
		case <-ctx.Done():
			app.Logger.Infof("[Mail Worker %d] Shutting down", workerNumber)
			return
		case msg, ok := <-msgs:
			if !ok {
				app.Logger.Infof("[Mail Worker %d] Message channel closed", workerNumber)
				return
			}
			processMailJob(ctx, rabbitMQ, workerNumber, msg, handler, app)
		}
	}
}

func processMailJob(ctx context.Context, rabbitMQ *RabbitMQ, workerNumber int, msg amqp091.Delivery, handler MailJobHandler, app *MailConsumerContext) {
	if msg.Body == nil {
		app.Logger.Warnf("[Mail Worker %d] Received empty message body", workerNumber)
		rabbitMQ.Nack(msg, false)
		return
	}

	var jobPayload MailJobPayload
	if err := json.Unmarshal(msg.Body, &jobPayload); err != nil {
		app.Logger.Warnf("[Mail Worker %d] Invalid payload: %v", workerNumber, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	workerPrefix := fmt.Sprintf("[Mail Worker %d: Retry %d]", workerNumber, jobPayload.Try)

	shouldRequeue, err := handler(ctx, jobPayload, app)
	if err != nil {
		app.Logger.Errorf("%s Handler error processing mail job for user: %s, template: %s: %v",
			workerPrefix, jobPayload.UserID, jobPayload.TemplateFile, err)

		if !shouldRequeue || jobPayload.Try >= MAX_QUEUE_RETRY {
			app.Logger.Warnf("%s Dropping mail job for user: %s, template: %s (retry: %d, shouldRequeue: %v)",
				workerPrefix, jobPayload.UserID, jobPayload.TemplateFile, jobPayload.Try, shouldRequeue)
			metrics.ObserveMailJob(metrics.ResultFailure)
			rabbitMQ.Nack(msg, false)
			return
		}

		requeueMailJob(ctx, rabbitMQ, workerPrefix, msg, jobPayload, app.Logger)
		return
	}

	app.Logger.Infof("%s Successfully processed mail job for user: %s, template: %s",
		workerPrefix, jobPayload.UserID, jobPayload.TemplateFile)
	metrics.ObserveMailJob(metrics.ResultSuccess)
	rabbitMQ.Ack(msg)
}

func requeueMailJob(ctx context.Context, rabbitMQ *RabbitMQ, workerPrefix string, msg amqp091.Delivery, jobPayload MailJobPayload, logger *zap.SugaredLogger) {
	jobPayload.Try++
	if err := rabbitMQ.PublishMailJob(ctx, jobPayload); err != nil {
		logger.Errorf("%s Failed to requeue mail job for user: %s, template: %s: %v",
			workerPrefix, jobPayload.UserID, jobPayload.TemplateFile, err)
		rabbitMQ.Nack(msg, false)
		return
	}

	logger.Infof("%s Requeued mail job for user: %s, template: %s",
		workerPrefix, jobPayload.UserID, jobPayload.TemplateFile)
	rabbitMQ.Ack(msg)
}
