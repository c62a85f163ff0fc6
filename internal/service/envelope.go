package service

import (
	"context"
	"encoding/json"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/SeakMengs/PropDesk/internal/metrics"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/queue"
	"github.com/SeakMengs/PropDesk/internal/util"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type notificationDraft struct {
	UserID    string
	Title     string
	Message   string
	Type      constant.NotificationType
	Priority  constant.NotificationPriority
	ActionURL string
}

// mutation describes one state-changing operation. runMutation executes it as
// authorize, validate, persist, audit, notify and revalidate, in that order.
type mutation[T any] struct {
	entityType constant.EntityType
	action     constant.AuditAction
	// Validated before persist. Recorded as the audit changes unless changes is set.
	input   any
	changes any
	// Audit metadata derived from the persisted result
	metadata func(result T) any

	transactional bool
	persist       func(ctx context.Context, tx *gorm.DB) (T, error)
	entityID      func(result T) string
	recipients    func(ctx context.Context, result T) ([]notificationDraft, error)
	paths         []string
	failMessage   string
}

func runMutation[T any](ctx context.Context, b *baseService, rc *auth.RequestContext, m mutation[T]) (T, error) {
	var zero T
	entity, action := string(m.entityType), string(m.action)

	failed := func(err error) (T, error) {
		metrics.ObserveMutation(entity, action, metrics.ResultFailure)
		return zero, b.fail(m.failMessage, err)
	}

	if err := b.authorize(rc); err != nil {
		return failed(err)
	}

	if m.input != nil {
		if err := b.validateInput(m.input); err != nil {
			return failed(err)
		}
	}

	var result T
	persist := func(tx *gorm.DB) error {
		var err error
		result, err = m.persist(ctx, tx)
		return err
	}

	var err error
	if m.transactional {
		err = b.repo.Transaction(ctx, persist)
	} else {
		err = persist(nil)
	}
	if err != nil {
		return failed(err)
	}

	entityID := m.entityID(result)

	changes := m.changes
	if changes == nil {
		changes = m.input
	}
	var metadata any
	if m.metadata != nil {
		metadata = m.metadata(result)
	}

	if err := b.writeAudit(ctx, rc, m.entityType, m.action, entityID, changes, metadata); err != nil {
		return failed(err)
	}

	if m.recipients != nil {
		drafts, err := m.recipients(ctx, result)
		if err != nil {
			return failed(err)
		}
		if err := b.fanOut(ctx, m.entityType, entityID, drafts); err != nil {
			return failed(err)
		}
	}

	if err := b.revalidator.Revalidate(ctx, m.paths...); err != nil {
		return failed(err)
	}

	metrics.ObserveMutation(entity, action, metrics.ResultSuccess)
	return result, nil
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func (b *baseService) writeAudit(ctx context.Context, rc *auth.RequestContext, entityType constant.EntityType, action constant.AuditAction, entityID string, changes, metadata any) error {
	changesJSON, err := toJSON(changes)
	if err != nil {
		return err
	}
	metadataJSON, err := toJSON(metadata)
	if err != nil {
		return err
	}

	_, err = b.repo.AuditLog.Create(ctx, nil, &model.AuditLog{
		EntityID:   entityID,
		EntityType: entityType,
		Action:     action,
		UserID:     rc.ActorID,
		Changes:    changesJSON,
		Metadata:   metadataJSON,
		IPAddress:  rc.IPAddress,
		UserAgent:  rc.UserAgent,
	})
	return err
}

// Inserts one notification per draft concurrently. The first insert error is returned
// after every started insert finished; rows already written are kept.
func (b *baseService) fanOut(ctx context.Context, entityType constant.EntityType, entityID string, drafts []notificationDraft) error {
	if len(drafts) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(util.DetermineWorkers(len(drafts)))

	for _, d := range drafts {
		g.Go(func() error {
			_, err := b.repo.Notification.Create(gctx, nil, &model.Notification{
				UserID:     d.UserID,
				Title:      d.Title,
				Message:    d.Message,
				Type:       d.Type,
				Priority:   d.Priority,
				EntityID:   &entityID,
				EntityType: &entityType,
				ActionURL:  d.ActionURL,
			})
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	perType := make(map[constant.NotificationType]int)
	for _, d := range drafts {
		perType[d.Type]++
	}
	for t, count := range perType {
		metrics.ObserveNotifications(string(t), count)
	}

	b.mailNotifications(ctx, drafts)
	return nil
}

// Best effort, a broker failure is logged and does not fail the mutation
func (b *baseService) mailNotifications(ctx context.Context, drafts []notificationDraft) {
	if b.mail == nil {
		return
	}

	for _, d := range drafts {
		if !d.Priority.ShouldMail() {
			continue
		}

		job, err := queue.NewNotificationMailJob(d.UserID, mailer.NotificationMailData{
			AppName:   util.GetAppName(),
			Title:     d.Title,
			Message:   d.Message,
			Priority:  string(d.Priority),
			ActionURL: b.frontendURL + d.ActionURL,
		})
		if err != nil {
			b.logger.Warnf("Failed to build notification mail job for user %s: %v", d.UserID, err)
			continue
		}

		if err := b.mail.PublishMailJob(ctx, job); err != nil {
			b.logger.Warnf("Failed to publish notification mail job for user %s: %v", d.UserID, err)
		}
	}
}

// One draft per registered user
func (b *baseService) broadcast(ctx context.Context, draft notificationDraft) ([]notificationDraft, error) {
	userIds, err := b.repo.User.ListIds(ctx, nil)
	if err != nil {
		return nil, err
	}

	drafts := make([]notificationDraft, len(userIds))
	for i, id := range userIds {
		d := draft
		d.UserID = id
		drafts[i] = d
	}
	return drafts, nil
}
