package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"gorm.io/gorm"
)

type NotificationService struct {
	*baseService
}

type MarkAllReadResult struct {
	UserID  string `json:"userId"`
	Updated int64  `json:"updated"`
}

var notificationPaths = []string{apiPath("notifications")}

func (ns NotificationService) GetNotifications(ctx context.Context, rc *auth.RequestContext, unreadOnly bool, page, pageSize uint) (Page[model.Notification], error) {
	return read(ns.baseService, rc, "Failed to fetch notifications", func() (Page[model.Notification], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		notifications, total, err := ns.repo.Notification.ListForUser(ctx, nil, rc.ActorID, unreadOnly, page, pageSize)
		if err != nil {
			return Page[model.Notification]{}, err
		}
		return newPage(notifications, total, page, pageSize), nil
	})
}

func (ns NotificationService) CountUnreadNotifications(ctx context.Context, rc *auth.RequestContext) (int64, error) {
	return read(ns.baseService, rc, "Failed to count notifications", func() (int64, error) {
		return ns.repo.Notification.CountUnread(ctx, nil, rc.ActorID)
	})
}

// Another user's notification is reported as not found
func (ns NotificationService) MarkNotificationRead(ctx context.Context, rc *auth.RequestContext, notificationId string) (string, error) {
	return runMutation(ctx, ns.baseService, rc, mutation[string]{
		entityType: constant.EntityTypeNotification,
		action:     constant.AuditActionUpdate,
		changes:    map[string]any{"isRead": true},
		persist: func(ctx context.Context, tx *gorm.DB) (string, error) {
			return notificationId, ns.repo.Notification.MarkRead(ctx, tx, notificationId, rc.ActorID)
		},
		entityID:    func(id string) string { return id },
		paths:       notificationPaths,
		failMessage: "Failed to mark notification as read",
	})
}

func (ns NotificationService) MarkAllNotificationsRead(ctx context.Context, rc *auth.RequestContext) (MarkAllReadResult, error) {
	return runMutation(ctx, ns.baseService, rc, mutation[MarkAllReadResult]{
		entityType: constant.EntityTypeNotification,
		action:     constant.AuditActionUpdate,
		changes:    map[string]any{"isRead": true},
		persist: func(ctx context.Context, tx *gorm.DB) (MarkAllReadResult, error) {
			updated, err := ns.repo.Notification.MarkAllRead(ctx, tx, rc.ActorID)
			return MarkAllReadResult{UserID: rc.ActorID, Updated: updated}, err
		},
		entityID:    func(r MarkAllReadResult) string { return r.UserID },
		metadata:    func(r MarkAllReadResult) any { return map[string]any{"count": r.Updated} },
		paths:       notificationPaths,
		failMessage: "Failed to mark notifications as read",
	})
}
