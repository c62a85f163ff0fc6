package service

import (
	"context"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsAreScopedToTheCaller(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	f.createTenant(t, "a@example.com")
	f.createTenant(t, "b@example.com")

	page, err := f.svc.Notification.GetNotifications(ctx, f.as(0), false, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, n := range page.Items {
		assert.Equal(t, f.users[0].ID, n.UserID)
	}

	unread, err := f.svc.Notification.CountUnreadNotifications(ctx, f.as(0))
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	t.Run("another user's notification is not found", func(t *testing.T) {
		_, err := f.svc.Notification.MarkNotificationRead(ctx, f.as(1), page.Items[0].ID)
		requireActionError(t, err, "Failed to mark notification as read")
		assert.ErrorIs(t, err, ErrNotFound)

		var n model.Notification
		require.NoError(t, f.db.First(&n, "id = ?", page.Items[0].ID).Error)
		assert.False(t, n.IsRead)
	})

	t.Run("owner marks one read", func(t *testing.T) {
		id, err := f.svc.Notification.MarkNotificationRead(ctx, f.as(0), page.Items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, page.Items[0].ID, id)

		unreadOnly, err := f.svc.Notification.GetNotifications(ctx, f.as(0), true, 1, 10)
		require.NoError(t, err)
		require.Len(t, unreadOnly.Items, 1)
		assert.Equal(t, page.Items[1].ID, unreadOnly.Items[0].ID)

		assert.EqualValues(t, 1, f.count(t, &model.AuditLog{}, "entity_type = ? AND entity_id = ?", constant.EntityTypeNotification, id))
	})

	t.Run("mark all read", func(t *testing.T) {
		result, err := f.svc.Notification.MarkAllNotificationsRead(ctx, f.as(1))
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Updated)

		unread, err := f.svc.Notification.CountUnreadNotifications(ctx, f.as(1))
		require.NoError(t, err)
		assert.Zero(t, unread)

		// Other users keep their unread state
		unread, err = f.svc.Notification.CountUnreadNotifications(ctx, f.as(0))
		require.NoError(t, err)
		assert.EqualValues(t, 1, unread)
	})
}

func TestGetAuditLogsFilters(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	property := f.createProperty(t, "Riverside Tower")
	tenant := f.createTenant(t, "a@example.com")
	_, err := f.svc.Tenant.UpdateTenant(ctx, f.as(1), tenant.ID, validTenant("a@example.com"))
	require.NoError(t, err)

	all, err := f.svc.AuditLog.GetAuditLogs(ctx, f.as(0), AuditLogFilter{}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)

	byEntity, err := f.svc.AuditLog.GetAuditLogs(ctx, f.as(0), AuditLogFilter{EntityType: constant.EntityTypeTenant, EntityID: tenant.ID}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byEntity.Total)

	byUser, err := f.svc.AuditLog.GetAuditLogs(ctx, f.as(0), AuditLogFilter{UserID: f.users[1].ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byUser.Items, 1)
	assert.Equal(t, constant.AuditActionUpdate, byUser.Items[0].Action)

	byProperty, err := f.svc.AuditLog.GetAuditLogs(ctx, f.as(0), AuditLogFilter{EntityID: property.ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byProperty.Items, 1)
	assert.Equal(t, constant.EntityTypeProperty, byProperty.Items[0].EntityType)
}
