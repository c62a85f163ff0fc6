package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/mailer"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTenant(email string) TenantInput {
	return TenantInput{
		FirstName: "Sokha",
		LastName:  "Chan",
		Email:     email,
		Status:    constant.TenantStatusActive,
	}
}

func TestMutationRejectsUnauthenticatedCaller(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	for name, rc := range map[string]*auth.RequestContext{
		"nil context": nil,
		"no actor":    {IPAddress: "127.0.0.1"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.Tenant.CreateTenant(ctx, rc, validTenant("dara@example.com"))
			require.ErrorIs(t, err, ErrUnauthorized)

			_, err = f.svc.Tenant.GetTenants(ctx, rc, TenantFilter{}, 1, 10)
			require.ErrorIs(t, err, ErrUnauthorized)
		})
	}

	assert.Zero(t, f.count(t, &model.Tenant{}))
	assert.Zero(t, f.count(t, &model.AuditLog{}))
	assert.Zero(t, f.count(t, &model.Notification{}))
}

func TestMutationReturnsValidationErrorsUnchanged(t *testing.T) {
	f := newFixture(t, 1)

	in := validTenant("not-an-email")
	in.FirstName = "   "

	_, err := f.svc.Tenant.CreateTenant(context.Background(), f.as(0), in)
	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	fields := make([]string, len(ve.Fields))
	for i, field := range ve.Fields {
		fields[i] = field.Field
	}
	assert.ElementsMatch(t, []string{"firstName", "email"}, fields)

	assert.Zero(t, f.count(t, &model.Tenant{}))
	assert.Zero(t, f.count(t, &model.AuditLog{}))
}

func TestMutationWritesOneAuditRow(t *testing.T) {
	f := newFixture(t, 1)

	property := f.createProperty(t, "Riverside Tower")

	var logs []model.AuditLog
	require.NoError(t, f.db.Find(&logs).Error)
	require.Len(t, logs, 1)

	log := logs[0]
	assert.Equal(t, property.ID, log.EntityID)
	assert.Equal(t, constant.EntityTypeProperty, log.EntityType)
	assert.Equal(t, constant.AuditActionCreate, log.Action)
	assert.Equal(t, f.users[0].ID, log.UserID)
	assert.Equal(t, "127.0.0.1", log.IPAddress)
	assert.Equal(t, "go-test", log.UserAgent)
	assert.Contains(t, string(log.Changes), "Riverside Tower")
}

func TestPersistenceFailureIsReportedGenerically(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Property.UpdateProperty(context.Background(), f.as(0), "missing-id", PropertyInput{
		Name:         "Ghost",
		Address:      "Nowhere",
		PropertyType: constant.PropertyTypeCommercial,
	})
	requireActionError(t, err, "Failed to update property")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotContains(t, err.Error(), "missing-id")

	assert.Zero(t, f.count(t, &model.AuditLog{}))
}

func TestMutationRevalidatesCachedPaths(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, "/api/v1/tenants?page=1", []byte("stale"), time.Minute))
	require.NoError(t, f.store.Set(ctx, "/api/v1/documents", []byte("fresh"), time.Minute))

	f.createTenant(t, "dara@example.com")

	_, ok, err := f.store.Get(ctx, "/api/v1/tenants?page=1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = f.store.Get(ctx, "/api/v1/documents")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBroadcastNotifiesEveryUser(t *testing.T) {
	f := newFixture(t, 4)

	tenant := f.createTenant(t, "dara@example.com")

	var notifications []model.Notification
	require.NoError(t, f.db.Find(&notifications).Error)
	require.Len(t, notifications, len(f.users))

	recipients := make([]string, len(notifications))
	for i, n := range notifications {
		recipients[i] = n.UserID
		assert.Equal(t, constant.NotificationTypeTenant, n.Type)
		require.NotNil(t, n.EntityID)
		assert.Equal(t, tenant.ID, *n.EntityID)
		assert.False(t, n.IsRead)
	}

	expected := make([]string, len(f.users))
	for i, u := range f.users {
		expected[i] = u.ID
	}
	assert.ElementsMatch(t, expected, recipients)
}

func TestHighPriorityNotificationsAreMailed(t *testing.T) {
	tests := []struct {
		name     string
		priority constant.MaintenancePriority
		mailed   bool
	}{
		{name: "low", priority: constant.MaintenancePriorityLow},
		{name: "medium", priority: constant.MaintenancePriorityMedium},
		{name: "high", priority: constant.MaintenancePriorityHigh, mailed: true},
		{name: "urgent", priority: constant.MaintenancePriorityUrgent, mailed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3)
			property := f.createProperty(t, "Riverside Tower")

			request, err := f.svc.Maintenance.CreateMaintenanceRequest(context.Background(), f.as(0), MaintenanceInput{
				PropertyID: property.ID,
				Title:      "Leaking pipe",
				Priority:   tt.priority,
			})
			require.NoError(t, err)

			if !tt.mailed {
				assert.Zero(t, f.mail.count())
				return
			}

			require.Equal(t, len(f.users), f.mail.count())
			for _, job := range f.mail.jobs {
				assert.Equal(t, mailer.TemplateNotification, job.TemplateFile)
				assert.Empty(t, job.ToEmail)

				var data mailer.NotificationMailData
				require.NoError(t, json.Unmarshal(job.Data, &data))
				assert.Equal(t, string(tt.priority), data.Priority)
				assert.True(t, strings.HasPrefix(data.ActionURL, "http://localhost:3000/maintenance/"))
				assert.Contains(t, data.Message, request.TicketNumber)
			}
		})
	}
}

func TestMailPublishFailureDoesNotFailMutation(t *testing.T) {
	f := newFixture(t, 2)
	f.mail.err = errors.New("broker unavailable")
	property := f.createProperty(t, "Riverside Tower")

	_, err := f.svc.Maintenance.CreateMaintenanceRequest(context.Background(), f.as(0), MaintenanceInput{
		PropertyID: property.ID,
		Title:      "No power",
		Priority:   constant.MaintenancePriorityUrgent,
	})
	require.NoError(t, err)

	assert.Zero(t, f.mail.count())
	assert.EqualValues(t, 2, f.count(t, &model.Notification{}, "type = ?", constant.NotificationTypeMaintenance))
}
