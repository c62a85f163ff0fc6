package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRoundTrip(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	in := TenantInput{
		FirstName:        "Sreyneang",
		LastName:         "Kim",
		Email:            "sreyneang@example.com",
		Phone:            "+855 12 345 678",
		Company:          "Mekong Trading",
		Status:           constant.TenantStatusPending,
		EmergencyContact: "Vanna Kim",
		Notes:            "Prefers email",
	}

	created, err := f.svc.Tenant.CreateTenant(ctx, f.as(0), in)
	require.NoError(t, err)

	got, err := f.svc.Tenant.GetTenantByID(ctx, f.as(0), created.ID)
	require.NoError(t, err)

	assert.Equal(t, in.FirstName, got.FirstName)
	assert.Equal(t, in.LastName, got.LastName)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Phone, got.Phone)
	assert.Equal(t, in.Company, got.Company)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.EmergencyContact, got.EmergencyContact)
	assert.Equal(t, in.Notes, got.Notes)
	assert.Empty(t, got.Leases)
}

func TestGetTenantsFilters(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	f.createTenant(t, "alpha@example.com")
	pending := validTenant("beta@example.com")
	pending.Status = constant.TenantStatusPending
	_, err := f.svc.Tenant.CreateTenant(ctx, f.as(0), pending)
	require.NoError(t, err)

	page, err := f.svc.Tenant.GetTenants(ctx, f.as(0), TenantFilter{Status: []constant.TenantStatus{constant.TenantStatusPending}}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "beta@example.com", page.Items[0].Email)

	page, err = f.svc.Tenant.GetTenants(ctx, f.as(0), TenantFilter{Search: "alpha"}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = f.svc.Tenant.GetTenants(ctx, f.as(0), TenantFilter{}, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 2, page.TotalPage)
	assert.Len(t, page.Items, 1)
}

func TestCreateTenantDuplicateEmail(t *testing.T) {
	f := newFixture(t, 2)

	f.createTenant(t, "dara@example.com")
	_, err := f.svc.Tenant.CreateTenant(context.Background(), f.as(0), validTenant("dara@example.com"))
	requireActionError(t, err, "Failed to create tenant")

	assert.EqualValues(t, 1, f.count(t, &model.Tenant{}))
	assert.EqualValues(t, 1, f.count(t, &model.AuditLog{}))
	assert.EqualValues(t, 2, f.count(t, &model.Notification{}))
}

func TestBulkDeleteTenants(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	a := f.createTenant(t, "a@example.com")
	b := f.createTenant(t, "b@example.com")
	c := f.createTenant(t, "c@example.com")

	t.Run("unknown id deletes nothing", func(t *testing.T) {
		_, err := f.svc.Tenant.BulkDeleteTenants(ctx, f.as(0), BulkDeleteInput{IDs: []string{a.ID, "missing"}})
		requireActionError(t, err, "Failed to delete tenants")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualValues(t, 3, f.count(t, &model.Tenant{}))
	})

	t.Run("empty list is invalid", func(t *testing.T) {
		_, err := f.svc.Tenant.BulkDeleteTenants(ctx, f.as(0), BulkDeleteInput{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("deletes every listed tenant", func(t *testing.T) {
		result, err := f.svc.Tenant.BulkDeleteTenants(ctx, f.as(0), BulkDeleteInput{IDs: []string{a.ID, b.ID}})
		require.NoError(t, err)
		assert.EqualValues(t, 2, result.Deleted)

		var remaining []model.Tenant
		require.NoError(t, f.db.Find(&remaining).Error)
		require.Len(t, remaining, 1)
		assert.Equal(t, c.ID, remaining[0].ID)

		var log model.AuditLog
		require.NoError(t, f.db.First(&log, "entity_type = ? AND action = ?", constant.EntityTypeTenant, constant.AuditActionDelete).Error)

		var metadata struct {
			IDs   []string `json:"ids"`
			Count int      `json:"count"`
		}
		require.NoError(t, json.Unmarshal(log.Metadata, &metadata))
		assert.ElementsMatch(t, []string{a.ID, b.ID}, metadata.IDs)
		assert.Equal(t, 2, metadata.Count)
	})
}

func TestImportTenantsFromCSV(t *testing.T) {
	f := newFixture(t, 3)

	data := "FirstName,LASTNAME,Email,Status,Company\n" +
		"Dara,Sok,dara@example.com,active,\"Sok & Sons, Ltd\"\n" +
		"Malis,Chea,malis@example.com,Pending,\n"

	result, err := f.svc.Tenant.ImportTenantsFromCSV(context.Background(), f.as(0), data)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.NotEmpty(t, result.BatchID)

	var tenants []model.Tenant
	require.NoError(t, f.db.Order("email").Find(&tenants).Error)
	require.Len(t, tenants, 2)
	assert.Equal(t, "Sok & Sons, Ltd", tenants[0].Company)
	assert.Equal(t, constant.TenantStatusActive, tenants[0].Status)
	assert.Equal(t, constant.TenantStatusPending, tenants[1].Status)

	var logs []model.AuditLog
	require.NoError(t, f.db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, result.BatchID, logs[0].EntityID)
	assert.Equal(t, constant.EntityTypeTenant, logs[0].EntityType)
	assert.JSONEq(t, `{"count":2}`, string(logs[0].Metadata))

	// One notification per user for the whole batch
	assert.EqualValues(t, len(f.users), f.count(t, &model.Notification{}))
}

func TestImportTenantsFromCSVRejectsWholeFile(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		contains []string
	}{
		{
			name: "invalid status",
			data: "firstName,lastName,email,status\n" +
				"Dara,Sok,dara@example.com,ACTIVE\n" +
				"Malis,Chea,malis@example.com,bogus\n",
			contains: []string{"Row 3", "bogus", "ACTIVE, INACTIVE, PENDING"},
		},
		{
			name:     "missing column",
			data:     "firstName,lastName,status\nDara,Sok,ACTIVE\n",
			contains: []string{"email"},
		},
		{
			name: "invalid email",
			data: "firstName,lastName,email,status\n" +
				"Dara,Sok,not-an-email,ACTIVE\n",
			contains: []string{"Invalid email"},
		},
		{
			name:     "header only",
			data:     "firstName,lastName,email,status\n",
			contains: []string{"no tenant rows"},
		},
		{
			name:     "empty file",
			data:     "",
			contains: []string{"empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1)

			_, err := f.svc.Tenant.ImportTenantsFromCSV(context.Background(), f.as(0), tt.data)
			require.ErrorIs(t, err, ErrValidation)
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}

			assert.Zero(t, f.count(t, &model.Tenant{}))
			assert.Zero(t, f.count(t, &model.AuditLog{}))
			assert.Zero(t, f.count(t, &model.Notification{}))
		})
	}
}

func TestImportTenantsFromCSVRollsBackOnDuplicate(t *testing.T) {
	f := newFixture(t, 1)

	data := "firstName,lastName,email,status\n" +
		"Dara,Sok,dara@example.com,ACTIVE\n" +
		"Dara,Sok,dara@example.com,ACTIVE\n"

	_, err := f.svc.Tenant.ImportTenantsFromCSV(context.Background(), f.as(0), data)
	requireActionError(t, err, "Failed to import tenants")

	assert.Zero(t, f.count(t, &model.Tenant{}))
	assert.Zero(t, f.count(t, &model.AuditLog{}))
}

func TestParseTenantCSV(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []TenantInput
		wantErr bool
	}{
		{
			name: "optional columns",
			data: "\ufeffEmail, FirstName, LastName, Status, Phone, EmergencyContact, Notes\n" +
				"dara@example.com, Dara, Sok, inactive, 012 345 678, Vanna, \"line one, line two\"\n",
			want: []TenantInput{{
				FirstName:        "Dara",
				LastName:         "Sok",
				Email:            "dara@example.com",
				Phone:            "012 345 678",
				Status:           constant.TenantStatusInactive,
				EmergencyContact: "Vanna",
				Notes:            "line one, line two",
			}},
		},
		{
			name: "short row",
			data: "firstname,lastname,email,status,company\n" +
				"Dara,Sok,dara@example.com,ACTIVE\n",
			want: []TenantInput{{
				FirstName: "Dara",
				LastName:  "Sok",
				Email:     "dara@example.com",
				Status:    constant.TenantStatusActive,
			}},
		},
		{
			name: "bare quotes in an unquoted cell",
			data: "firstName,lastName,email,status,notes\n" +
				"Dara,Sok,dara@example.com,ACTIVE,prefers \"Dara\" as name\n",
			want: []TenantInput{{
				FirstName: "Dara",
				LastName:  "Sok",
				Email:     "dara@example.com",
				Status:    constant.TenantStatusActive,
				Notes:     `prefers "Dara" as name`,
			}},
		},
		{
			name:    "empty status",
			data:    "firstname,lastname,email,status\nDara,Sok,dara@example.com,\n",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			data:    "firstname,lastname,email,status\n\"Dara,Sok,dara@example.com,ACTIVE\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTenantCSV(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				var ve *ValidationError
				assert.True(t, errors.As(err, &ve))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
