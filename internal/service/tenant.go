package service

import (
	"context"
	"fmt"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"gorm.io/gorm"
)

type TenantService struct {
	*baseService
}

type TenantInput struct {
	FirstName        string                `json:"firstName" form:"firstName" validate:"strNotEmpty,cmax=50"`
	LastName         string                `json:"lastName" form:"lastName" validate:"strNotEmpty,cmax=50"`
	Email            string                `json:"email" form:"email" validate:"required,email"`
	Phone            string                `json:"phone" form:"phone" validate:"cmax=30"`
	Company          string                `json:"company" form:"company" validate:"cmax=150"`
	Status           constant.TenantStatus `json:"status" form:"status" validate:"required,oneof=ACTIVE INACTIVE PENDING"`
	EmergencyContact string                `json:"emergencyContact" form:"emergencyContact"`
	Notes            string                `json:"notes" form:"notes"`
}

func (in TenantInput) toModel() *model.Tenant {
	return &model.Tenant{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Phone:            in.Phone,
		Company:          in.Company,
		Status:           in.Status,
		EmergencyContact: in.EmergencyContact,
		Notes:            in.Notes,
	}
}

type BulkDeleteInput struct {
	IDs []string `json:"ids" form:"ids" validate:"required,min=1,dive,required"`
}

type BulkDeleteResult struct {
	IDs     []string `json:"ids"`
	Deleted int64    `json:"deleted"`
}

// Tenant detail embeds leases
var tenantPaths = []string{apiPath("tenants"), apiPath("leases")}

func tenantName(t *model.Tenant) string {
	return t.FirstName + " " + t.LastName
}

func (ts TenantService) CreateTenant(ctx context.Context, rc *auth.RequestContext, in TenantInput) (*model.Tenant, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Tenant]{
		entityType: constant.EntityTypeTenant,
		action:     constant.AuditActionCreate,
		input:      in,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Tenant, error) {
			return ts.repo.Tenant.Create(ctx, tx, in.toModel())
		},
		entityID: func(t *model.Tenant) string { return t.ID },
		recipients: func(ctx context.Context, t *model.Tenant) ([]notificationDraft, error) {
			return ts.broadcast(ctx, notificationDraft{
				Title:     "New tenant added",
				Message:   fmt.Sprintf("%s was added as a tenant", tenantName(t)),
				Type:      constant.NotificationTypeTenant,
				Priority:  constant.NotificationPriorityMedium,
				ActionURL: actionURL("tenants", t.ID),
			})
		},
		paths:       tenantPaths,
		failMessage: "Failed to create tenant",
	})
}

func (ts TenantService) UpdateTenant(ctx context.Context, rc *auth.RequestContext, tenantId string, in TenantInput) (*model.Tenant, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Tenant]{
		entityType:    constant.EntityTypeTenant,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Tenant, error) {
			if err := ts.repo.Tenant.Update(ctx, tx, tenantId, map[string]any{
				"first_name":        in.FirstName,
				"last_name":         in.LastName,
				"email":             in.Email,
				"phone":             in.Phone,
				"company":           in.Company,
				"status":            in.Status,
				"emergency_contact": in.EmergencyContact,
				"notes":             in.Notes,
			}); err != nil {
				return nil, err
			}
			return ts.repo.Tenant.GetById(ctx, tx, tenantId)
		},
		entityID: func(t *model.Tenant) string { return t.ID },
		recipients: func(ctx context.Context, t *model.Tenant) ([]notificationDraft, error) {
			return ts.broadcast(ctx, notificationDraft{
				Title:     "Tenant updated",
				Message:   fmt.Sprintf("Details of %s were updated", tenantName(t)),
				Type:      constant.NotificationTypeTenant,
				Priority:  constant.NotificationPriorityLow,
				ActionURL: actionURL("tenants", t.ID),
			})
		},
		paths:       tenantPaths,
		failMessage: "Failed to update tenant",
	})
}

func (ts TenantService) DeleteTenant(ctx context.Context, rc *auth.RequestContext, tenantId string) (*model.Tenant, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Tenant]{
		entityType:    constant.EntityTypeTenant,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Tenant, error) {
			tenant, err := ts.repo.Tenant.GetById(ctx, tx, tenantId)
			if err != nil {
				return nil, err
			}
			return tenant, ts.repo.Tenant.Delete(ctx, tx, tenantId)
		},
		entityID: func(t *model.Tenant) string { return t.ID },
		metadata: func(t *model.Tenant) any { return map[string]any{"email": t.Email} },
		recipients: func(ctx context.Context, t *model.Tenant) ([]notificationDraft, error) {
			return ts.broadcast(ctx, notificationDraft{
				Title:     "Tenant removed",
				Message:   fmt.Sprintf("%s was removed", tenantName(t)),
				Type:      constant.NotificationTypeTenant,
				Priority:  constant.NotificationPriorityMedium,
				ActionURL: actionURL("tenants"),
			})
		},
		paths:       tenantPaths,
		failMessage: "Failed to delete tenant",
	})
}

// Deletes every listed tenant or none. The audit row carries the ids as metadata.
func (ts TenantService) BulkDeleteTenants(ctx context.Context, rc *auth.RequestContext, in BulkDeleteInput) (BulkDeleteResult, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[BulkDeleteResult]{
		entityType:    constant.EntityTypeTenant,
		action:        constant.AuditActionDelete,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (BulkDeleteResult, error) {
			deleted, err := ts.repo.Tenant.DeleteMany(ctx, tx, in.IDs)
			if err != nil {
				return BulkDeleteResult{}, err
			}
			if deleted != int64(len(in.IDs)) {
				return BulkDeleteResult{}, fmt.Errorf("deleted %d of %d tenants: %w", deleted, len(in.IDs), ErrNotFound)
			}
			return BulkDeleteResult{IDs: in.IDs, Deleted: deleted}, nil
		},
		entityID: func(r BulkDeleteResult) string { return r.IDs[0] },
		metadata: func(r BulkDeleteResult) any { return map[string]any{"ids": r.IDs, "count": r.Deleted} },
		recipients: func(ctx context.Context, r BulkDeleteResult) ([]notificationDraft, error) {
			return ts.broadcast(ctx, notificationDraft{
				Title:     "Tenants removed",
				Message:   fmt.Sprintf("%d tenants were removed", r.Deleted),
				Type:      constant.NotificationTypeTenant,
				Priority:  constant.NotificationPriorityMedium,
				ActionURL: actionURL("tenants"),
			})
		},
		paths:       tenantPaths,
		failMessage: "Failed to delete tenants",
	})
}

type TenantFilter struct {
	Search string                  `form:"search"`
	Status []constant.TenantStatus `form:"status"`
}

func (ts TenantService) GetTenants(ctx context.Context, rc *auth.RequestContext, filter TenantFilter, page, pageSize uint) (Page[model.Tenant], error) {
	return read(ts.baseService, rc, "Failed to fetch tenants", func() (Page[model.Tenant], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		tenants, total, err := ts.repo.Tenant.List(ctx, nil, filter.Search, filter.Status, page, pageSize)
		if err != nil {
			return Page[model.Tenant]{}, err
		}
		return newPage(tenants, total, page, pageSize), nil
	})
}

func (ts TenantService) GetTenantByID(ctx context.Context, rc *auth.RequestContext, tenantId string) (*model.Tenant, error) {
	return read(ts.baseService, rc, "Failed to fetch tenant", func() (*model.Tenant, error) {
		return ts.repo.Tenant.GetById(ctx, nil, tenantId)
	})
}
