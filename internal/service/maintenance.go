package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/util"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	*baseService
}

type MaintenanceInput struct {
	PropertyID   string                       `json:"propertyId" form:"propertyId" validate:"required"`
	UnitID       *string                      `json:"unitId" form:"unitId"`
	TenantID     *string                      `json:"tenantId" form:"tenantId"`
	Title        string                       `json:"title" form:"title" validate:"strNotEmpty,cmax=150"`
	Description  string                       `json:"description" form:"description"`
	Priority     constant.MaintenancePriority `json:"priority" form:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	AssignedToID *string                      `json:"assignedToId" form:"assignedToId"`
}

type MaintenanceStatusInput struct {
	Status constant.MaintenanceStatus `json:"status" form:"status" validate:"required,oneof=OPEN IN_PROGRESS COMPLETED CANCELLED"`
}

var maintenancePaths = []string{apiPath("maintenance-requests")}

// Request priorities map one to one onto notification priorities
func notificationPriority(p constant.MaintenancePriority) constant.NotificationPriority {
	return constant.NotificationPriority(p)
}

func (ms MaintenanceService) maintenanceDraft(title, message string, m *model.MaintenanceRequest) notificationDraft {
	return notificationDraft{
		Title:     title,
		Message:   message,
		Type:      constant.NotificationTypeMaintenance,
		Priority:  notificationPriority(m.Priority),
		ActionURL: actionURL("maintenance", m.ID),
	}
}

func (ms MaintenanceService) CreateMaintenanceRequest(ctx context.Context, rc *auth.RequestContext, in MaintenanceInput) (*model.MaintenanceRequest, error) {
	return runMutation(ctx, ms.baseService, rc, mutation[*model.MaintenanceRequest]{
		entityType:    constant.EntityTypeMaintenance,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.MaintenanceRequest, error) {
			if _, err := ms.repo.Property.GetById(ctx, tx, in.PropertyID); err != nil {
				return nil, err
			}

			ticket, err := util.GenerateTicketNumber()
			if err != nil {
				return nil, err
			}

			request, err := ms.repo.Maintenance.Create(ctx, tx, &model.MaintenanceRequest{
				TicketNumber: ticket,
				PropertyID:   in.PropertyID,
				UnitID:       in.UnitID,
				TenantID:     in.TenantID,
				Title:        in.Title,
				Description:  in.Description,
				Priority:     in.Priority,
				Status:       constant.MaintenanceStatusOpen,
				AssignedToID: in.AssignedToID,
			})
			if err != nil {
				return nil, err
			}
			return ms.repo.Maintenance.GetById(ctx, tx, request.ID)
		},
		entityID: func(m *model.MaintenanceRequest) string { return m.ID },
		metadata: func(m *model.MaintenanceRequest) any { return map[string]any{"ticketNumber": m.TicketNumber} },
		recipients: func(ctx context.Context, m *model.MaintenanceRequest) ([]notificationDraft, error) {
			return ms.broadcast(ctx, ms.maintenanceDraft(
				"New maintenance request",
				fmt.Sprintf("%s: %s", m.TicketNumber, m.Title),
				m,
			))
		},
		paths:       maintenancePaths,
		failMessage: "Failed to create maintenance request",
	})
}

func (ms MaintenanceService) UpdateMaintenanceRequest(ctx context.Context, rc *auth.RequestContext, requestId string, in MaintenanceInput) (*model.MaintenanceRequest, error) {
	return runMutation(ctx, ms.baseService, rc, mutation[*model.MaintenanceRequest]{
		entityType:    constant.EntityTypeMaintenance,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.MaintenanceRequest, error) {
			if err := ms.repo.Maintenance.Update(ctx, tx, requestId, map[string]any{
				"property_id":    in.PropertyID,
				"unit_id":        in.UnitID,
				"tenant_id":      in.TenantID,
				"title":          in.Title,
				"description":    in.Description,
				"priority":       in.Priority,
				"assigned_to_id": in.AssignedToID,
			}); err != nil {
				return nil, err
			}
			return ms.repo.Maintenance.GetById(ctx, tx, requestId)
		},
		entityID:    func(m *model.MaintenanceRequest) string { return m.ID },
		paths:       maintenancePaths,
		failMessage: "Failed to update maintenance request",
	})
}

// CompletedAt is set on COMPLETED and cleared for every other status
func (ms MaintenanceService) UpdateMaintenanceStatus(ctx context.Context, rc *auth.RequestContext, requestId string, in MaintenanceStatusInput) (*model.MaintenanceRequest, error) {
	return runMutation(ctx, ms.baseService, rc, mutation[*model.MaintenanceRequest]{
		entityType:    constant.EntityTypeMaintenance,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.MaintenanceRequest, error) {
			values := map[string]any{"status": in.Status, "completed_at": nil}
			if in.Status == constant.MaintenanceStatusCompleted {
				values["completed_at"] = time.Now()
			}
			if err := ms.repo.Maintenance.Update(ctx, tx, requestId, values); err != nil {
				return nil, err
			}
			return ms.repo.Maintenance.GetById(ctx, tx, requestId)
		},
		entityID: func(m *model.MaintenanceRequest) string { return m.ID },
		recipients: func(ctx context.Context, m *model.MaintenanceRequest) ([]notificationDraft, error) {
			return ms.broadcast(ctx, ms.maintenanceDraft(
				"Maintenance request updated",
				fmt.Sprintf("%s is now %s", m.TicketNumber, m.Status),
				m,
			))
		},
		paths:       maintenancePaths,
		failMessage: "Failed to update maintenance status",
	})
}

func (ms MaintenanceService) DeleteMaintenanceRequest(ctx context.Context, rc *auth.RequestContext, requestId string) (*model.MaintenanceRequest, error) {
	return runMutation(ctx, ms.baseService, rc, mutation[*model.MaintenanceRequest]{
		entityType:    constant.EntityTypeMaintenance,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.MaintenanceRequest, error) {
			request, err := ms.repo.Maintenance.GetById(ctx, tx, requestId)
			if err != nil {
				return nil, err
			}
			return request, ms.repo.Maintenance.Delete(ctx, tx, requestId)
		},
		entityID:    func(m *model.MaintenanceRequest) string { return m.ID },
		metadata:    func(m *model.MaintenanceRequest) any { return map[string]any{"ticketNumber": m.TicketNumber} },
		paths:       maintenancePaths,
		failMessage: "Failed to delete maintenance request",
	})
}

type MaintenanceFilter struct {
	PropertyID string                         `form:"propertyId"`
	Status     []constant.MaintenanceStatus   `form:"status"`
	Priority   []constant.MaintenancePriority `form:"priority"`
}

func (ms MaintenanceService) GetMaintenanceRequests(ctx context.Context, rc *auth.RequestContext, filter MaintenanceFilter, page, pageSize uint) (Page[model.MaintenanceRequest], error) {
	return read(ms.baseService, rc, "Failed to fetch maintenance requests", func() (Page[model.MaintenanceRequest], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		requests, total, err := ms.repo.Maintenance.List(ctx, nil, repository.MaintenanceFilter{
			PropertyID: filter.PropertyID,
			Status:     filter.Status,
			Priority:   filter.Priority,
		}, page, pageSize)
		if err != nil {
			return Page[model.MaintenanceRequest]{}, err
		}
		return newPage(requests, total, page, pageSize), nil
	})
}

func (ms MaintenanceService) GetMaintenanceRequestByID(ctx context.Context, rc *auth.RequestContext, requestId string) (*model.MaintenanceRequest, error) {
	return read(ms.baseService, rc, "Failed to fetch maintenance request", func() (*model.MaintenanceRequest, error) {
		return ms.repo.Maintenance.GetById(ctx, nil, requestId)
	})
}
