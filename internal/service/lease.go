package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LeaseService struct {
	*baseService
}

type LeaseInput struct {
	UnitID          string               `json:"unitId" form:"unitId" validate:"required"`
	TenantID        string               `json:"tenantId" form:"tenantId" validate:"required"`
	StartDate       time.Time            `json:"startDate" form:"startDate" validate:"required"`
	EndDate         time.Time            `json:"endDate" form:"endDate" validate:"required,gtfield=StartDate"`
	MonthlyRent     decimal.Decimal      `json:"monthlyRent" form:"monthlyRent" validate:"gt=0"`
	SecurityDeposit decimal.Decimal      `json:"securityDeposit" form:"securityDeposit" validate:"gte=0"`
	Status          constant.LeaseStatus `json:"status" form:"status" validate:"required,oneof=DRAFT ACTIVE EXPIRED TERMINATED"`
}

type LeaseStatusInput struct {
	Status constant.LeaseStatus `json:"status" form:"status" validate:"required,oneof=DRAFT ACTIVE EXPIRED TERMINATED"`
}

type PaymentInput struct {
	Amount    decimal.Decimal        `json:"amount" form:"amount" validate:"gt=0"`
	Status    constant.PaymentStatus `json:"status" form:"status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
	Method    string                 `json:"method" form:"method" validate:"cmax=50"`
	Reference string                 `json:"reference" form:"reference"`
	PaidAt    *time.Time             `json:"paidAt" form:"paidAt"`
}

type PaymentStatusInput struct {
	Status constant.PaymentStatus `json:"status" form:"status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

// Lease changes show up on tenant and unit detail pages as well
var leasePaths = []string{apiPath("leases"), apiPath("tenants"), apiPath("properties")}

func leaseLabel(l *model.Lease) string {
	label := "Lease"
	if l.Unit != nil {
		label = fmt.Sprintf("Lease for unit %s", l.Unit.UnitNumber)
	}
	if l.Tenant != nil {
		label = fmt.Sprintf("%s (%s %s)", label, l.Tenant.FirstName, l.Tenant.LastName)
	}
	return label
}

func (ls LeaseService) leaseDraft(title, message string, priority constant.NotificationPriority, leaseId string) notificationDraft {
	return notificationDraft{
		Title:     title,
		Message:   message,
		Type:      constant.NotificationTypeLease,
		Priority:  priority,
		ActionURL: actionURL("leases", leaseId),
	}
}

func (ls LeaseService) CreateLease(ctx context.Context, rc *auth.RequestContext, in LeaseInput) (*model.Lease, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Lease]{
		entityType:    constant.EntityTypeLease,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Lease, error) {
			if _, err := ls.repo.Unit.GetById(ctx, tx, in.UnitID); err != nil {
				return nil, err
			}
			if _, err := ls.repo.Tenant.GetById(ctx, tx, in.TenantID); err != nil {
				return nil, err
			}

			lease, err := ls.repo.Lease.Create(ctx, tx, &model.Lease{
				UnitID:          in.UnitID,
				TenantID:        in.TenantID,
				StartDate:       in.StartDate,
				EndDate:         in.EndDate,
				MonthlyRent:     in.MonthlyRent,
				SecurityDeposit: in.SecurityDeposit,
				Status:          in.Status,
			})
			if err != nil {
				return nil, err
			}
			return ls.repo.Lease.GetById(ctx, tx, lease.ID)
		},
		entityID: func(l *model.Lease) string { return l.ID },
		recipients: func(ctx context.Context, l *model.Lease) ([]notificationDraft, error) {
			return ls.broadcast(ctx, ls.leaseDraft(
				"New lease created",
				fmt.Sprintf("%s was created", leaseLabel(l)),
				constant.NotificationPriorityMedium,
				l.ID,
			))
		},
		paths:       leasePaths,
		failMessage: "Failed to create lease",
	})
}

func (ls LeaseService) UpdateLease(ctx context.Context, rc *auth.RequestContext, leaseId string, in LeaseInput) (*model.Lease, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Lease]{
		entityType:    constant.EntityTypeLease,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Lease, error) {
			if err := ls.repo.Lease.Update(ctx, tx, leaseId, map[string]any{
				"unit_id":          in.UnitID,
				"tenant_id":        in.TenantID,
				"start_date":       in.StartDate,
				"end_date":         in.EndDate,
				"monthly_rent":     in.MonthlyRent,
				"security_deposit": in.SecurityDeposit,
				"status":           in.Status,
			}); err != nil {
				return nil, err
			}
			return ls.repo.Lease.GetById(ctx, tx, leaseId)
		},
		entityID:    func(l *model.Lease) string { return l.ID },
		paths:       leasePaths,
		failMessage: "Failed to update lease",
	})
}

// Any status may follow any other; the unit status is left untouched
func (ls LeaseService) UpdateLeaseStatus(ctx context.Context, rc *auth.RequestContext, leaseId string, in LeaseStatusInput) (*model.Lease, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Lease]{
		entityType:    constant.EntityTypeLease,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Lease, error) {
			if err := ls.repo.Lease.Update(ctx, tx, leaseId, map[string]any{"status": in.Status}); err != nil {
				return nil, err
			}
			return ls.repo.Lease.GetById(ctx, tx, leaseId)
		},
		entityID: func(l *model.Lease) string { return l.ID },
		recipients: func(ctx context.Context, l *model.Lease) ([]notificationDraft, error) {
			priority := constant.NotificationPriorityMedium
			if l.Status == constant.LeaseStatusTerminated {
				priority = constant.NotificationPriorityHigh
			}
			return ls.broadcast(ctx, ls.leaseDraft(
				"Lease status changed",
				fmt.Sprintf("%s is now %s", leaseLabel(l), l.Status),
				priority,
				l.ID,
			))
		},
		paths:       leasePaths,
		failMessage: "Failed to update lease status",
	})
}

func (ls LeaseService) DeleteLease(ctx context.Context, rc *auth.RequestContext, leaseId string) (*model.Lease, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Lease]{
		entityType:    constant.EntityTypeLease,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Lease, error) {
			lease, err := ls.repo.Lease.GetById(ctx, tx, leaseId)
			if err != nil {
				return nil, err
			}
			return lease, ls.repo.Lease.Delete(ctx, tx, leaseId)
		},
		entityID: func(l *model.Lease) string { return l.ID },
		recipients: func(ctx context.Context, l *model.Lease) ([]notificationDraft, error) {
			return ls.broadcast(ctx, ls.leaseDraft(
				"Lease deleted",
				fmt.Sprintf("%s was deleted", leaseLabel(l)),
				constant.NotificationPriorityMedium,
				l.ID,
			))
		},
		paths:       leasePaths,
		failMessage: "Failed to delete lease",
	})
}

type LeaseFilter struct {
	Status []constant.LeaseStatus `form:"status"`
}

func (ls LeaseService) GetLeases(ctx context.Context, rc *auth.RequestContext, filter LeaseFilter, page, pageSize uint) (Page[model.Lease], error) {
	return read(ls.baseService, rc, "Failed to fetch leases", func() (Page[model.Lease], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		leases, total, err := ls.repo.Lease.List(ctx, nil, filter.Status, page, pageSize)
		if err != nil {
			return Page[model.Lease]{}, err
		}
		return newPage(leases, total, page, pageSize), nil
	})
}

func (ls LeaseService) GetLeaseByID(ctx context.Context, rc *auth.RequestContext, leaseId string) (*model.Lease, error) {
	return read(ls.baseService, rc, "Failed to fetch lease", func() (*model.Lease, error) {
		return ls.repo.Lease.GetById(ctx, nil, leaseId)
	})
}

// A completed payment without PaidAt is stamped with the current time
func (ls LeaseService) RecordPayment(ctx context.Context, rc *auth.RequestContext, leaseId string, in PaymentInput) (*model.Payment, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Payment]{
		entityType:    constant.EntityTypePayment,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Payment, error) {
			if _, err := ls.repo.Lease.GetById(ctx, tx, leaseId); err != nil {
				return nil, err
			}

			paidAt := in.PaidAt
			if paidAt == nil && in.Status == constant.PaymentStatusCompleted {
				now := time.Now()
				paidAt = &now
			}

			return ls.repo.Payment.Create(ctx, tx, &model.Payment{
				LeaseID:   leaseId,
				Amount:    in.Amount,
				Status:    in.Status,
				Method:    in.Method,
				Reference: in.Reference,
				PaidAt:    paidAt,
			})
		},
		entityID: func(p *model.Payment) string { return p.ID },
		metadata: func(p *model.Payment) any { return map[string]any{"leaseId": p.LeaseID} },
		recipients: func(ctx context.Context, p *model.Payment) ([]notificationDraft, error) {
			return ls.broadcast(ctx, notificationDraft{
				Title:     "Payment recorded",
				Message:   fmt.Sprintf("A payment of %s was recorded (%s)", p.Amount.StringFixed(2), p.Status),
				Type:      constant.NotificationTypePayment,
				Priority:  constant.NotificationPriorityMedium,
				ActionURL: actionURL("leases", p.LeaseID),
			})
		},
		paths:       []string{apiPath("leases")},
		failMessage: "Failed to record payment",
	})
}

func (ls LeaseService) UpdatePaymentStatus(ctx context.Context, rc *auth.RequestContext, paymentId string, in PaymentStatusInput) (*model.Payment, error) {
	return runMutation(ctx, ls.baseService, rc, mutation[*model.Payment]{
		entityType:    constant.EntityTypePayment,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Payment, error) {
			payment, err := ls.repo.Payment.GetById(ctx, tx, paymentId)
			if err != nil {
				return nil, err
			}

			values := map[string]any{"status": in.Status}
			if in.Status == constant.PaymentStatusCompleted && payment.PaidAt == nil {
				values["paid_at"] = time.Now()
			}
			if err := ls.repo.Payment.Update(ctx, tx, paymentId, values); err != nil {
				return nil, err
			}
			return ls.repo.Payment.GetById(ctx, tx, paymentId)
		},
		entityID:    func(p *model.Payment) string { return p.ID },
		paths:       []string{apiPath("leases")},
		failMessage: "Failed to update payment status",
	})
}

func (ls LeaseService) GetPaymentsByLease(ctx context.Context, rc *auth.RequestContext, leaseId string) ([]model.Payment, error) {
	return read(ls.baseService, rc, "Failed to fetch payments", func() ([]model.Payment, error) {
		return ls.repo.Payment.ListByLease(ctx, nil, leaseId)
	})
}
