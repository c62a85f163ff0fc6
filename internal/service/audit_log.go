package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/SeakMengs/PropDesk/internal/util"
)

// Audit rows are only ever read through here, the envelope writes them
type AuditLogService struct {
	*baseService
}

type AuditLogFilter struct {
	EntityType constant.EntityType `form:"entityType"`
	EntityID   string              `form:"entityId"`
	UserID     string              `form:"userId"`
}

func (as AuditLogService) GetAuditLogs(ctx context.Context, rc *auth.RequestContext, filter AuditLogFilter, page, pageSize uint) (Page[model.AuditLog], error) {
	return read(as.baseService, rc, "Failed to fetch audit logs", func() (Page[model.AuditLog], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		logs, total, err := as.repo.AuditLog.List(ctx, nil, repository.AuditLogFilter(filter), page, pageSize)
		if err != nil {
			return Page[model.AuditLog]{}, err
		}
		return newPage(logs, total, page, pageSize), nil
	})
}
