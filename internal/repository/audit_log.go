package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

// Audit logs have no update or delete path
type AuditLogRepository struct {
	*baseRepository
}

type AuditLogFilter struct {
	EntityType constant.EntityType
	EntityID   string
	UserID     string
}

func (ar AuditLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.AuditLog) (*model.AuditLog, error) {
	ar.logger.Debugf("Create audit log with data: %v \n", log)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}

	return log, nil
}

func (ar AuditLogRepository) List(ctx context.Context, tx *gorm.DB, filter AuditLogFilter, page, pageSize uint) ([]model.AuditLog, int64, error) {
	ar.logger.Debugf("List audit logs with filter: %+v, page: %d, pageSize: %d \n", filter, page, pageSize)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.AuditLog{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var logs []model.AuditLog
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
