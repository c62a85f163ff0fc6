package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	*baseRepository
}

type MaintenanceFilter struct {
	PropertyID string
	Status     []constant.MaintenanceStatus
	Priority   []constant.MaintenancePriority
}

func (mr MaintenanceRepository) Create(ctx context.Context, tx *gorm.DB, request *model.MaintenanceRequest) (*model.MaintenanceRequest, error) {
	mr.logger.Debugf("Create maintenance request with data: %v \n", request)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(request).Error; err != nil {
		return nil, err
	}

	return request, nil
}

func (mr MaintenanceRepository) GetById(ctx context.Context, tx *gorm.DB, requestId string) (*model.MaintenanceRequest, error) {
	mr.logger.Debugf("Get maintenance request by id: %s \n", requestId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var request model.MaintenanceRequest
	if err := db.WithContext(ctx).Model(&model.MaintenanceRequest{}).
		Preload("Property").
		Preload("Unit").
		Preload("Tenant").
		Where("id = ?", requestId).
		First(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

func (mr MaintenanceRepository) Update(ctx context.Context, tx *gorm.DB, requestId string, values map[string]any) error {
	mr.logger.Debugf("Update maintenance request %s with values: %v \n", requestId, values)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.MaintenanceRequest{}, requestId, values)
}

func (mr MaintenanceRepository) Delete(ctx context.Context, tx *gorm.DB, requestId string) error {
	mr.logger.Debugf("Delete maintenance request by id: %s \n", requestId)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.MaintenanceRequest{}, requestId)
}

func (mr MaintenanceRepository) List(ctx context.Context, tx *gorm.DB, filter MaintenanceFilter, page, pageSize uint) ([]model.MaintenanceRequest, int64, error) {
	mr.logger.Debugf("List maintenance requests with filter: %+v, page: %d, pageSize: %d \n", filter, page, pageSize)

	db := mr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.MaintenanceRequest{})
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if len(filter.Status) > 0 {
		query = query.Where("status IN ?", filter.Status)
	}
	if len(filter.Priority) > 0 {
		query = query.Where("priority IN ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var requests []model.MaintenanceRequest
	if err := query.Preload("Property").Preload("Unit").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
