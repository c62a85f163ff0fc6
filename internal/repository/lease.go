package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type LeaseRepository struct {
	*baseRepository
}

func (lr LeaseRepository) Create(ctx context.Context, tx *gorm.DB, lease *model.Lease) (*model.Lease, error) {
	lr.logger.Debugf("Create lease with data: %v \n", lease)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(lease).Error; err != nil {
		return nil, err
	}

	return lease, nil
}

func (lr LeaseRepository) GetById(ctx context.Context, tx *gorm.DB, leaseId string) (*model.Lease, error) {
	lr.logger.Debugf("Get lease by id: %s \n", leaseId)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var lease model.Lease
	if err := db.WithContext(ctx).Model(&model.Lease{}).
		Preload("Unit").
		Preload("Unit.Property").
		Preload("Tenant").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Where("id = ?", leaseId).
		First(&lease).Error; err != nil {
		return nil, err
	}

	return &lease, nil
}

func (lr LeaseRepository) Update(ctx context.Context, tx *gorm.DB, leaseId string, values map[string]any) error {
	lr.logger.Debugf("Update lease %s with values: %v \n", leaseId, values)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Lease{}, leaseId, values)
}

func (lr LeaseRepository) Delete(ctx context.Context, tx *gorm.DB, leaseId string) error {
	lr.logger.Debugf("Delete lease by id: %s \n", leaseId)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Lease{}, leaseId)
}

func (lr LeaseRepository) List(ctx context.Context, tx *gorm.DB, status []constant.LeaseStatus, page, pageSize uint) ([]model.Lease, int64, error) {
	lr.logger.Debugf("List leases with status: %v, page: %d, pageSize: %d \n", status, page, pageSize)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Lease{})
	if len(status) > 0 {
		query = query.Where("status IN ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var leases []model.Lease
	if err := query.Preload("Unit").Preload("Tenant").
		Order("start_date desc").
		Offset(offset).
		Limit(limit).
		Find(&leases).Error; err != nil {
		return nil, 0, err
	}

	return leases, total, nil
}
