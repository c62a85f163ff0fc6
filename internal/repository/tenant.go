package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type TenantRepository struct {
	*baseRepository
}

func (tr TenantRepository) Create(ctx context.Context, tx *gorm.DB, tenant *model.Tenant) (*model.Tenant, error) {
	tr.logger.Debugf("Create tenant with data: %v \n", tenant)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}

	return tenant, nil
}

// Inserts every tenant in one statement batch; callers wanting all-or-nothing pass a tx.
func (tr TenantRepository) CreateMany(ctx context.Context, tx *gorm.DB, tenants []*model.Tenant) ([]*model.Tenant, error) {
	tr.logger.Debugf("Create %d tenants \n", len(tenants))

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if len(tenants) == 0 {
		return tenants, nil
	}

	if err := db.WithContext(ctx).CreateInBatches(tenants, 100).Error; err != nil {
		return nil, err
	}

	return tenants, nil
}

func (tr TenantRepository) GetById(ctx context.Context, tx *gorm.DB, tenantId string) (*model.Tenant, error) {
	tr.logger.Debugf("Get tenant by id: %s \n", tenantId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var tenant model.Tenant
	if err := db.WithContext(ctx).Model(&model.Tenant{}).
		Preload("Leases", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date desc")
		}).
		Preload("Leases.Unit").
		Where("id = ?", tenantId).
		First(&tenant).Error; err != nil {
		return nil, err
	}

	return &tenant, nil
}

func (tr TenantRepository) Update(ctx context.Context, tx *gorm.DB, tenantId string, values map[string]any) error {
	tr.logger.Debugf("Update tenant %s with values: %v \n", tenantId, values)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Tenant{}, tenantId, values)
}

func (tr TenantRepository) Delete(ctx context.Context, tx *gorm.DB, tenantId string) error {
	tr.logger.Debugf("Delete tenant by id: %s \n", tenantId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Tenant{}, tenantId)
}

// Returns the number of deleted rows. Unknown ids are ignored.
func (tr TenantRepository) DeleteMany(ctx context.Context, tx *gorm.DB, tenantIds []string) (int64, error) {
	tr.logger.Debugf("Delete tenants by ids: %v \n", tenantIds)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id IN ?", tenantIds).Delete(&model.Tenant{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (tr TenantRepository) List(ctx context.Context, tx *gorm.DB, search string, status []constant.TenantStatus, page, pageSize uint) ([]model.Tenant, int64, error) {
	tr.logger.Debugf("List tenants with search: %s, status: %v, page: %d, pageSize: %d \n", search, status, page, pageSize)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Tenant{})
	if len(status) > 0 {
		query = query.Where("status IN ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var tenants []model.Tenant
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&tenants).Error; err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}
