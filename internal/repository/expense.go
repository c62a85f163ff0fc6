package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type PropertyTaxRepository struct {
	*baseRepository
}

type UtilityRepository struct {
	*baseRepository
}

// Optional filters shared by tax and utility listings
type ExpenseFilter struct {
	PropertyID string
	IsPaid     *bool
}

func (f ExpenseFilter) apply(query *gorm.DB) *gorm.DB {
	if f.PropertyID != "" {
		query = query.Where("property_id = ?", f.PropertyID)
	}
	if f.IsPaid != nil {
		query = query.Where("is_paid = ?", *f.IsPaid)
	}
	return query
}

func (pr PropertyTaxRepository) Create(ctx context.Context, tx *gorm.DB, tax *model.PropertyTax) (*model.PropertyTax, error) {
	pr.logger.Debugf("Create property tax with data: %v \n", tax)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(tax).Error; err != nil {
		return nil, err
	}

	return tax, nil
}

func (pr PropertyTaxRepository) GetById(ctx context.Context, tx *gorm.DB, taxId string) (*model.PropertyTax, error) {
	pr.logger.Debugf("Get property tax by id: %s \n", taxId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var tax model.PropertyTax
	if err := db.WithContext(ctx).Model(&model.PropertyTax{}).
		Preload("Property").
		Preload("Unit").
		Where("id = ?", taxId).
		First(&tax).Error; err != nil {
		return nil, err
	}

	return &tax, nil
}

func (pr PropertyTaxRepository) Update(ctx context.Context, tx *gorm.DB, taxId string, values map[string]any) error {
	pr.logger.Debugf("Update property tax %s with values: %v \n", taxId, values)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.PropertyTax{}, taxId, values)
}

func (pr PropertyTaxRepository) Delete(ctx context.Context, tx *gorm.DB, taxId string) error {
	pr.logger.Debugf("Delete property tax by id: %s \n", taxId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.PropertyTax{}, taxId)
}

func (pr PropertyTaxRepository) List(ctx context.Context, tx *gorm.DB, filter ExpenseFilter) ([]model.PropertyTax, error) {
	pr.logger.Debugf("List property taxes with filter: %+v \n", filter)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var taxes []model.PropertyTax
	if err := filter.apply(db.WithContext(ctx).Model(&model.PropertyTax{})).
		Preload("Property").
		Order("due_date asc").
		Find(&taxes).Error; err != nil {
		return nil, err
	}

	return taxes, nil
}

func (ur UtilityRepository) Create(ctx context.Context, tx *gorm.DB, utility *model.Utility) (*model.Utility, error) {
	ur.logger.Debugf("Create utility with data: %v \n", utility)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(utility).Error; err != nil {
		return nil, err
	}

	return utility, nil
}

func (ur UtilityRepository) GetById(ctx context.Context, tx *gorm.DB, utilityId string) (*model.Utility, error) {
	ur.logger.Debugf("Get utility by id: %s \n", utilityId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var utility model.Utility
	if err := db.WithContext(ctx).Model(&model.Utility{}).
		Preload("Property").
		Preload("Unit").
		Where("id = ?", utilityId).
		First(&utility).Error; err != nil {
		return nil, err
	}

	return &utility, nil
}

func (ur UtilityRepository) Update(ctx context.Context, tx *gorm.DB, utilityId string, values map[string]any) error {
	ur.logger.Debugf("Update utility %s with values: %v \n", utilityId, values)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Utility{}, utilityId, values)
}

func (ur UtilityRepository) Delete(ctx context.Context, tx *gorm.DB, utilityId string) error {
	ur.logger.Debugf("Delete utility by id: %s \n", utilityId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Utility{}, utilityId)
}

func (ur UtilityRepository) List(ctx context.Context, tx *gorm.DB, filter ExpenseFilter) ([]model.Utility, error) {
	ur.logger.Debugf("List utilities with filter: %+v \n", filter)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var utilities []model.Utility
	if err := filter.apply(db.WithContext(ctx).Model(&model.Utility{})).
		Preload("Property").
		Order("due_date asc").
		Find(&utilities).Error; err != nil {
		return nil, err
	}

	return utilities, nil
}
