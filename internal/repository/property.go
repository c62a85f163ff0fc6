package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	*baseRepository
}

func (pr PropertyRepository) Create(ctx context.Context, tx *gorm.DB, property *model.Property) (*model.Property, error) {
	pr.logger.Debugf("Create property with data: %v \n", property)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(property).Error; err != nil {
		return nil, err
	}

	return property, nil
}

func (pr PropertyRepository) GetById(ctx context.Context, tx *gorm.DB, propertyId string) (*model.Property, error) {
	pr.logger.Debugf("Get property by id: %s \n", propertyId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var property model.Property
	if err := db.WithContext(ctx).Model(&model.Property{}).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("unit_number asc")
		}).
		Where("id = ?", propertyId).
		First(&property).Error; err != nil {
		return nil, err
	}

	return &property, nil
}

func (pr PropertyRepository) Update(ctx context.Context, tx *gorm.DB, propertyId string, values map[string]any) error {
	pr.logger.Debugf("Update property %s with values: %v \n", propertyId, values)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Property{}, propertyId, values)
}

func (pr PropertyRepository) Delete(ctx context.Context, tx *gorm.DB, propertyId string) error {
	pr.logger.Debugf("Delete property by id: %s \n", propertyId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Property{}, propertyId)
}

func (pr PropertyRepository) List(ctx context.Context, tx *gorm.DB, search string, page, pageSize uint) ([]model.Property, int64, error) {
	pr.logger.Debugf("List properties with search: %s, page: %d, pageSize: %d \n", search, page, pageSize)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Property{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR address LIKE ? OR city LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var properties []model.Property
	if err := query.Preload("Units").Order("created_at desc").Offset(offset).Limit(limit).Find(&properties).Error; err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}
