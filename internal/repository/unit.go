package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type UnitRepository struct {
	*baseRepository
}

func (ur UnitRepository) Create(ctx context.Context, tx *gorm.DB, unit *model.Unit) (*model.Unit, error) {
	ur.logger.Debugf("Create unit with data: %v \n", unit)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(unit).Error; err != nil {
		return nil, err
	}

	return unit, nil
}

func (ur UnitRepository) GetById(ctx context.Context, tx *gorm.DB, unitId string) (*model.Unit, error) {
	ur.logger.Debugf("Get unit by id: %s \n", unitId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var unit model.Unit
	if err := db.WithContext(ctx).Model(&model.Unit{}).
		Preload("Property").
		Preload("Leases").
		Where("id = ?", unitId).
		First(&unit).Error; err != nil {
		return nil, err
	}

	return &unit, nil
}

func (ur UnitRepository) Update(ctx context.Context, tx *gorm.DB, unitId string, values map[string]any) error {
	ur.logger.Debugf("Update unit %s with values: %v \n", unitId, values)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Unit{}, unitId, values)
}

func (ur UnitRepository) Delete(ctx context.Context, tx *gorm.DB, unitId string) error {
	ur.logger.Debugf("Delete unit by id: %s \n", unitId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Unit{}, unitId)
}

func (ur UnitRepository) ListByProperty(ctx context.Context, tx *gorm.DB, propertyId string) ([]model.Unit, error) {
	ur.logger.Debugf("List units by property id: %s \n", propertyId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var units []model.Unit
	if err := db.WithContext(ctx).Model(&model.Unit{}).
		Where("property_id = ?", propertyId).
		Order("unit_number asc").
		Find(&units).Error; err != nil {
		return nil, err
	}

	return units, nil
}
