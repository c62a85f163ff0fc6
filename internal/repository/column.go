package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type ColumnRepository struct {
	*baseRepository
}

func (cr ColumnRepository) Create(ctx context.Context, tx *gorm.DB, column *model.Column) (*model.Column, error) {
	cr.logger.Debugf("Create column with data: %v \n", column)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(column).Error; err != nil {
		return nil, err
	}

	return column, nil
}

func (cr ColumnRepository) GetById(ctx context.Context, tx *gorm.DB, columnId string) (*model.Column, error) {
	cr.logger.Debugf("Get column by id: %s \n", columnId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var column model.Column
	if err := db.WithContext(ctx).Model(&model.Column{}).Where("id = ?", columnId).First(&column).Error; err != nil {
		return nil, err
	}

	return &column, nil
}

func (cr ColumnRepository) Update(ctx context.Context, tx *gorm.DB, columnId string, values map[string]any) error {
	cr.logger.Debugf("Update column %s with values: %v \n", columnId, values)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Column{}, columnId, values)
}

func (cr ColumnRepository) Delete(ctx context.Context, tx *gorm.DB, columnId string) error {
	cr.logger.Debugf("Delete column by id: %s \n", columnId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Column{}, columnId)
}

// Position a new column should take at the end of the board
func (cr ColumnRepository) NextOrder(ctx context.Context, tx *gorm.DB, projectId string) (int, error) {
	cr.logger.Debugf("Get next column order of project: %s \n", projectId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var next int
	if err := db.WithContext(ctx).Model(&model.Column{}).
		Select("COALESCE(MAX(position) + 1, 0)").
		Where("project_id = ?", projectId).
		Scan(&next).Error; err != nil {
		return 0, err
	}

	return next, nil
}

func (cr ColumnRepository) IdsByProject(ctx context.Context, tx *gorm.DB, projectId string) ([]string, error) {
	cr.logger.Debugf("Get column ids of project: %s \n", projectId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var ids []string
	if err := db.WithContext(ctx).Model(&model.Column{}).
		Where("project_id = ?", projectId).
		Order("position asc").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}
