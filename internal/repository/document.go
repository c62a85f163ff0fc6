package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	*baseRepository
}

// Zero-valued fields are not filtered on
type DocumentFilter struct {
	DocumentType constant.DocumentType
	PropertyID   string
	UnitID       string
	TenantID     string
	LeaseID      string
}

func (dr DocumentRepository) Create(ctx context.Context, tx *gorm.DB, document *model.Document) (*model.Document, error) {
	dr.logger.Debugf("Create document with data: %v \n", document)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(document).Error; err != nil {
		return nil, err
	}

	return document, nil
}

func (dr DocumentRepository) GetById(ctx context.Context, tx *gorm.DB, documentId string) (*model.Document, error) {
	dr.logger.Debugf("Get document by id: %s \n", documentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var document model.Document
	if err := db.WithContext(ctx).Model(&model.Document{}).Where("id = ?", documentId).First(&document).Error; err != nil {
		return nil, err
	}

	return &document, nil
}

func (dr DocumentRepository) Update(ctx context.Context, tx *gorm.DB, documentId string, values map[string]any) error {
	dr.logger.Debugf("Update document %s with values: %v \n", documentId, values)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Document{}, documentId, values)
}

func (dr DocumentRepository) Delete(ctx context.Context, tx *gorm.DB, documentId string) error {
	dr.logger.Debugf("Delete document by id: %s \n", documentId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Document{}, documentId)
}

func (dr DocumentRepository) List(ctx context.Context, tx *gorm.DB, filter DocumentFilter) ([]model.Document, error) {
	dr.logger.Debugf("List documents with filter: %+v \n", filter)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Document{})
	if filter.DocumentType != "" {
		query = query.Where("document_type = ?", filter.DocumentType)
	}
	if filter.PropertyID != "" {
		query = query.Where("property_id = ?", filter.PropertyID)
	}
	if filter.UnitID != "" {
		query = query.Where("unit_id = ?", filter.UnitID)
	}
	if filter.TenantID != "" {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.LeaseID != "" {
		query = query.Where("lease_id = ?", filter.LeaseID)
	}

	var documents []model.Document
	if err := query.Order("created_at desc").Find(&documents).Error; err != nil {
		return nil, err
	}

	return documents, nil
}
