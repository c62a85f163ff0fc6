package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"gorm.io/gorm"
)

type DocumentService struct {
	*baseService
}

type DocumentInput struct {
	Name         string                `json:"name" form:"name" validate:"strNotEmpty,cmax=255"`
	DocumentType constant.DocumentType `json:"documentType" form:"documentType" validate:"required,oneof=LEASE INVOICE CONTRACT PERMIT OTHER"`
	FileURL      string                `json:"fileUrl" form:"fileUrl" validate:"required,url"`
	Size         int64                 `json:"size" form:"size" validate:"gte=0"`
	PropertyID   *string               `json:"propertyId" form:"propertyId"`
	UnitID       *string               `json:"unitId" form:"unitId"`
	TenantID     *string               `json:"tenantId" form:"tenantId"`
	LeaseID      *string               `json:"leaseId" form:"leaseId"`
}

var documentPaths = []string{apiPath("documents")}

func (ds DocumentService) CreateDocument(ctx context.Context, rc *auth.RequestContext, in DocumentInput) (*model.Document, error) {
	return runMutation(ctx, ds.baseService, rc, mutation[*model.Document]{
		entityType: constant.EntityTypeDocument,
		action:     constant.AuditActionCreate,
		input:      in,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Document, error) {
			return ds.repo.Document.Create(ctx, tx, &model.Document{
				Name:         in.Name,
				DocumentType: in.DocumentType,
				FileURL:      in.FileURL,
				Size:         in.Size,
				PropertyID:   in.PropertyID,
				UnitID:       in.UnitID,
				TenantID:     in.TenantID,
				LeaseID:      in.LeaseID,
				UploadedByID: rc.ActorID,
			})
		},
		entityID:    func(d *model.Document) string { return d.ID },
		paths:       documentPaths,
		failMessage: "Failed to create document",
	})
}

func (ds DocumentService) UpdateDocument(ctx context.Context, rc *auth.RequestContext, documentId string, in DocumentInput) (*model.Document, error) {
	return runMutation(ctx, ds.baseService, rc, mutation[*model.Document]{
		entityType:    constant.EntityTypeDocument,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Document, error) {
			if err := ds.repo.Document.Update(ctx, tx, documentId, map[string]any{
				"name":          in.Name,
				"document_type": in.DocumentType,
				"file_url":      in.FileURL,
				"size":          in.Size,
				"property_id":   in.PropertyID,
				"unit_id":       in.UnitID,
				"tenant_id":     in.TenantID,
				"lease_id":      in.LeaseID,
			}); err != nil {
				return nil, err
			}
			return ds.repo.Document.GetById(ctx, tx, documentId)
		},
		entityID:    func(d *model.Document) string { return d.ID },
		paths:       documentPaths,
		failMessage: "Failed to update document",
	})
}

func (ds DocumentService) DeleteDocument(ctx context.Context, rc *auth.RequestContext, documentId string) (*model.Document, error) {
	return runMutation(ctx, ds.baseService, rc, mutation[*model.Document]{
		entityType:    constant.EntityTypeDocument,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Document, error) {
			document, err := ds.repo.Document.GetById(ctx, tx, documentId)
			if err != nil {
				return nil, err
			}
			return document, ds.repo.Document.Delete(ctx, tx, documentId)
		},
		entityID:    func(d *model.Document) string { return d.ID },
		metadata:    func(d *model.Document) any { return map[string]any{"name": d.Name} },
		paths:       documentPaths,
		failMessage: "Failed to delete document",
	})
}

type DocumentFilter struct {
	DocumentType constant.DocumentType `form:"documentType"`
	PropertyID   string                `form:"propertyId"`
	UnitID       string                `form:"unitId"`
	TenantID     string                `form:"tenantId"`
	LeaseID      string                `form:"leaseId"`
}

func (ds DocumentService) GetDocuments(ctx context.Context, rc *auth.RequestContext, filter DocumentFilter) ([]model.Document, error) {
	return read(ds.baseService, rc, "Failed to fetch documents", func() ([]model.Document, error) {
		return ds.repo.Document.List(ctx, nil, repository.DocumentFilter(filter))
	})
}

func (ds DocumentService) GetDocumentByID(ctx context.Context, rc *auth.RequestContext, documentId string) (*model.Document, error) {
	return read(ds.baseService, rc, "Failed to fetch document", func() (*model.Document, error) {
		return ds.repo.Document.GetById(ctx, nil, documentId)
	})
}
