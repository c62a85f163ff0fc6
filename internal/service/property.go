package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PropertyService struct {
	*baseService
}

type PropertyInput struct {
	Name         string                `json:"name" form:"name" validate:"strNotEmpty,cmax=150"`
	Address      string                `json:"address" form:"address" validate:"strNotEmpty"`
	City         string                `json:"city" form:"city" validate:"cmax=100"`
	PropertyType constant.PropertyType `json:"propertyType" form:"propertyType" validate:"required,oneof=RESIDENTIAL COMMERCIAL MIXED_USE INDUSTRIAL"`
	Description  string                `json:"description" form:"description"`
	TotalArea    decimal.Decimal       `json:"totalArea" form:"totalArea" validate:"gte=0"`
}

func (in PropertyInput) values() map[string]any {
	return map[string]any{
		"name":          in.Name,
		"address":       in.Address,
		"city":          in.City,
		"property_type": in.PropertyType,
		"description":   in.Description,
		"total_area":    in.TotalArea,
	}
}

var propertyPaths = []string{apiPath("properties")}

func (ps PropertyService) CreateProperty(ctx context.Context, rc *auth.RequestContext, in PropertyInput) (*model.Property, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Property]{
		entityType: constant.EntityTypeProperty,
		action:     constant.AuditActionCreate,
		input:      in,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Property, error) {
			return ps.repo.Property.Create(ctx, tx, &model.Property{
				Name:         in.Name,
				Address:      in.Address,
				City:         in.City,
				PropertyType: in.PropertyType,
				Description:  in.Description,
				TotalArea:    in.TotalArea,
			})
		},
		entityID:    func(p *model.Property) string { return p.ID },
		paths:       propertyPaths,
		failMessage: "Failed to create property",
	})
}

func (ps PropertyService) UpdateProperty(ctx context.Context, rc *auth.RequestContext, propertyId string, in PropertyInput) (*model.Property, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Property]{
		entityType:    constant.EntityTypeProperty,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Property, error) {
			if err := ps.repo.Property.Update(ctx, tx, propertyId, in.values()); err != nil {
				return nil, err
			}
			return ps.repo.Property.GetById(ctx, tx, propertyId)
		},
		entityID:    func(p *model.Property) string { return p.ID },
		paths:       propertyPaths,
		failMessage: "Failed to update property",
	})
}

// Units, leases, taxes and utilities of the property are removed with it
func (ps PropertyService) DeleteProperty(ctx context.Context, rc *auth.RequestContext, propertyId string) (*model.Property, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Property]{
		entityType:    constant.EntityTypeProperty,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Property, error) {
			property, err := ps.repo.Property.GetById(ctx, tx, propertyId)
			if err != nil {
				return nil, err
			}
			return property, ps.repo.Property.Delete(ctx, tx, propertyId)
		},
		entityID:    func(p *model.Property) string { return p.ID },
		metadata:    func(p *model.Property) any { return map[string]any{"name": p.Name} },
		paths:       append(propertyPaths, apiPath("property-taxes"), apiPath("utilities"), apiPath("leases")),
		failMessage: "Failed to delete property",
	})
}

func (ps PropertyService) GetProperties(ctx context.Context, rc *auth.RequestContext, search string, page, pageSize uint) (Page[model.Property], error) {
	return read(ps.baseService, rc, "Failed to fetch properties", func() (Page[model.Property], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		properties, total, err := ps.repo.Property.List(ctx, nil, search, page, pageSize)
		if err != nil {
			return Page[model.Property]{}, err
		}
		return newPage(properties, total, page, pageSize), nil
	})
}

func (ps PropertyService) GetPropertyByID(ctx context.Context, rc *auth.RequestContext, propertyId string) (*model.Property, error) {
	return read(ps.baseService, rc, "Failed to fetch property", func() (*model.Property, error) {
		return ps.repo.Property.GetById(ctx, nil, propertyId)
	})
}
