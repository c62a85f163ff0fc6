package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UnitService struct {
	*baseService
}

type UnitInput struct {
	PropertyID string              `json:"propertyId" form:"propertyId" validate:"required"`
	UnitNumber string              `json:"unitNumber" form:"unitNumber" validate:"strNotEmpty,cmax=50"`
	Floor      int                 `json:"floor" form:"floor"`
	Area       decimal.Decimal     `json:"area" form:"area" validate:"gte=0"`
	Rent       decimal.Decimal     `json:"rent" form:"rent" validate:"gte=0"`
	Status     constant.UnitStatus `json:"status" form:"status" validate:"required,oneof=VACANT OCCUPIED MAINTENANCE RESERVED"`
}

type UnitStatusInput struct {
	Status constant.UnitStatus `json:"status" form:"status" validate:"required,oneof=VACANT OCCUPIED MAINTENANCE RESERVED"`
}

// Unit listings live under their property
var unitPaths = []string{apiPath("properties")}

func (us UnitService) CreateUnit(ctx context.Context, rc *auth.RequestContext, in UnitInput) (*model.Unit, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Unit]{
		entityType:    constant.EntityTypeUnit,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Unit, error) {
			if _, err := us.repo.Property.GetById(ctx, tx, in.PropertyID); err != nil {
				return nil, err
			}
			return us.repo.Unit.Create(ctx, tx, &model.Unit{
				PropertyID: in.PropertyID,
				UnitNumber: in.UnitNumber,
				Floor:      in.Floor,
				Area:       in.Area,
				Rent:       in.Rent,
				Status:     in.Status,
			})
		},
		entityID:    func(u *model.Unit) string { return u.ID },
		paths:       unitPaths,
		failMessage: "Failed to create unit",
	})
}

func (us UnitService) UpdateUnit(ctx context.Context, rc *auth.RequestContext, unitId string, in UnitInput) (*model.Unit, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Unit]{
		entityType:    constant.EntityTypeUnit,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Unit, error) {
			if err := us.repo.Unit.Update(ctx, tx, unitId, map[string]any{
				"unit_number": in.UnitNumber,
				"floor":       in.Floor,
				"area":        in.Area,
				"rent":        in.Rent,
				"status":      in.Status,
			}); err != nil {
				return nil, err
			}
			return us.repo.Unit.GetById(ctx, tx, unitId)
		},
		entityID:    func(u *model.Unit) string { return u.ID },
		paths:       unitPaths,
		failMessage: "Failed to update unit",
	})
}

func (us UnitService) UpdateUnitStatus(ctx context.Context, rc *auth.RequestContext, unitId string, in UnitStatusInput) (*model.Unit, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Unit]{
		entityType:    constant.EntityTypeUnit,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Unit, error) {
			if err := us.repo.Unit.Update(ctx, tx, unitId, map[string]any{"status": in.Status}); err != nil {
				return nil, err
			}
			return us.repo.Unit.GetById(ctx, tx, unitId)
		},
		entityID:    func(u *model.Unit) string { return u.ID },
		paths:       unitPaths,
		failMessage: "Failed to update unit status",
	})
}

func (us UnitService) DeleteUnit(ctx context.Context, rc *auth.RequestContext, unitId string) (*model.Unit, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Unit]{
		entityType:    constant.EntityTypeUnit,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Unit, error) {
			unit, err := us.repo.Unit.GetById(ctx, tx, unitId)
			if err != nil {
				return nil, err
			}
			return unit, us.repo.Unit.Delete(ctx, tx, unitId)
		},
		entityID:    func(u *model.Unit) string { return u.ID },
		metadata:    func(u *model.Unit) any { return map[string]any{"propertyId": u.PropertyID, "unitNumber": u.UnitNumber} },
		paths:       append(unitPaths, apiPath("leases")),
		failMessage: "Failed to delete unit",
	})
}

func (us UnitService) GetUnitsByProperty(ctx context.Context, rc *auth.RequestContext, propertyId string) ([]model.Unit, error) {
	return read(us.baseService, rc, "Failed to fetch units", func() ([]model.Unit, error) {
		if _, err := us.repo.Property.GetById(ctx, nil, propertyId); err != nil {
			return nil, err
		}
		return us.repo.Unit.ListByProperty(ctx, nil, propertyId)
	})
}

func (us UnitService) GetUnitByID(ctx context.Context, rc *auth.RequestContext, unitId string) (*model.Unit, error) {
	return read(us.baseService, rc, "Failed to fetch unit", func() (*model.Unit, error) {
		return us.repo.Unit.GetById(ctx, nil, unitId)
	})
}
