package service

import (
	"context"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PropertyTaxService struct {
	*baseService
}

type UtilityService struct {
	*baseService
}

type PropertyTaxInput struct {
	PropertyID string          `json:"propertyId" form:"propertyId" validate:"required"`
	UnitID     *string         `json:"unitId" form:"unitId"`
	TaxYear    int             `json:"taxYear" form:"taxYear" validate:"gte=1900,lte=2200"`
	Amount     decimal.Decimal `json:"amount" form:"amount" validate:"gt=0"`
	DueDate    time.Time       `json:"dueDate" form:"dueDate" validate:"required"`
	IsPaid     bool            `json:"isPaid" form:"isPaid"`
	Notes      string          `json:"notes" form:"notes"`
}

type UtilityInput struct {
	PropertyID    string               `json:"propertyId" form:"propertyId" validate:"required"`
	UnitID        *string              `json:"unitId" form:"unitId"`
	UtilityType   constant.UtilityType `json:"utilityType" form:"utilityType" validate:"required,oneof=ELECTRICITY WATER GAS INTERNET WASTE OTHER"`
	BillingPeriod string               `json:"billingPeriod" form:"billingPeriod" validate:"strNotEmpty,cmax=20"`
	Amount        decimal.Decimal      `json:"amount" form:"amount" validate:"gt=0"`
	DueDate       time.Time            `json:"dueDate" form:"dueDate" validate:"required"`
	IsPaid        bool                 `json:"isPaid" form:"isPaid"`
}

type PaidStatusInput struct {
	IsPaid bool `json:"isPaid" form:"isPaid"`
}

var (
	propertyTaxPaths = []string{apiPath("property-taxes")}
	utilityPaths     = []string{apiPath("utilities")}
)

func (ps PropertyTaxService) CreatePropertyTax(ctx context.Context, rc *auth.RequestContext, in PropertyTaxInput) (*model.PropertyTax, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.PropertyTax]{
		entityType:    constant.EntityTypePropertyTax,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.PropertyTax, error) {
			if _, err := ps.repo.Property.GetById(ctx, tx, in.PropertyID); err != nil {
				return nil, err
			}
			return ps.repo.PropertyTax.Create(ctx, tx, &model.PropertyTax{
				PropertyID: in.PropertyID,
				UnitID:     in.UnitID,
				TaxYear:    in.TaxYear,
				Amount:     in.Amount,
				DueDate:    in.DueDate,
				IsPaid:     in.IsPaid,
				Notes:      in.Notes,
			})
		},
		entityID:    func(t *model.PropertyTax) string { return t.ID },
		paths:       propertyTaxPaths,
		failMessage: "Failed to create property tax",
	})
}

func (ps PropertyTaxService) UpdatePropertyTax(ctx context.Context, rc *auth.RequestContext, taxId string, in PropertyTaxInput) (*model.PropertyTax, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.PropertyTax]{
		entityType:    constant.EntityTypePropertyTax,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.PropertyTax, error) {
			if err := ps.repo.PropertyTax.Update(ctx, tx, taxId, map[string]any{
				"property_id": in.PropertyID,
				"unit_id":     in.UnitID,
				"tax_year":    in.TaxYear,
				"amount":      in.Amount,
				"due_date":    in.DueDate,
				"is_paid":     in.IsPaid,
				"notes":       in.Notes,
			}); err != nil {
				return nil, err
			}
			return ps.repo.PropertyTax.GetById(ctx, tx, taxId)
		},
		entityID:    func(t *model.PropertyTax) string { return t.ID },
		paths:       propertyTaxPaths,
		failMessage: "Failed to update property tax",
	})
}

// Only is_paid changes, so repeating the call leaves the row as it was
func (ps PropertyTaxService) UpdatePropertyTaxStatus(ctx context.Context, rc *auth.RequestContext, taxId string, in PaidStatusInput) (*model.PropertyTax, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.PropertyTax]{
		entityType:    constant.EntityTypePropertyTax,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.PropertyTax, error) {
			if err := ps.repo.PropertyTax.Update(ctx, tx, taxId, map[string]any{"is_paid": in.IsPaid}); err != nil {
				return nil, err
			}
			return ps.repo.PropertyTax.GetById(ctx, tx, taxId)
		},
		entityID:    func(t *model.PropertyTax) string { return t.ID },
		paths:       propertyTaxPaths,
		failMessage: "Failed to update property tax status",
	})
}

func (ps PropertyTaxService) DeletePropertyTax(ctx context.Context, rc *auth.RequestContext, taxId string) (*model.PropertyTax, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.PropertyTax]{
		entityType:    constant.EntityTypePropertyTax,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.PropertyTax, error) {
			tax, err := ps.repo.PropertyTax.GetById(ctx, tx, taxId)
			if err != nil {
				return nil, err
			}
			return tax, ps.repo.PropertyTax.Delete(ctx, tx, taxId)
		},
		entityID:    func(t *model.PropertyTax) string { return t.ID },
		paths:       propertyTaxPaths,
		failMessage: "Failed to delete property tax",
	})
}

type ExpenseFilter struct {
	PropertyID string `form:"propertyId"`
	IsPaid     *bool  `form:"isPaid"`
}

func (f ExpenseFilter) toRepository() repository.ExpenseFilter {
	return repository.ExpenseFilter{PropertyID: f.PropertyID, IsPaid: f.IsPaid}
}

func (ps PropertyTaxService) GetPropertyTaxes(ctx context.Context, rc *auth.RequestContext, filter ExpenseFilter) ([]model.PropertyTax, error) {
	return read(ps.baseService, rc, "Failed to fetch property taxes", func() ([]model.PropertyTax, error) {
		return ps.repo.PropertyTax.List(ctx, nil, filter.toRepository())
	})
}

func (us UtilityService) CreateUtility(ctx context.Context, rc *auth.RequestContext, in UtilityInput) (*model.Utility, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Utility]{
		entityType:    constant.EntityTypeUtility,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Utility, error) {
			if _, err := us.repo.Property.GetById(ctx, tx, in.PropertyID); err != nil {
				return nil, err
			}
			return us.repo.Utility.Create(ctx, tx, &model.Utility{
				PropertyID:    in.PropertyID,
				UnitID:        in.UnitID,
				UtilityType:   in.UtilityType,
				BillingPeriod: in.BillingPeriod,
				Amount:        in.Amount,
				DueDate:       in.DueDate,
				IsPaid:        in.IsPaid,
			})
		},
		entityID:    func(u *model.Utility) string { return u.ID },
		paths:       utilityPaths,
		failMessage: "Failed to create utility",
	})
}

func (us UtilityService) UpdateUtility(ctx context.Context, rc *auth.RequestContext, utilityId string, in UtilityInput) (*model.Utility, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Utility]{
		entityType:    constant.EntityTypeUtility,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Utility, error) {
			if err := us.repo.Utility.Update(ctx, tx, utilityId, map[string]any{
				"property_id":    in.PropertyID,
				"unit_id":        in.UnitID,
				"utility_type":   in.UtilityType,
				"billing_period": in.BillingPeriod,
				"amount":         in.Amount,
				"due_date":       in.DueDate,
				"is_paid":        in.IsPaid,
			}); err != nil {
				return nil, err
			}
			return us.repo.Utility.GetById(ctx, tx, utilityId)
		},
		entityID:    func(u *model.Utility) string { return u.ID },
		paths:       utilityPaths,
		failMessage: "Failed to update utility",
	})
}

func (us UtilityService) UpdateUtilityStatus(ctx context.Context, rc *auth.RequestContext, utilityId string, in PaidStatusInput) (*model.Utility, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Utility]{
		entityType:    constant.EntityTypeUtility,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Utility, error) {
			if err := us.repo.Utility.Update(ctx, tx, utilityId, map[string]any{"is_paid": in.IsPaid}); err != nil {
				return nil, err
			}
			return us.repo.Utility.GetById(ctx, tx, utilityId)
		},
		entityID:    func(u *model.Utility) string { return u.ID },
		paths:       utilityPaths,
		failMessage: "Failed to update utility status",
	})
}

func (us UtilityService) DeleteUtility(ctx context.Context, rc *auth.RequestContext, utilityId string) (*model.Utility, error) {
	return runMutation(ctx, us.baseService, rc, mutation[*model.Utility]{
		entityType:    constant.EntityTypeUtility,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Utility, error) {
			utility, err := us.repo.Utility.GetById(ctx, tx, utilityId)
			if err != nil {
				return nil, err
			}
			return utility, us.repo.Utility.Delete(ctx, tx, utilityId)
		},
		entityID:    func(u *model.Utility) string { return u.ID },
		paths:       utilityPaths,
		failMessage: "Failed to delete utility",
	})
}

func (us UtilityService) GetUtilities(ctx context.Context, rc *auth.RequestContext, filter ExpenseFilter) ([]model.Utility, error) {
	return read(us.baseService, rc, "Failed to fetch utilities", func() ([]model.Utility, error) {
		return us.repo.Utility.List(ctx, nil, filter.toRepository())
	})
}
