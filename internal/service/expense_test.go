package service

import (
	"context"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) createPropertyTax(t *testing.T, propertyId string, amount int64, paid bool) *model.PropertyTax {
	t.Helper()

	tax, err := f.svc.PropertyTax.CreatePropertyTax(context.Background(), f.as(0), PropertyTaxInput{
		PropertyID: propertyId,
		TaxYear:    2024,
		Amount:     decimal.NewFromInt(amount),
		DueDate:    time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		IsPaid:     paid,
		Notes:      "Annual assessment",
	})
	require.NoError(t, err)
	return tax
}

func TestUpdatePropertyTaxStatusIsIdempotent(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	property := f.createProperty(t, "Riverside Tower")
	tax := f.createPropertyTax(t, property.ID, 200, false)

	first, err := f.svc.PropertyTax.UpdatePropertyTaxStatus(ctx, f.as(0), tax.ID, PaidStatusInput{IsPaid: true})
	require.NoError(t, err)
	second, err := f.svc.PropertyTax.UpdatePropertyTaxStatus(ctx, f.as(0), tax.ID, PaidStatusInput{IsPaid: true})
	require.NoError(t, err)

	for _, got := range []*model.PropertyTax{first, second} {
		assert.True(t, got.IsPaid)
		assert.True(t, decimal.NewFromInt(200).Equal(got.Amount), got.Amount.String())
		assert.Equal(t, tax.TaxYear, got.TaxYear)
		assert.Equal(t, tax.Notes, got.Notes)
		assert.Equal(t, tax.PropertyID, got.PropertyID)
	}

	var stored model.PropertyTax
	require.NoError(t, f.db.First(&stored, "id = ?", tax.ID).Error)
	assert.True(t, stored.IsPaid)
}

func TestUpdateUtilityStatusOnMissingRow(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Utility.UpdateUtilityStatus(context.Background(), f.as(0), "missing", PaidStatusInput{IsPaid: true})
	requireActionError(t, err, "Failed to update utility status")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseInputValidation(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	property := f.createProperty(t, "Riverside Tower")

	_, err := f.svc.PropertyTax.CreatePropertyTax(ctx, f.as(0), PropertyTaxInput{
		PropertyID: property.ID,
		TaxYear:    2024,
		Amount:     decimal.Zero,
		DueDate:    time.Now(),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Utility.CreateUtility(ctx, f.as(0), UtilityInput{
		PropertyID:    property.ID,
		UtilityType:   "STEAM",
		BillingPeriod: "2024-05",
		Amount:        decimal.NewFromInt(40),
		DueDate:       time.Now(),
	})
	require.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, f.count(t, &model.PropertyTax{}))
	assert.Zero(t, f.count(t, &model.Utility{}))
}

func TestGetUtilitiesFiltersByPaidStatus(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()
	property := f.createProperty(t, "Riverside Tower")

	for i, paid := range []bool{true, false, false} {
		_, err := f.svc.Utility.CreateUtility(ctx, f.as(0), UtilityInput{
			PropertyID:    property.ID,
			UtilityType:   constant.UtilityTypeWater,
			BillingPeriod: time.Date(2024, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Amount:        decimal.NewFromInt(50),
			DueDate:       time.Date(2024, time.Month(i+2), 1, 0, 0, 0, 0, time.UTC),
			IsPaid:        paid,
		})
		require.NoError(t, err)
	}

	unpaid := false
	utilities, err := f.svc.Utility.GetUtilities(ctx, f.as(0), ExpenseFilter{PropertyID: property.ID, IsPaid: &unpaid})
	require.NoError(t, err)
	assert.Len(t, utilities, 2)

	all, err := f.svc.Utility.GetUtilities(ctx, f.as(0), ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
