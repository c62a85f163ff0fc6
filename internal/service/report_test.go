package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sizedUnit(area int64, status constant.UnitStatus) model.Unit {
	return model.Unit{Area: decimal.NewFromInt(area), Status: status}
}

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		name  string
		units []model.Unit
		want  float64
	}{
		{name: "no units", want: 0},
		{name: "no leasable area", units: []model.Unit{sizedUnit(0, constant.UnitStatusOccupied)}, want: 0},
		{name: "fully occupied", units: []model.Unit{sizedUnit(50, constant.UnitStatusOccupied), sizedUnit(50, constant.UnitStatusOccupied)}, want: 100},
		{name: "weighted by area", units: []model.Unit{sizedUnit(75, constant.UnitStatusOccupied), sizedUnit(25, constant.UnitStatusVacant)}, want: 75},
		{name: "reserved is not occupied", units: []model.Unit{sizedUnit(40, constant.UnitStatusReserved), sizedUnit(60, constant.UnitStatusOccupied)}, want: 60},
		{
			name:  "rounded to two decimals",
			units: []model.Unit{sizedUnit(1, constant.UnitStatusOccupied), sizedUnit(1, constant.UnitStatusVacant), sizedUnit(1, constant.UnitStatusMaintenance)},
			want:  33.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, occupancyRate(tt.units))
		})
	}
}

func TestBuildFinancialReport(t *testing.T) {
	at := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	properties := []model.Property{
		{
			BaseModel: model.BaseModel{ID: "p1"},
			Name:      "Riverside Tower",
			Units: []model.Unit{{
				Leases: []model.Lease{
					{Status: constant.LeaseStatusActive, Payments: []model.Payment{
						{Amount: decimal.NewFromInt(1000), Status: constant.PaymentStatusCompleted},
						{Amount: decimal.NewFromInt(300), Status: constant.PaymentStatusPending},
					}},
					{Status: constant.LeaseStatusExpired, Payments: []model.Payment{
						{Amount: decimal.NewFromInt(250), Status: constant.PaymentStatusCompleted},
						{Amount: decimal.NewFromInt(90), Status: constant.PaymentStatusRefunded},
					}},
				},
			}},
			PropertyTaxes: []model.PropertyTax{
				{Amount: decimal.NewFromInt(200), IsPaid: true},
				{Amount: decimal.NewFromInt(100), IsPaid: false},
			},
			Utilities: []model.Utility{
				{Amount: decimal.RequireFromString("45.50"), IsPaid: false},
			},
		},
		{BaseModel: model.BaseModel{ID: "p2"}, Name: "Empty Lot"},
	}

	report := buildFinancialReport(properties, at)

	assert.Equal(t, at, report.GeneratedAt)
	assert.True(t, decimal.NewFromInt(1250).Equal(report.Revenue.Total), report.Revenue.Total.String())
	assert.Equal(t, 2, report.Revenue.PaymentCount)
	assert.True(t, decimal.NewFromInt(1000).Equal(report.Revenue.ByLeaseStatus[constant.LeaseStatusActive]))
	assert.True(t, decimal.NewFromInt(250).Equal(report.Revenue.ByLeaseStatus[constant.LeaseStatusExpired]))

	assert.True(t, decimal.NewFromInt(300).Equal(report.Expenses.Taxes))
	assert.True(t, decimal.RequireFromString("45.5").Equal(report.Expenses.Utilities))
	assert.True(t, decimal.RequireFromString("345.5").Equal(report.Expenses.Total))
	assert.True(t, decimal.NewFromInt(100).Equal(report.Expenses.OutstandingTaxes))
	assert.True(t, decimal.RequireFromString("45.5").Equal(report.Expenses.OutstandingUtilities))
	assert.True(t, decimal.RequireFromString("904.5").Equal(report.NetIncome), report.NetIncome.String())

	require.Len(t, report.Properties, 2)
	assert.True(t, report.Properties[0].NetIncome.Equal(report.NetIncome))
	assert.True(t, report.Properties[1].Revenue.IsZero())
	assert.True(t, report.Properties[1].NetIncome.IsZero())
}

func TestBuildPropertiesReport(t *testing.T) {
	properties := []model.Property{
		{Name: "A", Units: []model.Unit{sizedUnit(100, constant.UnitStatusOccupied), sizedUnit(100, constant.UnitStatusVacant)}},
		{Name: "B", Units: []model.Unit{sizedUnit(200, constant.UnitStatusOccupied)}},
	}

	report := buildPropertiesReport(properties, time.Now())

	require.Len(t, report.Properties, 2)
	assert.Equal(t, 50.0, report.Properties[0].OccupancyRate)
	assert.Equal(t, 1, report.Properties[0].VacantUnits)
	assert.Equal(t, 100.0, report.Properties[1].OccupancyRate)
	assert.Equal(t, 75.0, report.OccupancyRate)
}

// Property with one unit, one active lease, payments of 1000 and 500 and a 200 tax
func seedFinancials(t *testing.T, f *fixture) *model.Property {
	t.Helper()
	ctx := context.Background()

	property := f.createProperty(t, "Riverside Tower")
	u := f.createUnit(t, property.ID, "A-101", 80, constant.UnitStatusOccupied)
	f.createUnit(t, property.ID, "A-102", 20, constant.UnitStatusVacant)
	tenant := f.createTenant(t, "dara@example.com")
	lease := f.createLease(t, u.ID, tenant.ID)

	for _, amount := range []int64{1000, 500} {
		payment, err := f.svc.Lease.RecordPayment(ctx, f.as(0), lease.ID, PaymentInput{
			Amount: decimal.NewFromInt(amount),
			Status: constant.PaymentStatusCompleted,
		})
		require.NoError(t, err)
		require.NotNil(t, payment.PaidAt)
	}
	_, err := f.svc.Lease.RecordPayment(ctx, f.as(0), lease.ID, PaymentInput{
		Amount: decimal.NewFromInt(700),
		Status: constant.PaymentStatusFailed,
	})
	require.NoError(t, err)

	f.createPropertyTax(t, property.ID, 200, false)
	return property
}

func TestGetFinancialReports(t *testing.T) {
	f := newFixture(t, 2)
	seedFinancials(t, f)

	report, err := f.svc.Report.GetFinancialReports(context.Background(), f.as(0))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1500).Equal(report.Revenue.Total), report.Revenue.Total.String())
	assert.True(t, decimal.NewFromInt(200).Equal(report.Expenses.Taxes), report.Expenses.Taxes.String())
	assert.True(t, report.Expenses.Utilities.IsZero())
	assert.True(t, decimal.NewFromInt(1300).Equal(report.NetIncome), report.NetIncome.String())
}

func TestGetPropertiesReportAndDashboard(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	seedFinancials(t, f)

	report, err := f.svc.Report.GetPropertiesReport(ctx, f.as(0))
	require.NoError(t, err)
	require.Len(t, report.Properties, 1)
	assert.Equal(t, 80.0, report.Properties[0].OccupancyRate)
	assert.Equal(t, 2, report.Properties[0].TotalUnits)
	assert.Equal(t, 1, report.Properties[0].OccupiedUnits)

	stats, err := f.svc.Report.GetDashboardStats(ctx, f.as(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalProperties)
	assert.EqualValues(t, 2, stats.TotalUnits)
	assert.EqualValues(t, 1, stats.OccupiedUnits)
	assert.EqualValues(t, 1, stats.TotalTenants)
	assert.EqualValues(t, 1, stats.ActiveLeases)
	assert.Equal(t, 80.0, stats.OccupancyRate)
	assert.True(t, decimal.NewFromInt(1500).Equal(stats.TotalRevenue))
	assert.True(t, decimal.NewFromInt(200).Equal(stats.OutstandingTaxes))
	assert.Positive(t, stats.UnreadNotifications)
}

func TestReportsRequireAuthentication(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	_, err := f.svc.Report.GetFinancialReports(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Report.GetDashboardStats(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Report.ExportFinancialReport(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRenderFinancialWorkbook(t *testing.T) {
	report := FinancialReport{
		Revenue: RevenueSummary{
			Total:         decimal.NewFromInt(1500),
			ByLeaseStatus: map[constant.LeaseStatus]decimal.Decimal{constant.LeaseStatusActive: decimal.NewFromInt(1500)},
			PaymentCount:  2,
		},
		Expenses: ExpenseSummary{
			Taxes: decimal.NewFromInt(200),
			Total: decimal.NewFromInt(200),
		},
		NetIncome: decimal.NewFromInt(1300),
		Properties: []PropertyFinancials{{
			Name:      "Riverside Tower",
			Revenue:   decimal.NewFromInt(1500),
			Expenses:  ExpenseSummary{Taxes: decimal.NewFromInt(200), Total: decimal.NewFromInt(200)},
			NetIncome: decimal.NewFromInt(1300),
		}},
		GeneratedAt: time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC),
	}

	buf, err := renderFinancialWorkbook(report)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{summarySheet, propertiesSheet}, wb.GetSheetList())

	cells := map[string]string{"A1": "Metric", "A2": "Revenue", "B2": "1500", "B3": "200", "A6": "Net income", "B6": "1300", "B9": "2"}
	for cell, want := range cells {
		got, err := wb.GetCellValue(summarySheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	rows, err := wb.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Revenue from ACTIVE leases", "1500"}, rows[9])
	assert.Equal(t, []string{"Generated at", "2024-07-01T12:00:00Z"}, rows[len(rows)-1])

	properties, err := wb.GetRows(propertiesSheet)
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, []string{"Riverside Tower", "1500", "200", "0", "200", "1300"}, properties[1])
}

func TestExportFinancialReport(t *testing.T) {
	f := newFixture(t, 1)
	seedFinancials(t, f)

	exported, err := f.svc.Report.ExportFinancialReport(context.Background(), f.as(0))
	require.NoError(t, err)
	assert.Equal(t, xlsxContentType, exported.ContentType)
	assert.Contains(t, exported.FileName, ".xlsx")

	wb, err := excelize.OpenReader(bytes.NewReader(exported.Data))
	require.NoError(t, err)
	defer wb.Close()

	net, err := wb.GetCellValue(summarySheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "1300", net)

	// Exporting is a read, nothing is audited
	assert.Zero(t, f.count(t, &model.AuditLog{}, "entity_type = ?", constant.EntityTypeFile))
}

func TestArchiveFinancialReportWithoutStorage(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Report.ArchiveFinancialReport(context.Background(), f.as(0))
	requireActionError(t, err, "Failed to archive financial report")

	assert.Zero(t, f.count(t, &model.File{}))
	assert.Zero(t, f.count(t, &model.AuditLog{}))
}
