package service

import (
	"context"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/shopspring/decimal"
)

// Reports are computed on every call and never cached
type ReportService struct {
	*baseService
}

type RevenueSummary struct {
	Total         decimal.Decimal                          `json:"total"`
	ByLeaseStatus map[constant.LeaseStatus]decimal.Decimal `json:"byLeaseStatus"`
	PaymentCount  int                                      `json:"paymentCount"`
}

type ExpenseSummary struct {
	Taxes                decimal.Decimal `json:"taxes"`
	Utilities            decimal.Decimal `json:"utilities"`
	Total                decimal.Decimal `json:"total"`
	OutstandingTaxes     decimal.Decimal `json:"outstandingTaxes"`
	OutstandingUtilities decimal.Decimal `json:"outstandingUtilities"`
}

type PropertyFinancials struct {
	PropertyID string          `json:"propertyId"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Expenses   ExpenseSummary  `json:"expenses"`
	NetIncome  decimal.Decimal `json:"netIncome"`
}

type FinancialReport struct {
	Revenue     RevenueSummary       `json:"revenue"`
	Expenses    ExpenseSummary       `json:"expenses"`
	NetIncome   decimal.Decimal      `json:"netIncome"`
	Properties  []PropertyFinancials `json:"properties"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

type PropertyReport struct {
	PropertyID    string                `json:"propertyId"`
	Name          string                `json:"name"`
	PropertyType  constant.PropertyType `json:"propertyType"`
	TotalUnits    int                   `json:"totalUnits"`
	OccupiedUnits int                   `json:"occupiedUnits"`
	VacantUnits   int                   `json:"vacantUnits"`
	LeasableArea  decimal.Decimal       `json:"leasableArea"`
	OccupiedArea  decimal.Decimal       `json:"occupiedArea"`
	OccupancyRate float64               `json:"occupancyRate"`
	Revenue       decimal.Decimal       `json:"revenue"`
	Expenses      decimal.Decimal       `json:"expenses"`
	NetIncome     decimal.Decimal       `json:"netIncome"`
}

type PropertiesReport struct {
	Properties    []PropertyReport `json:"properties"`
	OccupancyRate float64          `json:"occupancyRate"`
	GeneratedAt   time.Time        `json:"generatedAt"`
}

type DashboardStats struct {
	TotalProperties         int64           `json:"totalProperties"`
	TotalUnits              int64           `json:"totalUnits"`
	OccupiedUnits           int64           `json:"occupiedUnits"`
	TotalTenants            int64           `json:"totalTenants"`
	ActiveLeases            int64           `json:"activeLeases"`
	OpenMaintenanceRequests int64           `json:"openMaintenanceRequests"`
	TotalRevenue            decimal.Decimal `json:"totalRevenue"`
	OutstandingTaxes        decimal.Decimal `json:"outstandingTaxes"`
	OutstandingUtilities    decimal.Decimal `json:"outstandingUtilities"`
	OccupancyRate           float64         `json:"occupancyRate"`
	UnreadNotifications     int64           `json:"unreadNotifications"`
}

// Percentage of leasable area held by OCCUPIED units, rounded to two decimals.
// Zero when the units have no leasable area.
func occupancyRate(units []model.Unit) float64 {
	leasable, occupied := unitAreas(units)
	if !leasable.IsPositive() {
		return 0
	}
	return occupied.Div(leasable).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

func unitAreas(units []model.Unit) (leasable, occupied decimal.Decimal) {
	for _, u := range units {
		leasable = leasable.Add(u.Area)
		if u.Status == constant.UnitStatusOccupied {
			occupied = occupied.Add(u.Area)
		}
	}
	return leasable, occupied
}

// Sum of COMPLETED payments, partitioned by the status of their lease
func propertyRevenue(p model.Property) RevenueSummary {
	summary := RevenueSummary{ByLeaseStatus: make(map[constant.LeaseStatus]decimal.Decimal)}
	for _, u := range p.Units {
		for _, l := range u.Leases {
			for _, pay := range l.Payments {
				if pay.Status != constant.PaymentStatusCompleted {
					continue
				}
				summary.Total = summary.Total.Add(pay.Amount)
				summary.ByLeaseStatus[l.Status] = summary.ByLeaseStatus[l.Status].Add(pay.Amount)
				summary.PaymentCount++
			}
		}
	}
	return summary
}

// Every tax and utility counts as an expense, paid or not
func propertyExpenses(p model.Property) ExpenseSummary {
	var summary ExpenseSummary
	for _, t := range p.PropertyTaxes {
		summary.Taxes = summary.Taxes.Add(t.Amount)
		if !t.IsPaid {
			summary.OutstandingTaxes = summary.OutstandingTaxes.Add(t.Amount)
		}
	}
	for _, u := range p.Utilities {
		summary.Utilities = summary.Utilities.Add(u.Amount)
		if !u.IsPaid {
			summary.OutstandingUtilities = summary.OutstandingUtilities.Add(u.Amount)
		}
	}
	summary.Total = summary.Taxes.Add(summary.Utilities)
	return summary
}

func (e ExpenseSummary) add(other ExpenseSummary) ExpenseSummary {
	return ExpenseSummary{
		Taxes:                e.Taxes.Add(other.Taxes),
		Utilities:            e.Utilities.Add(other.Utilities),
		Total:                e.Total.Add(other.Total),
		OutstandingTaxes:     e.OutstandingTaxes.Add(other.OutstandingTaxes),
		OutstandingUtilities: e.OutstandingUtilities.Add(other.OutstandingUtilities),
	}
}

func buildFinancialReport(properties []model.Property, at time.Time) FinancialReport {
	report := FinancialReport{
		Revenue:     RevenueSummary{ByLeaseStatus: make(map[constant.LeaseStatus]decimal.Decimal)},
		Properties:  make([]PropertyFinancials, 0, len(properties)),
		GeneratedAt: at,
	}

	for _, p := range properties {
		revenue := propertyRevenue(p)
		expenses := propertyExpenses(p)

		report.Revenue.Total = report.Revenue.Total.Add(revenue.Total)
		report.Revenue.PaymentCount += revenue.PaymentCount
		for status, amount := range revenue.ByLeaseStatus {
			report.Revenue.ByLeaseStatus[status] = report.Revenue.ByLeaseStatus[status].Add(amount)
		}
		report.Expenses = report.Expenses.add(expenses)

		report.Properties = append(report.Properties, PropertyFinancials{
			PropertyID: p.ID,
			Name:       p.Name,
			Revenue:    revenue.Total,
			Expenses:   expenses,
			NetIncome:  revenue.Total.Sub(expenses.Total),
		})
	}

	report.NetIncome = report.Revenue.Total.Sub(report.Expenses.Total)
	return report
}

func buildPropertiesReport(properties []model.Property, at time.Time) PropertiesReport {
	report := PropertiesReport{
		Properties:  make([]PropertyReport, 0, len(properties)),
		GeneratedAt: at,
	}

	var allUnits []model.Unit
	for _, p := range properties {
		allUnits = append(allUnits, p.Units...)

		leasable, occupied := unitAreas(p.Units)
		occupiedUnits := 0
		for _, u := range p.Units {
			if u.Status == constant.UnitStatusOccupied {
				occupiedUnits++
			}
		}
		revenue := propertyRevenue(p).Total
		expenses := propertyExpenses(p).Total

		report.Properties = append(report.Properties, PropertyReport{
			PropertyID:    p.ID,
			Name:          p.Name,
			PropertyType:  p.PropertyType,
			TotalUnits:    len(p.Units),
			OccupiedUnits: occupiedUnits,
			VacantUnits:   len(p.Units) - occupiedUnits,
			LeasableArea:  leasable,
			OccupiedArea:  occupied,
			OccupancyRate: occupancyRate(p.Units),
			Revenue:       revenue,
			Expenses:      expenses,
			NetIncome:     revenue.Sub(expenses),
		})
	}

	report.OccupancyRate = occupancyRate(allUnits)
	return report
}

func (rs ReportService) GetFinancialReports(ctx context.Context, rc *auth.RequestContext) (FinancialReport, error) {
	return read(rs.baseService, rc, "Failed to fetch financial reports", func() (FinancialReport, error) {
		properties, err := rs.repo.Report.LoadPropertyGraph(ctx, nil)
		if err != nil {
			return FinancialReport{}, err
		}
		return buildFinancialReport(properties, time.Now()), nil
	})
}

func (rs ReportService) GetPropertiesReport(ctx context.Context, rc *auth.RequestContext) (PropertiesReport, error) {
	return read(rs.baseService, rc, "Failed to fetch properties report", func() (PropertiesReport, error) {
		properties, err := rs.repo.Report.LoadPropertyGraph(ctx, nil)
		if err != nil {
			return PropertiesReport{}, err
		}
		return buildPropertiesReport(properties, time.Now()), nil
	})
}

func (rs ReportService) GetDashboardStats(ctx context.Context, rc *auth.RequestContext) (DashboardStats, error) {
	return read(rs.baseService, rc, "Failed to fetch dashboard stats", func() (DashboardStats, error) {
		counts, err := rs.repo.Report.DashboardCounts(ctx, nil)
		if err != nil {
			return DashboardStats{}, err
		}

		properties, err := rs.repo.Report.LoadPropertyGraph(ctx, nil)
		if err != nil {
			return DashboardStats{}, err
		}

		unread, err := rs.repo.Notification.CountUnread(ctx, nil, rc.ActorID)
		if err != nil {
			return DashboardStats{}, err
		}

		financials := buildFinancialReport(properties, time.Now())
		var units []model.Unit
		for _, p := range properties {
			units = append(units, p.Units...)
		}

		return DashboardStats{
			TotalProperties:         counts.Properties,
			TotalUnits:              counts.Units,
			OccupiedUnits:           counts.OccupiedUnits,
			TotalTenants:            counts.Tenants,
			ActiveLeases:            counts.ActiveLeases,
			OpenMaintenanceRequests: counts.OpenMaintenance,
			TotalRevenue:            financials.Revenue.Total,
			OutstandingTaxes:        financials.Expenses.OutstandingTaxes,
			OutstandingUtilities:    financials.Expenses.OutstandingUtilities,
			OccupancyRate:           occupancyRate(units),
			UnreadNotifications:     unread,
		}, nil
	})
}
