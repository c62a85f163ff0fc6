package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type ReportRepository struct {
	*baseRepository
}

type DashboardCounts struct {
	Properties      int64
	Units           int64
	OccupiedUnits   int64
	Tenants         int64
	ActiveLeases    int64
	OpenMaintenance int64
}

// Loads every property with units, leases, payments, taxes and utilities.
// The whole graph is held in memory, reports fold over it afterwards.
func (rr ReportRepository) LoadPropertyGraph(ctx context.Context, tx *gorm.DB) ([]model.Property, error) {
	rr.logger.Debug("Load property graph for report")

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var properties []model.Property
	if err := db.WithContext(ctx).Model(&model.Property{}).
		Preload("Units").
		Preload("Units.Leases").
		Preload("Units.Leases.Payments").
		Preload("PropertyTaxes").
		Preload("Utilities").
		Order("name asc").
		Find(&properties).Error; err != nil {
		return nil, err
	}

	return properties, nil
}

func (rr ReportRepository) DashboardCounts(ctx context.Context, tx *gorm.DB) (DashboardCounts, error) {
	rr.logger.Debug("Count dashboard stats")

	db := rr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var counts DashboardCounts
	queries := []struct {
		model any
		dest  *int64
		where []any
	}{
		{&model.Property{}, &counts.Properties, nil},
		{&model.Unit{}, &counts.Units, nil},
		{&model.Unit{}, &counts.OccupiedUnits, []any{"status = ?", constant.UnitStatusOccupied}},
		{&model.Tenant{}, &counts.Tenants, nil},
		{&model.Lease{}, &counts.ActiveLeases, []any{"status = ?", constant.LeaseStatusActive}},
		{&model.MaintenanceRequest{}, &counts.OpenMaintenance, []any{"status IN ?", []constant.MaintenanceStatus{constant.MaintenanceStatusOpen, constant.MaintenanceStatusInProgress}}},
	}

	for _, q := range queries {
		query := db.WithContext(ctx).Model(q.model)
		if len(q.where) > 0 {
			query = query.Where(q.where[0], q.where[1:]...)
		}
		if err := query.Count(q.dest).Error; err != nil {
			return counts, err
		}
	}

	return counts, nil
}
