package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	*baseRepository

	// DB can be used for transaction. Prefer Repository.Transaction which rolls back on error and panic.
	DB           *gorm.DB
	User         *UserRepository
	Property     *PropertyRepository
	Unit         *UnitRepository
	Tenant       *TenantRepository
	Lease        *LeaseRepository
	Payment      *PaymentRepository
	PropertyTax  *PropertyTaxRepository
	Utility      *UtilityRepository
	Maintenance  *MaintenanceRepository
	Document     *DocumentRepository
	Project      *ProjectRepository
	Column       *ColumnRepository
	Task         *TaskRepository
	AuditLog     *AuditLogRepository
	Notification *NotificationRepository
	File         *FileRepository
	Report       *ReportRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		baseRepository: br,
		DB:             db,
		User:           &UserRepository{baseRepository: br},
		Property:       &PropertyRepository{baseRepository: br},
		Unit:           &UnitRepository{baseRepository: br},
		Tenant:         &TenantRepository{baseRepository: br},
		Lease:          &LeaseRepository{baseRepository: br},
		Payment:        &PaymentRepository{baseRepository: br},
		PropertyTax:    &PropertyTaxRepository{baseRepository: br},
		Utility:        &UtilityRepository{baseRepository: br},
		Maintenance:    &MaintenanceRepository{baseRepository: br},
		Document:       &DocumentRepository{baseRepository: br},
		Project:        &ProjectRepository{baseRepository: br},
		Column:         &ColumnRepository{baseRepository: br},
		Task:           &TaskRepository{baseRepository: br},
		AuditLog:       &AuditLogRepository{baseRepository: br},
		Notification:   &NotificationRepository{baseRepository: br},
		File:           &FileRepository{baseRepository: br},
		Report:         &ReportRepository{baseRepository: br},
	}
}

// Transaction runs fn inside a single database transaction. Any error returned by fn
// (or a panic) rolls back every write made through tx.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.withTx(r.db.WithContext(ctx), fn)
}

// Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Debugf("withTx Transaction rolled back: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

// Offset and limit for a 1-based page
func paginate(page, pageSize uint) (int, int) {
	if page == 0 {
		page = 1
	}
	return int((page - 1) * pageSize), int(pageSize)
}

// Deletes by primary key and reports gorm.ErrRecordNotFound when nothing matched
func deleteByID(ctx context.Context, db *gorm.DB, model any, id string) error {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Updates columns by primary key and reports gorm.ErrRecordNotFound when nothing matched
func updateByID(ctx context.Context, db *gorm.DB, model any, id string, values map[string]any) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
