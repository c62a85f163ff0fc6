package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	*baseRepository
}

func (pr PaymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *model.Payment) (*model.Payment, error) {
	pr.logger.Debugf("Create payment with data: %v \n", payment)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, err
	}

	return payment, nil
}

func (pr PaymentRepository) GetById(ctx context.Context, tx *gorm.DB, paymentId string) (*model.Payment, error) {
	pr.logger.Debugf("Get payment by id: %s \n", paymentId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var payment model.Payment
	if err := db.WithContext(ctx).Model(&model.Payment{}).Where("id = ?", paymentId).First(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

func (pr PaymentRepository) Update(ctx context.Context, tx *gorm.DB, paymentId string, values map[string]any) error {
	pr.logger.Debugf("Update payment %s with values: %v \n", paymentId, values)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Payment{}, paymentId, values)
}

func (pr PaymentRepository) ListByLease(ctx context.Context, tx *gorm.DB, leaseId string) ([]model.Payment, error) {
	pr.logger.Debugf("List payments by lease id: %s \n", leaseId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var payments []model.Payment
	if err := db.WithContext(ctx).Model(&model.Payment{}).
		Where("lease_id = ?", leaseId).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	return payments, nil
}
