package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	*baseRepository
}

func (nr NotificationRepository) Create(ctx context.Context, tx *gorm.DB, notification *model.Notification) (*model.Notification, error) {
	nr.logger.Debugf("Create notification with data: %v \n", notification)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}

	return notification, nil
}

func (nr NotificationRepository) ListForUser(ctx context.Context, tx *gorm.DB, userId string, unreadOnly bool, page, pageSize uint) ([]model.Notification, int64, error) {
	nr.logger.Debugf("List notifications for user: %s, unreadOnly: %t \n", userId, unreadOnly)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userId)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var notifications []model.Notification
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (nr NotificationRepository) CountUnread(ctx context.Context, tx *gorm.DB, userId string) (int64, error) {
	nr.logger.Debugf("Count unread notifications for user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// Only flips is_read, and only on a row owned by userId
func (nr NotificationRepository) MarkRead(ctx context.Context, tx *gorm.DB, notificationId, userId string) error {
	nr.logger.Debugf("Mark notification %s read for user %s \n", notificationId, userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationId, userId).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (nr NotificationRepository) MarkAllRead(ctx context.Context, tx *gorm.DB, userId string) (int64, error) {
	nr.logger.Debugf("Mark all notifications read for user %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
