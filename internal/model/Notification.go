package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID         string                        `gorm:"type:text;primaryKey" json:"id"`
	UserID     string                        `gorm:"type:text;not null;index" json:"userId"`
	Title      string                        `gorm:"type:varchar(200);not null" json:"title"`
	Message    string                        `gorm:"type:text;not null" json:"message"`
	Type       constant.NotificationType     `gorm:"type:text;not null" json:"type"`
	Priority   constant.NotificationPriority `gorm:"type:text;not null;default:MEDIUM" json:"priority"`
	EntityID   *string                       `gorm:"type:text" json:"entityId"`
	EntityType *constant.EntityType          `gorm:"type:text" json:"entityType"`
	ActionURL  string                        `gorm:"type:text" json:"actionUrl"`
	IsRead     bool                          `gorm:"not null;default:false" json:"isRead"`
	CreatedAt  time.Time                     `gorm:"not null;index" json:"createdAt"`
}

func (n Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return
}
