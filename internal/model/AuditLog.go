package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog rows are written once and never updated or deleted by the application.
type AuditLog struct {
	ID         string               `gorm:"type:text;primaryKey" json:"id"`
	EntityID   string               `gorm:"type:text;not null;index:idx_audit_entity" json:"entityId"`
	EntityType constant.EntityType  `gorm:"type:text;not null;index:idx_audit_entity" json:"entityType"`
	Action     constant.AuditAction `gorm:"type:text;not null" json:"action"`
	UserID     string               `gorm:"type:text;not null;index" json:"userId"`
	Changes    datatypes.JSON       `json:"changes"`
	Metadata   datatypes.JSON       `json:"metadata"`
	IPAddress  string               `gorm:"type:varchar(64)" json:"ipAddress"`
	UserAgent  string               `gorm:"type:text" json:"userAgent"`
	CreatedAt  time.Time            `gorm:"not null;index" json:"createdAt"`
}

func (al AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) (err error) {
	if al.ID == "" {
		al.ID = uuid.NewString()
	}
	return
}
