package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (bm *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4, unless the caller already picked one
	if bm.ID == "" {
		bm.ID = uuid.NewString()
	}
	return
}

// All models in migration order
func All() []any {
	return []any{
		&User{},
		&Property{},
		&Unit{},
		&Tenant{},
		&Lease{},
		&Payment{},
		&PropertyTax{},
		&Utility{},
		&MaintenanceRequest{},
		&Document{},
		&Project{},
		&ProjectMember{},
		&Column{},
		&Task{},
		&TaskLabel{},
		&TaskComment{},
		&TaskAttachment{},
		&TaskActivity{},
		&AuditLog{},
		&Notification{},
		&File{},
	}
}
