package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
)

type MaintenanceRequest struct {
	BaseModel
	TicketNumber string                       `gorm:"type:varchar(20);uniqueIndex;not null" json:"ticketNumber"`
	PropertyID   string                       `gorm:"type:text;not null;index" json:"propertyId"`
	UnitID       *string                      `gorm:"type:text;index" json:"unitId"`
	TenantID     *string                      `gorm:"type:text;index" json:"tenantId"`
	Title        string                       `gorm:"type:varchar(150);not null" json:"title"`
	Description  string                       `gorm:"type:text" json:"description"`
	Priority     constant.MaintenancePriority `gorm:"type:text;not null" json:"priority"`
	Status       constant.MaintenanceStatus   `gorm:"type:text;not null" json:"status"`
	AssignedToID *string                      `gorm:"type:text" json:"assignedToId"`
	CompletedAt  *time.Time                   `json:"completedAt"`

	Property *Property `gorm:"constraint:OnDelete:CASCADE" json:"property,omitempty"`
	Unit     *Unit     `gorm:"constraint:OnDelete:SET NULL" json:"unit,omitempty"`
	Tenant   *Tenant   `gorm:"constraint:OnDelete:SET NULL" json:"tenant,omitempty"`
}

func (m MaintenanceRequest) TableName() string {
	return "maintenance_requests"
}
