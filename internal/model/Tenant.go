package model

import "github.com/SeakMengs/PropDesk/internal/constant"

type Tenant struct {
	BaseModel
	FirstName        string                `gorm:"type:varchar(50);not null" json:"firstName"`
	LastName         string                `gorm:"type:varchar(50);not null" json:"lastName"`
	Email            string                `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Phone            string                `gorm:"type:varchar(30)" json:"phone"`
	Company          string                `gorm:"type:varchar(150)" json:"company"`
	Status           constant.TenantStatus `gorm:"type:text;not null" json:"status"`
	EmergencyContact string                `gorm:"type:text" json:"emergencyContact"`
	Notes            string                `gorm:"type:text" json:"notes"`

	Leases []Lease `gorm:"constraint:OnDelete:CASCADE" json:"leases,omitempty"`
}

func (t Tenant) TableName() string {
	return "tenants"
}
