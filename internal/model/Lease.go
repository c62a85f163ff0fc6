package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/shopspring/decimal"
)

type Lease struct {
	BaseModel
	UnitID          string               `gorm:"type:text;not null;index" json:"unitId"`
	TenantID        string               `gorm:"type:text;not null;index" json:"tenantId"`
	StartDate       time.Time            `gorm:"not null" json:"startDate"`
	EndDate         time.Time            `gorm:"not null" json:"endDate"`
	MonthlyRent     decimal.Decimal      `gorm:"type:numeric(14,2);not null" json:"monthlyRent"`
	SecurityDeposit decimal.Decimal      `gorm:"type:numeric(14,2);not null;default:0" json:"securityDeposit"`
	Status          constant.LeaseStatus `gorm:"type:text;not null" json:"status"`

	Unit     *Unit     `json:"unit,omitempty"`
	Tenant   *Tenant   `json:"tenant,omitempty"`
	Payments []Payment `gorm:"constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (l Lease) TableName() string {
	return "leases"
}

type Payment struct {
	BaseModel
	LeaseID   string                 `gorm:"type:text;not null;index" json:"leaseId"`
	Amount    decimal.Decimal        `gorm:"type:numeric(14,2);not null" json:"amount"`
	Status    constant.PaymentStatus `gorm:"type:text;not null" json:"status"`
	Method    string                 `gorm:"type:varchar(50)" json:"method"`
	Reference string                 `gorm:"type:text" json:"reference"`
	PaidAt    *time.Time             `json:"paidAt"`
}

func (p Payment) TableName() string {
	return "payments"
}
