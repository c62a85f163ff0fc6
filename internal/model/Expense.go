package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/shopspring/decimal"
)

type PropertyTax struct {
	BaseModel
	PropertyID string          `gorm:"type:text;not null;index" json:"propertyId"`
	UnitID     *string         `gorm:"type:text;index" json:"unitId"`
	TaxYear    int             `gorm:"not null" json:"taxYear"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	DueDate    time.Time       `gorm:"not null" json:"dueDate"`
	IsPaid     bool            `gorm:"not null;default:false" json:"isPaid"`
	Notes      string          `gorm:"type:text" json:"notes"`

	Property *Property `json:"property,omitempty"`
	Unit     *Unit     `gorm:"constraint:OnDelete:SET NULL" json:"unit,omitempty"`
}

func (pt PropertyTax) TableName() string {
	return "property_taxes"
}

type Utility struct {
	BaseModel
	PropertyID    string               `gorm:"type:text;not null;index" json:"propertyId"`
	UnitID        *string              `gorm:"type:text;index" json:"unitId"`
	UtilityType   constant.UtilityType `gorm:"type:text;not null" json:"utilityType"`
	BillingPeriod string               `gorm:"type:varchar(20);not null" json:"billingPeriod"`
	Amount        decimal.Decimal      `gorm:"type:numeric(14,2);not null" json:"amount"`
	DueDate       time.Time            `gorm:"not null" json:"dueDate"`
	IsPaid        bool                 `gorm:"not null;default:false" json:"isPaid"`

	Property *Property `json:"property,omitempty"`
	Unit     *Unit     `gorm:"constraint:OnDelete:SET NULL" json:"unit,omitempty"`
}

func (u Utility) TableName() string {
	return "utilities"
}
