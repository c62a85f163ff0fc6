package model

import (
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/shopspring/decimal"
)

type Property struct {
	BaseModel
	Name         string                `gorm:"type:varchar(150);not null" json:"name"`
	Address      string                `gorm:"type:text;not null" json:"address"`
	City         string                `gorm:"type:varchar(100)" json:"city"`
	PropertyType constant.PropertyType `gorm:"type:text;not null" json:"propertyType"`
	Description  string                `gorm:"type:text" json:"description"`
	TotalArea    decimal.Decimal       `gorm:"type:numeric(14,2);not null;default:0" json:"totalArea"`

	Units         []Unit        `gorm:"constraint:OnDelete:CASCADE" json:"units,omitempty"`
	PropertyTaxes []PropertyTax `gorm:"constraint:OnDelete:CASCADE" json:"propertyTaxes,omitempty"`
	Utilities     []Utility     `gorm:"constraint:OnDelete:CASCADE" json:"utilities,omitempty"`
}

func (p Property) TableName() string {
	return "properties"
}

type Unit struct {
	BaseModel
	PropertyID string              `gorm:"type:text;not null;index" json:"propertyId"`
	UnitNumber string              `gorm:"type:varchar(50);not null" json:"unitNumber"`
	Floor      int                 `gorm:"not null;default:0" json:"floor"`
	Area       decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0" json:"area"`
	Rent       decimal.Decimal     `gorm:"type:numeric(14,2);not null;default:0" json:"rent"`
	Status     constant.UnitStatus `gorm:"type:text;not null" json:"status"`

	Property *Property `json:"property,omitempty"`
	Leases   []Lease   `gorm:"constraint:OnDelete:CASCADE" json:"leases,omitempty"`
}

func (u Unit) TableName() string {
	return "units"
}
