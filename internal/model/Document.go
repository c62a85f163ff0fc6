package model

import "github.com/SeakMengs/PropDesk/internal/constant"

// Document only stores metadata, the bytes live wherever FileURL points.
type Document struct {
	BaseModel
	Name         string                `gorm:"type:varchar(255);not null" json:"name"`
	DocumentType constant.DocumentType `gorm:"type:text;not null" json:"documentType"`
	FileURL      string                `gorm:"type:text;not null" json:"fileUrl"`
	Size         int64                 `gorm:"not null;default:0" json:"size"`
	PropertyID   *string               `gorm:"type:text;index" json:"propertyId"`
	UnitID       *string               `gorm:"type:text;index" json:"unitId"`
	TenantID     *string               `gorm:"type:text;index" json:"tenantId"`
	LeaseID      *string               `gorm:"type:text;index" json:"leaseId"`
	UploadedByID string                `gorm:"type:text;not null" json:"uploadedById"`
}

func (d Document) TableName() string {
	return "documents"
}
