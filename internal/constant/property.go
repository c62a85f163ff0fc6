package constant

import (
	"fmt"
	"strings"
)

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCommercial  PropertyType = "COMMERCIAL"
	PropertyTypeMixedUse    PropertyType = "MIXED_USE"
	PropertyTypeIndustrial  PropertyType = "INDUSTRIAL"
)

type UnitStatus string

const (
	UnitStatusVacant      UnitStatus = "VACANT"
	UnitStatusOccupied    UnitStatus = "OCCUPIED"
	UnitStatusMaintenance UnitStatus = "MAINTENANCE"
	UnitStatusReserved    UnitStatus = "RESERVED"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
	TenantStatusPending  TenantStatus = "PENDING"
)

var TenantStatuses = []TenantStatus{TenantStatusActive, TenantStatusInactive, TenantStatusPending}

// ParseTenantStatus matches s case-insensitively against TenantStatuses.
func ParseTenantStatus(s string) (TenantStatus, error) {
	candidate := strings.TrimSpace(s)
	for _, status := range TenantStatuses {
		if strings.EqualFold(candidate, string(status)) {
			return status, nil
		}
	}

	allowed := make([]string, len(TenantStatuses))
	for i, status := range TenantStatuses {
		allowed[i] = string(status)
	}

	return "", fmt.Errorf("invalid tenant status %q, must be one of: %s", s, strings.Join(allowed, ", "))
}

type LeaseStatus string

const (
	LeaseStatusDraft      LeaseStatus = "DRAFT"
	LeaseStatusActive     LeaseStatus = "ACTIVE"
	LeaseStatusExpired    LeaseStatus = "EXPIRED"
	LeaseStatusTerminated LeaseStatus = "TERMINATED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type UtilityType string

const (
	UtilityTypeElectricity UtilityType = "ELECTRICITY"
	UtilityTypeWater       UtilityType = "WATER"
	UtilityTypeGas         UtilityType = "GAS"
	UtilityTypeInternet    UtilityType = "INTERNET"
	UtilityTypeWaste       UtilityType = "WASTE"
	UtilityTypeOther       UtilityType = "OTHER"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusCompleted  MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled  MaintenanceStatus = "CANCELLED"
)

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "LOW"
	MaintenancePriorityMedium MaintenancePriority = "MEDIUM"
	MaintenancePriorityHigh   MaintenancePriority = "HIGH"
	MaintenancePriorityUrgent MaintenancePriority = "URGENT"
)

type DocumentType string

const (
	DocumentTypeLease    DocumentType = "LEASE"
	DocumentTypeInvoice  DocumentType = "INVOICE"
	DocumentTypeContract DocumentType = "CONTRACT"
	DocumentTypePermit   DocumentType = "PERMIT"
	DocumentTypeOther    DocumentType = "OTHER"
)
