package constant

type EntityType string

const (
	EntityTypeTask         EntityType = "TASK"
	EntityTypeProject      EntityType = "PROJECT"
	EntityTypeColumn       EntityType = "COLUMN"
	EntityTypeTenant       EntityType = "TENANT"
	EntityTypeProperty     EntityType = "PROPERTY"
	EntityTypeUnit         EntityType = "UNIT"
	EntityTypeLease        EntityType = "LEASE"
	EntityTypePayment      EntityType = "PAYMENT"
	EntityTypePropertyTax  EntityType = "PROPERTY_TAX"
	EntityTypeUtility      EntityType = "UTILITY"
	EntityTypeMaintenance  EntityType = "MAINTENANCE"
	EntityTypeDocument     EntityType = "DOCUMENT"
	EntityTypeNotification EntityType = "NOTIFICATION"
	EntityTypeFile         EntityType = "FILE"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)
