package constant

type NotificationType string

const (
	NotificationTypeTaskCreated  NotificationType = "TASK_CREATED"
	NotificationTypeTaskAssigned NotificationType = "TASK_ASSIGNED"
	NotificationTypeTenant       NotificationType = "TENANT"
	NotificationTypeLease        NotificationType = "LEASE"
	NotificationTypeMaintenance  NotificationType = "MAINTENANCE"
	NotificationTypePayment      NotificationType = "PAYMENT"
	NotificationTypeSystem       NotificationType = "SYSTEM"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "LOW"
	NotificationPriorityMedium NotificationPriority = "MEDIUM"
	NotificationPriorityHigh   NotificationPriority = "HIGH"
	NotificationPriorityUrgent NotificationPriority = "URGENT"
)

// Notifications at or above HIGH are also sent by mail
func (p NotificationPriority) ShouldMail() bool {
	return p == NotificationPriorityHigh || p == NotificationPriorityUrgent
}
