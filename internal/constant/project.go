package constant

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

type TaskActivityType string

const (
	TaskActivityCreated         TaskActivityType = "CREATED"
	TaskActivityUpdated         TaskActivityType = "UPDATED"
	TaskActivityMoved           TaskActivityType = "MOVED"
	TaskActivityAssigned        TaskActivityType = "ASSIGNED"
	TaskActivityCommented       TaskActivityType = "COMMENTED"
	TaskActivityAttachmentAdded TaskActivityType = "ATTACHMENT_ADDED"
	TaskActivityLabelAdded      TaskActivityType = "LABEL_ADDED"
	TaskActivityLabelRemoved    TaskActivityType = "LABEL_REMOVED"
)

// Columns created together with every new project
var DefaultProjectColumns = []string{"To Do", "In Progress", "Done"}
