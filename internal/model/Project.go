package model

import (
	"time"

	"github.com/SeakMengs/PropDesk/internal/constant"
)

type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	OwnerID string          `gorm:"type:text;not null" json:"ownerId"`
	Owner   *User           `json:"owner,omitempty"`
	Members []ProjectMember `gorm:"constraint:OnDelete:CASCADE" json:"members,omitempty"`
	Columns []Column        `gorm:"constraint:OnDelete:CASCADE" json:"columns,omitempty"`
}

func (p Project) TableName() string {
	return "projects"
}

type ProjectMember struct {
	BaseModel
	ProjectID string `gorm:"type:text;not null;uniqueIndex:idx_project_member" json:"projectId"`
	UserID    string `gorm:"type:text;not null;uniqueIndex:idx_project_member" json:"userId"`
	User      *User  `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (pm ProjectMember) TableName() string {
	return "project_members"
}

type Column struct {
	BaseModel
	ProjectID string `gorm:"type:text;not null;index" json:"projectId"`
	Title     string `gorm:"type:varchar(100);not null" json:"title"`
	Order     int    `gorm:"column:position;not null;default:0" json:"order"`
	Tasks     []Task `gorm:"constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

func (c Column) TableName() string {
	return "columns"
}

// Order is only unique within a column by convention, the database does not enforce it.
type Task struct {
	BaseModel
	ProjectID    string                `gorm:"type:text;not null;index" json:"projectId"`
	ColumnID     string                `gorm:"type:text;not null;index" json:"columnId"`
	Title        string                `gorm:"type:varchar(200);not null" json:"title"`
	Description  string                `gorm:"type:text" json:"description"`
	Priority     constant.TaskPriority `gorm:"type:text;not null" json:"priority"`
	Order        int                   `gorm:"column:position;not null;default:0" json:"order"`
	DueDate      *time.Time            `json:"dueDate"`
	AssignedToID *string               `gorm:"type:text" json:"assignedToId"`
	CreatedByID  string                `gorm:"type:text;not null" json:"createdById"`

	Project     *Project         `gorm:"constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Assignee    *User            `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL" json:"assignee,omitempty"`
	CreatedBy   *User            `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Labels      []TaskLabel      `gorm:"constraint:OnDelete:CASCADE" json:"labels,omitempty"`
	Comments    []TaskComment    `gorm:"constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Attachments []TaskAttachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
	Activities  []TaskActivity   `gorm:"constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}

func (t Task) TableName() string {
	return "tasks"
}

type TaskLabel struct {
	BaseModel
	TaskID string `gorm:"type:text;not null;uniqueIndex:idx_task_label" json:"taskId"`
	Name   string `gorm:"type:varchar(50);not null;uniqueIndex:idx_task_label" json:"name"`
}

func (tl TaskLabel) TableName() string {
	return "task_labels"
}

type TaskComment struct {
	BaseModel
	TaskID  string `gorm:"type:text;not null;index" json:"taskId"`
	UserID  string `gorm:"type:text;not null" json:"userId"`
	Content string `gorm:"type:text;not null" json:"content"`
	User    *User  `json:"user,omitempty"`
}

func (tc TaskComment) TableName() string {
	return "task_comments"
}

type TaskAttachment struct {
	BaseModel
	TaskID       string `gorm:"type:text;not null;index" json:"taskId"`
	Name         string `gorm:"type:varchar(255);not null" json:"name"`
	FileURL      string `gorm:"type:text;not null" json:"fileUrl"`
	UploadedByID string `gorm:"type:text;not null" json:"uploadedById"`
}

func (ta TaskAttachment) TableName() string {
	return "task_attachments"
}

// Append-only journal of task changes, kept separately from audit_logs.
type TaskActivity struct {
	BaseModel
	TaskID      string                    `gorm:"type:text;not null;index" json:"taskId"`
	UserID      string                    `gorm:"type:text;not null" json:"userId"`
	Type        constant.TaskActivityType `gorm:"type:text;not null" json:"type"`
	Description string                    `gorm:"type:text" json:"description"`
}

func (ta TaskActivity) TableName() string {
	return "task_activities"
}
