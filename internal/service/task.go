package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"gorm.io/gorm"
)

type TaskService struct {
	*baseService
}

type TaskInput struct {
	ProjectID    string                `json:"projectId" form:"projectId" validate:"required"`
	ColumnID     string                `json:"columnId" form:"columnId" validate:"required"`
	Title        string                `json:"title" form:"title" validate:"strNotEmpty,cmax=200"`
	Description  string                `json:"description" form:"description"`
	Priority     constant.TaskPriority `json:"priority" form:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate      *time.Time            `json:"dueDate" form:"dueDate"`
	AssignedToID *string               `json:"assignedToId" form:"assignedToId"`
	Labels       []string              `json:"labels" form:"labels" validate:"dive,strNotEmpty,cmax=50"`
}

type TaskUpdateInput struct {
	Title        string                `json:"title" form:"title" validate:"strNotEmpty,cmax=200"`
	Description  string                `json:"description" form:"description"`
	Priority     constant.TaskPriority `json:"priority" form:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT"`
	DueDate      *time.Time            `json:"dueDate" form:"dueDate"`
	AssignedToID *string               `json:"assignedToId" form:"assignedToId"`
}

type AssignTaskInput struct {
	AssignedToID *string `json:"assignedToId" form:"assignedToId"`
}

type TaskOrderInput struct {
	Tasks []repository.TaskPosition `json:"tasks" form:"tasks" validate:"required,min=1,dive"`
}

type TaskCommentInput struct {
	Content string `json:"content" form:"content" validate:"strNotEmpty"`
}

type TaskAttachmentInput struct {
	Name    string `json:"name" form:"name" validate:"strNotEmpty,cmax=255"`
	FileURL string `json:"fileUrl" form:"fileUrl" validate:"required,url"`
}

type TaskLabelInput struct {
	Name string `json:"name" form:"name" validate:"strNotEmpty,cmax=50"`
}

var taskPaths = []string{apiPath("tasks"), apiPath("projects")}

func taskURL(t *model.Task) string {
	return actionURL("projects", t.ProjectID, "tasks", t.ID)
}

func sameAssignee(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func uniqueLabels(names []string) []model.TaskLabel {
	seen := make(map[string]bool, len(names))
	labels := make([]model.TaskLabel, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			labels = append(labels, model.TaskLabel{Name: name})
		}
	}
	return labels
}

// Missing users are reported on the assignedToId field
func (ts TaskService) checkAssignee(ctx context.Context, tx *gorm.DB, assigneeId *string) error {
	if assigneeId == nil {
		return nil
	}
	if _, err := ts.repo.User.GetById(ctx, tx, *assigneeId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fieldError("assignedToId", "Assignee does not exist")
		}
		return err
	}
	return nil
}

func (ts TaskService) addActivity(ctx context.Context, tx *gorm.DB, taskId, userId string, activityType constant.TaskActivityType, description string) error {
	_, err := ts.repo.Task.AddActivity(ctx, tx, &model.TaskActivity{
		TaskID:      taskId,
		UserID:      userId,
		Type:        activityType,
		Description: description,
	})
	return err
}

// Notifies assigneeId of the assignment unless the actor assigned themselves
func assignmentDrafts(actorId string, t *model.Task) []notificationDraft {
	if t.AssignedToID == nil || *t.AssignedToID == actorId {
		return nil
	}
	return []notificationDraft{{
		UserID:    *t.AssignedToID,
		Title:     "Task assigned to you",
		Message:   fmt.Sprintf("You were assigned to %q", t.Title),
		Type:      constant.NotificationTypeTaskAssigned,
		Priority:  constant.NotificationPriority(t.Priority),
		ActionURL: taskURL(t),
	}}
}

// The task goes to the bottom of its column. Every project member is notified, and
// the assignee additionally when it is not the creator.
func (ts TaskService) CreateTask(ctx context.Context, rc *auth.RequestContext, in TaskInput) (*model.Task, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Task]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Task, error) {
			if _, err := ts.repo.Project.GetById(ctx, tx, in.ProjectID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("project %s: %w", in.ProjectID, ErrNotFound)
				}
				return nil, err
			}

			column, err := ts.repo.Column.GetById(ctx, tx, in.ColumnID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			if column == nil || column.ProjectID != in.ProjectID {
				return nil, fieldError("columnId", "Column does not belong to the project")
			}

			if err := ts.checkAssignee(ctx, tx, in.AssignedToID); err != nil {
				return nil, err
			}

			order, err := ts.repo.Task.NextOrder(ctx, tx, in.ColumnID)
			if err != nil {
				return nil, err
			}

			task, err := ts.repo.Task.Create(ctx, tx, &model.Task{
				ProjectID:    in.ProjectID,
				ColumnID:     in.ColumnID,
				Title:        in.Title,
				Description:  in.Description,
				Priority:     in.Priority,
				Order:        order,
				DueDate:      in.DueDate,
				AssignedToID: in.AssignedToID,
				CreatedByID:  rc.ActorID,
				Labels:       uniqueLabels(in.Labels),
			})
			if err != nil {
				return nil, err
			}

			if err := ts.addActivity(ctx, tx, task.ID, rc.ActorID, constant.TaskActivityCreated, "Created the task"); err != nil {
				return nil, err
			}
			if task.AssignedToID != nil {
				if err := ts.addActivity(ctx, tx, task.ID, rc.ActorID, constant.TaskActivityAssigned, "Assigned the task"); err != nil {
					return nil, err
				}
			}

			return ts.repo.Task.GetById(ctx, tx, task.ID)
		},
		entityID: func(t *model.Task) string { return t.ID },
		metadata: func(t *model.Task) any { return map[string]any{"projectId": t.ProjectID} },
		recipients: func(ctx context.Context, t *model.Task) ([]notificationDraft, error) {
			memberIds, err := ts.repo.Project.MemberIds(ctx, nil, t.ProjectID)
			if err != nil {
				return nil, err
			}

			drafts := make([]notificationDraft, 0, len(memberIds)+1)
			for _, id := range memberIds {
				drafts = append(drafts, notificationDraft{
					UserID:    id,
					Title:     "New task created",
					Message:   fmt.Sprintf("%q was added to the board", t.Title),
					Type:      constant.NotificationTypeTaskCreated,
					Priority:  constant.NotificationPriorityMedium,
					ActionURL: taskURL(t),
				})
			}
			return append(drafts, assignmentDrafts(t.CreatedByID, t)...), nil
		},
		paths:       taskPaths,
		failMessage: "Failed to create task",
	})
}

// Records UPDATED, and ASSIGNED when the assignee changed. Only a new assignee is notified.
func (ts TaskService) UpdateTask(ctx context.Context, rc *auth.RequestContext, taskId string, in TaskUpdateInput) (*model.Task, error) {
	var assigneeChanged bool

	return runMutation(ctx, ts.baseService, rc, mutation[*model.Task]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Task, error) {
			existing, err := ts.repo.Task.GetById(ctx, tx, taskId)
			if err != nil {
				return nil, err
			}
			if err := ts.checkAssignee(ctx, tx, in.AssignedToID); err != nil {
				return nil, err
			}

			if err := ts.repo.Task.Update(ctx, tx, taskId, map[string]any{
				"title":          in.Title,
				"description":    in.Description,
				"priority":       in.Priority,
				"due_date":       in.DueDate,
				"assigned_to_id": in.AssignedToID,
			}); err != nil {
				return nil, err
			}

			if err := ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityUpdated, "Updated the task"); err != nil {
				return nil, err
			}

			assigneeChanged = !sameAssignee(existing.AssignedToID, in.AssignedToID)
			if assigneeChanged {
				if err := ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityAssigned, "Changed the assignee"); err != nil {
					return nil, err
				}
			}

			return ts.repo.Task.GetById(ctx, tx, taskId)
		},
		entityID: func(t *model.Task) string { return t.ID },
		recipients: func(ctx context.Context, t *model.Task) ([]notificationDraft, error) {
			if !assigneeChanged {
				return nil, nil
			}
			return assignmentDrafts(rc.ActorID, t), nil
		},
		paths:       taskPaths,
		failMessage: "Failed to update task",
	})
}

// A nil assignee unassigns the task
func (ts TaskService) AssignTask(ctx context.Context, rc *auth.RequestContext, taskId string, in AssignTaskInput) (*model.Task, error) {
	var assigneeChanged bool

	return runMutation(ctx, ts.baseService, rc, mutation[*model.Task]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Task, error) {
			existing, err := ts.repo.Task.GetById(ctx, tx, taskId)
			if err != nil {
				return nil, err
			}
			if err := ts.checkAssignee(ctx, tx, in.AssignedToID); err != nil {
				return nil, err
			}

			assigneeChanged = !sameAssignee(existing.AssignedToID, in.AssignedToID)
			if !assigneeChanged {
				return existing, nil
			}

			if err := ts.repo.Task.Update(ctx, tx, taskId, map[string]any{"assigned_to_id": in.AssignedToID}); err != nil {
				return nil, err
			}

			description := "Unassigned the task"
			if in.AssignedToID != nil {
				description = "Assigned the task"
			}
			if err := ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityAssigned, description); err != nil {
				return nil, err
			}

			return ts.repo.Task.GetById(ctx, tx, taskId)
		},
		entityID: func(t *model.Task) string { return t.ID },
		recipients: func(ctx context.Context, t *model.Task) ([]notificationDraft, error) {
			if !assigneeChanged {
				return nil, nil
			}
			return assignmentDrafts(rc.ActorID, t), nil
		},
		paths:       taskPaths,
		failMessage: "Failed to assign task",
	})
}

func (ts TaskService) DeleteTask(ctx context.Context, rc *auth.RequestContext, taskId string) (*model.Task, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Task]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Task, error) {
			task, err := ts.repo.Task.GetById(ctx, tx, taskId)
			if err != nil {
				return nil, err
			}
			return task, ts.repo.Task.Delete(ctx, tx, taskId)
		},
		entityID:    func(t *model.Task) string { return t.ID },
		metadata:    func(t *model.Task) any { return map[string]any{"projectId": t.ProjectID, "title": t.Title} },
		paths:       taskPaths,
		failMessage: "Failed to delete task",
	})
}

// Applies every position or none. Target columns must belong to the project and a task
// outside the project aborts the batch. Concurrent reorders are last write wins.
func (ts TaskService) UpdateTaskOrder(ctx context.Context, rc *auth.RequestContext, projectId string, in TaskOrderInput) ([]repository.TaskPosition, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[[]repository.TaskPosition]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) ([]repository.TaskPosition, error) {
			columnIds, err := ts.repo.Column.IdsByProject(ctx, tx, projectId)
			if err != nil {
				return nil, err
			}
			if len(columnIds) == 0 {
				if _, err := ts.repo.Project.GetById(ctx, tx, projectId); err != nil {
					return nil, err
				}
			}

			inProject := make(map[string]bool, len(columnIds))
			for _, id := range columnIds {
				inProject[id] = true
			}
			for _, p := range in.Tasks {
				if !inProject[p.ColumnID] {
					return nil, fieldError("columnId", fmt.Sprintf("Column %s does not belong to the project", p.ColumnID))
				}
			}

			if err := ts.repo.Task.UpdatePositions(ctx, tx, projectId, in.Tasks); err != nil {
				return nil, err
			}
			return in.Tasks, nil
		},
		entityID:    func([]repository.TaskPosition) string { return projectId },
		metadata:    func(p []repository.TaskPosition) any { return map[string]any{"count": len(p)} },
		paths:       taskPaths,
		failMessage: "Failed to update task order",
	})
}

func (ts TaskService) AddTaskComment(ctx context.Context, rc *auth.RequestContext, taskId string, in TaskCommentInput) (*model.TaskComment, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.TaskComment]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.TaskComment, error) {
			if _, err := ts.repo.Task.GetById(ctx, tx, taskId); err != nil {
				return nil, err
			}
			comment, err := ts.repo.Task.AddComment(ctx, tx, &model.TaskComment{
				TaskID:  taskId,
				UserID:  rc.ActorID,
				Content: in.Content,
			})
			if err != nil {
				return nil, err
			}
			return comment, ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityCommented, "Commented on the task")
		},
		entityID:    func(c *model.TaskComment) string { return c.TaskID },
		metadata:    func(c *model.TaskComment) any { return map[string]any{"commentId": c.ID} },
		paths:       taskPaths,
		failMessage: "Failed to add comment",
	})
}

func (ts TaskService) AddTaskAttachment(ctx context.Context, rc *auth.RequestContext, taskId string, in TaskAttachmentInput) (*model.TaskAttachment, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.TaskAttachment]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.TaskAttachment, error) {
			if _, err := ts.repo.Task.GetById(ctx, tx, taskId); err != nil {
				return nil, err
			}
			attachment, err := ts.repo.Task.AddAttachment(ctx, tx, &model.TaskAttachment{
				TaskID:       taskId,
				Name:         in.Name,
				FileURL:      in.FileURL,
				UploadedByID: rc.ActorID,
			})
			if err != nil {
				return nil, err
			}
			return attachment, ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityAttachmentAdded, fmt.Sprintf("Attached %s", in.Name))
		},
		entityID:    func(a *model.TaskAttachment) string { return a.TaskID },
		metadata:    func(a *model.TaskAttachment) any { return map[string]any{"attachmentId": a.ID} },
		paths:       taskPaths,
		failMessage: "Failed to add attachment",
	})
}

func (ts TaskService) AddTaskLabel(ctx context.Context, rc *auth.RequestContext, taskId string, in TaskLabelInput) (*model.TaskLabel, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.TaskLabel]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.TaskLabel, error) {
			if _, err := ts.repo.Task.GetById(ctx, tx, taskId); err != nil {
				return nil, err
			}
			label, err := ts.repo.Task.AddLabel(ctx, tx, &model.TaskLabel{TaskID: taskId, Name: in.Name})
			if err != nil {
				return nil, err
			}
			return label, ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityLabelAdded, fmt.Sprintf("Added label %s", in.Name))
		},
		entityID:    func(l *model.TaskLabel) string { return l.TaskID },
		paths:       taskPaths,
		failMessage: "Failed to add label",
	})
}

func (ts TaskService) RemoveTaskLabel(ctx context.Context, rc *auth.RequestContext, taskId, name string) (*model.Task, error) {
	return runMutation(ctx, ts.baseService, rc, mutation[*model.Task]{
		entityType:    constant.EntityTypeTask,
		action:        constant.AuditActionUpdate,
		changes:       map[string]any{"removedLabel": name},
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Task, error) {
			if err := ts.repo.Task.RemoveLabel(ctx, tx, taskId, name); err != nil {
				return nil, err
			}
			if err := ts.addActivity(ctx, tx, taskId, rc.ActorID, constant.TaskActivityLabelRemoved, fmt.Sprintf("Removed label %s", name)); err != nil {
				return nil, err
			}
			return ts.repo.Task.GetById(ctx, tx, taskId)
		},
		entityID:    func(t *model.Task) string { return t.ID },
		paths:       taskPaths,
		failMessage: "Failed to remove label",
	})
}

func (ts TaskService) GetTaskByID(ctx context.Context, rc *auth.RequestContext, taskId string) (*model.Task, error) {
	return read(ts.baseService, rc, "Failed to fetch task", func() (*model.Task, error) {
		return ts.repo.Task.GetById(ctx, nil, taskId)
	})
}

// Newest first
func (ts TaskService) GetTaskActivities(ctx context.Context, rc *auth.RequestContext, taskId string) ([]model.TaskActivity, error) {
	return read(ts.baseService, rc, "Failed to fetch task activities", func() ([]model.TaskActivity, error) {
		if _, err := ts.repo.Task.GetById(ctx, nil, taskId); err != nil {
			return nil, err
		}
		return ts.repo.Task.ListActivities(ctx, nil, taskId)
	})
}
