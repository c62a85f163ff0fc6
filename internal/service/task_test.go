package service

import (
	"context"
	"testing"

	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Project owned by user 0 with every other seeded user as member
func (f *fixture) createProject(t *testing.T) *model.Project {
	t.Helper()

	memberIds := make([]string, 0, len(f.users)-1)
	for _, u := range f.users[1:] {
		memberIds = append(memberIds, u.ID)
	}

	project, err := f.svc.Project.CreateProject(context.Background(), f.as(0), ProjectInput{
		Name:      "Renovation",
		MemberIDs: memberIds,
	})
	require.NoError(t, err)
	require.Len(t, project.Columns, len(constant.DefaultProjectColumns))
	return project
}

func (f *fixture) createTask(t *testing.T, project *model.Project, columnId, title string, assignee *string) *model.Task {
	t.Helper()

	task, err := f.svc.Task.CreateTask(context.Background(), f.as(0), TaskInput{
		ProjectID:    project.ID,
		ColumnID:     columnId,
		Title:        title,
		Priority:     constant.TaskPriorityHigh,
		AssignedToID: assignee,
	})
	require.NoError(t, err)
	return task
}

func (f *fixture) reloadTask(t *testing.T, id string) model.Task {
	t.Helper()

	var task model.Task
	require.NoError(t, f.db.First(&task, "id = ?", id).Error)
	return task
}

func TestCreateProjectAddsOwnerAndDefaultColumns(t *testing.T) {
	f := newFixture(t, 3)

	project := f.createProject(t)

	assert.Equal(t, f.users[0].ID, project.OwnerID)
	assert.EqualValues(t, 3, f.count(t, &model.ProjectMember{}, "project_id = ?", project.ID))
	for i, column := range project.Columns {
		assert.Equal(t, constant.DefaultProjectColumns[i], column.Title)
		assert.Equal(t, i, column.Order)
	}
}

func TestCreateProjectRejectsUnknownMembers(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Project.CreateProject(context.Background(), f.as(0), ProjectInput{
		Name:      "Renovation",
		MemberIDs: []string{"ghost"},
	})
	require.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, f.count(t, &model.Project{}))
	assert.Zero(t, f.count(t, &model.Column{}))
}

func TestCreateTaskNotifications(t *testing.T) {
	tests := []struct {
		name     string
		assignee func(f *fixture) *string
		assigned int64
	}{
		{name: "unassigned", assignee: func(*fixture) *string { return nil }},
		{name: "assigned to creator", assignee: func(f *fixture) *string { return &f.users[0].ID }},
		{name: "assigned to member", assignee: func(f *fixture) *string { return &f.users[1].ID }, assigned: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 3)
			project := f.createProject(t)

			task := f.createTask(t, project, project.Columns[0].ID, "Paint lobby", tt.assignee(f))

			assert.EqualValues(t, 1, f.count(t, &model.AuditLog{}, "entity_type = ? AND entity_id = ?", constant.EntityTypeTask, task.ID))
			assert.EqualValues(t, 3, f.count(t, &model.Notification{}, "type = ?", constant.NotificationTypeTaskCreated))
			assert.Equal(t, tt.assigned, f.count(t, &model.Notification{}, "type = ?", constant.NotificationTypeTaskAssigned))

			if tt.assigned > 0 {
				var n model.Notification
				require.NoError(t, f.db.First(&n, "type = ?", constant.NotificationTypeTaskAssigned).Error)
				assert.Equal(t, f.users[1].ID, n.UserID)
				assert.Equal(t, constant.NotificationPriorityHigh, n.Priority)
			}
		})
	}
}

func TestCreateTaskAppendsToColumn(t *testing.T) {
	f := newFixture(t, 1)
	project := f.createProject(t)
	column := project.Columns[0].ID

	first := f.createTask(t, project, column, "First", nil)
	second := f.createTask(t, project, column, "Second", nil)
	other := f.createTask(t, project, project.Columns[1].ID, "Elsewhere", nil)

	assert.Equal(t, 0, first.Order)
	assert.Equal(t, 1, second.Order)
	assert.Equal(t, 0, other.Order)

	activities, err := f.svc.Task.GetTaskActivities(context.Background(), f.as(0), first.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, constant.TaskActivityCreated, activities[0].Type)
}

func TestCreateTaskRejectsForeignColumn(t *testing.T) {
	f := newFixture(t, 1)
	project := f.createProject(t)
	other := f.createProject(t)

	_, err := f.svc.Task.CreateTask(context.Background(), f.as(0), TaskInput{
		ProjectID: project.ID,
		ColumnID:  other.Columns[0].ID,
		Title:     "Misplaced",
		Priority:  constant.TaskPriorityLow,
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.count(t, &model.Task{}))
}

func TestCreateTaskInMissingProject(t *testing.T) {
	f := newFixture(t, 1)

	_, err := f.svc.Task.CreateTask(context.Background(), f.as(0), TaskInput{
		ProjectID: "missing",
		ColumnID:  "missing",
		Title:     "Orphan",
		Priority:  constant.TaskPriorityLow,
	})
	requireActionError(t, err, "Failed to create task")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.count(t, &model.AuditLog{}, "entity_type = ?", constant.EntityTypeTask))
}

func TestUpdateTaskNotifiesOnlyNewAssignee(t *testing.T) {
	f := newFixture(t, 3)
	project := f.createProject(t)
	task := f.createTask(t, project, project.Columns[0].ID, "Fix gate", nil)

	update := TaskUpdateInput{Title: "Fix gate", Priority: constant.TaskPriorityUrgent, AssignedToID: &f.users[2].ID}
	_, err := f.svc.Task.UpdateTask(context.Background(), f.as(0), task.ID, update)
	require.NoError(t, err)

	// Unchanged assignee
	update.Description = "Hinges are rusty"
	_, err = f.svc.Task.UpdateTask(context.Background(), f.as(0), task.ID, update)
	require.NoError(t, err)

	var assigned []model.Notification
	require.NoError(t, f.db.Find(&assigned, "type = ?", constant.NotificationTypeTaskAssigned).Error)
	require.Len(t, assigned, 1)
	assert.Equal(t, f.users[2].ID, assigned[0].UserID)
	assert.Equal(t, constant.NotificationPriorityUrgent, assigned[0].Priority)

	assert.EqualValues(t, 1, f.count(t, &model.TaskActivity{}, "task_id = ? AND type = ?", task.ID, constant.TaskActivityAssigned))
	assert.EqualValues(t, 2, f.count(t, &model.TaskActivity{}, "task_id = ? AND type = ?", task.ID, constant.TaskActivityUpdated))
}

func TestAssignTaskToSelfSkipsNotification(t *testing.T) {
	f := newFixture(t, 2)
	project := f.createProject(t)
	task := f.createTask(t, project, project.Columns[0].ID, "Inspect roof", nil)

	assigned, err := f.svc.Task.AssignTask(context.Background(), f.as(1), task.ID, AssignTaskInput{AssignedToID: &f.users[1].ID})
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedToID)
	assert.Equal(t, f.users[1].ID, *assigned.AssignedToID)

	assert.Zero(t, f.count(t, &model.Notification{}, "type = ?", constant.NotificationTypeTaskAssigned))
}

func TestUpdateTaskOrderAppliesEveryPosition(t *testing.T) {
	f := newFixture(t, 1)
	project := f.createProject(t)
	todo, doing := project.Columns[0].ID, project.Columns[1].ID

	a := f.createTask(t, project, todo, "A", nil)
	b := f.createTask(t, project, todo, "B", nil)
	c := f.createTask(t, project, todo, "C", nil)

	positions := []repository.TaskPosition{
		{ID: c.ID, ColumnID: todo, Order: 0},
		{ID: a.ID, ColumnID: todo, Order: 1},
		{ID: b.ID, ColumnID: doing, Order: 0},
	}

	result, err := f.svc.Task.UpdateTaskOrder(context.Background(), f.as(0), project.ID, TaskOrderInput{Tasks: positions})
	require.NoError(t, err)
	assert.Equal(t, positions, result)

	for _, p := range positions {
		task := f.reloadTask(t, p.ID)
		assert.Equal(t, p.ColumnID, task.ColumnID, task.Title)
		assert.Equal(t, p.Order, task.Order, task.Title)
	}

	var log model.AuditLog
	require.NoError(t, f.db.First(&log, "entity_type = ? AND entity_id = ? AND action = ?",
		constant.EntityTypeProject, project.ID, constant.AuditActionUpdate).Error)
	assert.JSONEq(t, `{"count":3}`, string(log.Metadata))
}

func TestUpdateTaskOrderIsAllOrNothing(t *testing.T) {
	f := newFixture(t, 1)
	project := f.createProject(t)
	other := f.createProject(t)
	todo, done := project.Columns[0].ID, project.Columns[2].ID

	a := f.createTask(t, project, todo, "A", nil)
	b := f.createTask(t, project, todo, "B", nil)
	foreign := f.createTask(t, other, other.Columns[0].ID, "Foreign", nil)

	tests := []struct {
		name      string
		positions []repository.TaskPosition
		check     func(t *testing.T, err error)
	}{
		{
			name: "missing task",
			positions: []repository.TaskPosition{
				{ID: a.ID, ColumnID: done, Order: 5},
				{ID: "missing", ColumnID: done, Order: 6},
				{ID: b.ID, ColumnID: done, Order: 7},
			},
			check: func(t *testing.T, err error) {
				requireActionError(t, err, "Failed to update task order")
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name: "task of another project",
			positions: []repository.TaskPosition{
				{ID: a.ID, ColumnID: done, Order: 5},
				{ID: foreign.ID, ColumnID: done, Order: 6},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotFound)
			},
		},
		{
			name: "column of another project",
			positions: []repository.TaskPosition{
				{ID: a.ID, ColumnID: other.Columns[1].ID, Order: 0},
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrValidation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Task.UpdateTaskOrder(context.Background(), f.as(0), project.ID, TaskOrderInput{Tasks: tt.positions})
			tt.check(t, err)

			for i, task := range []*model.Task{a, b} {
				current := f.reloadTask(t, task.ID)
				assert.Equal(t, todo, current.ColumnID)
				assert.Equal(t, i, current.Order)
			}
			assert.Equal(t, 0, f.reloadTask(t, foreign.ID).Order)
		})
	}

	assert.Zero(t, f.count(t, &model.AuditLog{}, "entity_type = ? AND entity_id = ? AND action = ?",
		constant.EntityTypeProject, project.ID, constant.AuditActionUpdate))
}

func TestUpdateTaskOrderRejectsEmptyBatch(t *testing.T) {
	f := newFixture(t, 1)
	project := f.createProject(t)

	_, err := f.svc.Task.UpdateTaskOrder(context.Background(), f.as(0), project.ID, TaskOrderInput{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestTaskLabelsAndComments(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	project := f.createProject(t)

	task, err := f.svc.Task.CreateTask(ctx, f.as(0), TaskInput{
		ProjectID: project.ID,
		ColumnID:  project.Columns[0].ID,
		Title:     "Replace boiler",
		Priority:  constant.TaskPriorityMedium,
		Labels:    []string{"plumbing", "plumbing", "urgent"},
	})
	require.NoError(t, err)
	assert.Len(t, task.Labels, 2)

	_, err = f.svc.Task.AddTaskComment(ctx, f.as(1), task.ID, TaskCommentInput{Content: "Quote received"})
	require.NoError(t, err)

	updated, err := f.svc.Task.RemoveTaskLabel(ctx, f.as(0), task.ID, "urgent")
	require.NoError(t, err)
	require.Len(t, updated.Labels, 1)
	assert.Equal(t, "plumbing", updated.Labels[0].Name)

	_, err = f.svc.Task.RemoveTaskLabel(ctx, f.as(0), task.ID, "urgent")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.EqualValues(t, 1, f.count(t, &model.TaskActivity{}, "task_id = ? AND type = ?", task.ID, constant.TaskActivityCommented))
	assert.EqualValues(t, 1, f.count(t, &model.TaskActivity{}, "task_id = ? AND type = ?", task.ID, constant.TaskActivityLabelRemoved))
}
