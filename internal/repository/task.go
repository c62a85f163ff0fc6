package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type TaskRepository struct {
	*baseRepository
}

// Target position of a task on the board
type TaskPosition struct {
	ID       string `json:"id" form:"id" validate:"required"`
	ColumnID string `json:"columnId" form:"columnId" validate:"required"`
	Order    int    `json:"order" form:"order" validate:"gte=0"`
}

func (tr TaskRepository) Create(ctx context.Context, tx *gorm.DB, task *model.Task) (*model.Task, error) {
	tr.logger.Debugf("Create task with data: %v \n", task)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (tr TaskRepository) GetById(ctx context.Context, tx *gorm.DB, taskId string) (*model.Task, error) {
	tr.logger.Debugf("Get task by id: %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var task model.Task
	if err := db.WithContext(ctx).Model(&model.Task{}).
		Preload("Assignee").
		Preload("CreatedBy").
		Preload("Labels").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Comments.User").
		Preload("Attachments").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc")
		}).
		Where("id = ?", taskId).
		First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

func (tr TaskRepository) Update(ctx context.Context, tx *gorm.DB, taskId string, values map[string]any) error {
	tr.logger.Debugf("Update task %s with values: %v \n", taskId, values)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Task{}, taskId, values)
}

func (tr TaskRepository) Delete(ctx context.Context, tx *gorm.DB, taskId string) error {
	tr.logger.Debugf("Delete task by id: %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Task{}, taskId)
}

// Position a new task should take at the bottom of the column
func (tr TaskRepository) NextOrder(ctx context.Context, tx *gorm.DB, columnId string) (int, error) {
	tr.logger.Debugf("Get next task order of column: %s \n", columnId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var next int
	if err := db.WithContext(ctx).Model(&model.Task{}).
		Select("COALESCE(MAX(position) + 1, 0)").
		Where("column_id = ?", columnId).
		Scan(&next).Error; err != nil {
		return 0, err
	}

	return next, nil
}

// Applies every position in order. The first task not found in the project aborts with
// gorm.ErrRecordNotFound; callers wrap this in a transaction so nothing is applied partially.
func (tr TaskRepository) UpdatePositions(ctx context.Context, tx *gorm.DB, projectId string, positions []TaskPosition) error {
	tr.logger.Debugf("Update %d task positions in project %s \n", len(positions), projectId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	for _, p := range positions {
		result := db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ? AND project_id = ?", p.ID, projectId).
			Updates(map[string]any{
				"column_id": p.ColumnID,
				"position":  p.Order,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	return nil
}

func (tr TaskRepository) AddActivity(ctx context.Context, tx *gorm.DB, activity *model.TaskActivity) (*model.TaskActivity, error) {
	tr.logger.Debugf("Add task activity with data: %v \n", activity)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(activity).Error; err != nil {
		return nil, err
	}

	return activity, nil
}

func (tr TaskRepository) ListActivities(ctx context.Context, tx *gorm.DB, taskId string) ([]model.TaskActivity, error) {
	tr.logger.Debugf("List activities of task: %s \n", taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var activities []model.TaskActivity
	if err := db.WithContext(ctx).Model(&model.TaskActivity{}).
		Where("task_id = ?", taskId).
		Order("created_at desc").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

func (tr TaskRepository) AddComment(ctx context.Context, tx *gorm.DB, comment *model.TaskComment) (*model.TaskComment, error) {
	tr.logger.Debugf("Add task comment with data: %v \n", comment)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (tr TaskRepository) AddAttachment(ctx context.Context, tx *gorm.DB, attachment *model.TaskAttachment) (*model.TaskAttachment, error) {
	tr.logger.Debugf("Add task attachment with data: %v \n", attachment)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(attachment).Error; err != nil {
		return nil, err
	}

	return attachment, nil
}

func (tr TaskRepository) AddLabel(ctx context.Context, tx *gorm.DB, label *model.TaskLabel) (*model.TaskLabel, error) {
	tr.logger.Debugf("Add task label with data: %v \n", label)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(label).Error; err != nil {
		return nil, err
	}

	return label, nil
}

func (tr TaskRepository) RemoveLabel(ctx context.Context, tx *gorm.DB, taskId, name string) error {
	tr.logger.Debugf("Remove label %s from task %s \n", name, taskId)

	db := tr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("task_id = ? AND name = ?", taskId, name).Delete(&model.TaskLabel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
