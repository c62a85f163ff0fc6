package repository

import (
	"context"

	constant "github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// Creates the project together with any Members and Columns set on it
func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Owner").
		Preload("Members.User").
		Where("id = ?", projectId).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Columns ordered by position, each with its tasks ordered by position
func (pr ProjectRepository) GetBoard(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	pr.logger.Debugf("Get project board by id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Members.User").
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Columns.Tasks.Assignee").
		Preload("Columns.Tasks.Labels").
		Where("id = ?", projectId).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, projectId string, values map[string]any) error {
	pr.logger.Debugf("Update project %s with values: %v \n", projectId, values)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return updateByID(ctx, db, &model.Project{}, projectId, values)
}

func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, projectId string) error {
	pr.logger.Debugf("Delete project by id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return deleteByID(ctx, db, &model.Project{}, projectId)
}

// Projects the user owns or is a member of
func (pr ProjectRepository) ListForUser(ctx context.Context, tx *gorm.DB, userId string, search string, page, pageSize uint) ([]model.Project, int64, error) {
	pr.logger.Debugf("List projects for user: %s, search: %s \n", userId, search)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	memberOf := db.Model(&model.ProjectMember{}).Select("project_id").Where("user_id = ?", userId)
	query := db.WithContext(ctx).Model(&model.Project{}).
		Where("owner_id = ? OR id IN (?)", userId, memberOf)

	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginate(page, pageSize)
	var projects []model.Project
	if err := query.Preload("Members").Order("created_at desc").Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

func (pr ProjectRepository) MemberIds(ctx context.Context, tx *gorm.DB, projectId string) ([]string, error) {
	pr.logger.Debugf("Get member ids of project: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var ids []string
	if err := db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ?", projectId).
		Order("created_at asc").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

func (pr ProjectRepository) IsMember(ctx context.Context, tx *gorm.DB, projectId, userId string) (bool, error) {
	pr.logger.Debugf("Check user %s is member of project %s \n", userId, projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectId, userId).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (pr ProjectRepository) AddMember(ctx context.Context, tx *gorm.DB, member *model.ProjectMember) (*model.ProjectMember, error) {
	pr.logger.Debugf("Add project member with data: %v \n", member)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}

	return member, nil
}

func (pr ProjectRepository) RemoveMember(ctx context.Context, tx *gorm.DB, projectId, userId string) error {
	pr.logger.Debugf("Remove user %s from project %s \n", userId, projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectId, userId).
		Delete(&model.ProjectMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
