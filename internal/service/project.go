package service

import (
	"context"

	"github.com/SeakMengs/PropDesk/internal/auth"
	"github.com/SeakMengs/PropDesk/internal/constant"
	"github.com/SeakMengs/PropDesk/internal/model"
	"github.com/SeakMengs/PropDesk/internal/util"
	"gorm.io/gorm"
)

type ProjectService struct {
	*baseService
}

type ProjectInput struct {
	Name        string   `json:"name" form:"name" validate:"strNotEmpty,cmax=100"`
	Description string   `json:"description" form:"description"`
	MemberIDs   []string `json:"memberIds" form:"memberIds" validate:"dive,required"`
}

type ProjectUpdateInput struct {
	Name        string `json:"name" form:"name" validate:"strNotEmpty,cmax=100"`
	Description string `json:"description" form:"description"`
}

type ProjectMemberInput struct {
	UserID string `json:"userId" form:"userId" validate:"required"`
}

type ColumnInput struct {
	Title string `json:"title" form:"title" validate:"strNotEmpty,cmax=100"`
}

type ColumnUpdateInput struct {
	Title string `json:"title" form:"title" validate:"strNotEmpty,cmax=100"`
	Order *int   `json:"order" form:"order" validate:"omitempty,gte=0"`
}

var projectPaths = []string{apiPath("projects"), apiPath("tasks")}

// Owner first, then the given members without duplicates
func projectMemberIds(ownerId string, memberIds []string) []string {
	seen := map[string]bool{ownerId: true}
	ids := []string{ownerId}
	for _, id := range memberIds {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// The actor owns the project and is its first member. Columns "To Do", "In Progress"
// and "Done" are created with it.
func (ps ProjectService) CreateProject(ctx context.Context, rc *auth.RequestContext, in ProjectInput) (*model.Project, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Project]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Project, error) {
			memberIds := projectMemberIds(rc.ActorID, in.MemberIDs)

			users, err := ps.repo.User.GetByIds(ctx, tx, memberIds)
			if err != nil {
				return nil, err
			}
			if len(users) != len(memberIds) {
				return nil, fieldError("memberIds", "memberIds contains unknown users")
			}

			members := make([]model.ProjectMember, len(memberIds))
			for i, id := range memberIds {
				members[i] = model.ProjectMember{UserID: id}
			}
			columns := make([]model.Column, len(constant.DefaultProjectColumns))
			for i, title := range constant.DefaultProjectColumns {
				columns[i] = model.Column{Title: title, Order: i}
			}

			project, err := ps.repo.Project.Create(ctx, tx, &model.Project{
				Name:        in.Name,
				Description: in.Description,
				OwnerID:     rc.ActorID,
				Members:     members,
				Columns:     columns,
			})
			if err != nil {
				return nil, err
			}
			return ps.repo.Project.GetBoard(ctx, tx, project.ID)
		},
		entityID:    func(p *model.Project) string { return p.ID },
		paths:       projectPaths,
		failMessage: "Failed to create project",
	})
}

func (ps ProjectService) UpdateProject(ctx context.Context, rc *auth.RequestContext, projectId string, in ProjectUpdateInput) (*model.Project, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Project]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Project, error) {
			if err := ps.repo.Project.Update(ctx, tx, projectId, map[string]any{
				"name":        in.Name,
				"description": in.Description,
			}); err != nil {
				return nil, err
			}
			return ps.repo.Project.GetById(ctx, tx, projectId)
		},
		entityID:    func(p *model.Project) string { return p.ID },
		paths:       projectPaths,
		failMessage: "Failed to update project",
	})
}

func (ps ProjectService) DeleteProject(ctx context.Context, rc *auth.RequestContext, projectId string) (*model.Project, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Project]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Project, error) {
			project, err := ps.repo.Project.GetById(ctx, tx, projectId)
			if err != nil {
				return nil, err
			}
			return project, ps.repo.Project.Delete(ctx, tx, projectId)
		},
		entityID:    func(p *model.Project) string { return p.ID },
		metadata:    func(p *model.Project) any { return map[string]any{"name": p.Name} },
		paths:       projectPaths,
		failMessage: "Failed to delete project",
	})
}

func (ps ProjectService) AddProjectMember(ctx context.Context, rc *auth.RequestContext, projectId string, in ProjectMemberInput) (*model.ProjectMember, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.ProjectMember]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.ProjectMember, error) {
			if _, err := ps.repo.Project.GetById(ctx, tx, projectId); err != nil {
				return nil, err
			}
			if _, err := ps.repo.User.GetById(ctx, tx, in.UserID); err != nil {
				return nil, err
			}

			isMember, err := ps.repo.Project.IsMember(ctx, tx, projectId, in.UserID)
			if err != nil {
				return nil, err
			}
			if isMember {
				return nil, fieldError("userId", "User is already a member of this project")
			}

			return ps.repo.Project.AddMember(ctx, tx, &model.ProjectMember{ProjectID: projectId, UserID: in.UserID})
		},
		entityID:    func(m *model.ProjectMember) string { return m.ProjectID },
		metadata:    func(m *model.ProjectMember) any { return map[string]any{"addedUserId": m.UserID} },
		paths:       projectPaths,
		failMessage: "Failed to add project member",
	})
}

// The owner cannot be removed
func (ps ProjectService) RemoveProjectMember(ctx context.Context, rc *auth.RequestContext, projectId, userId string) (*model.Project, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Project]{
		entityType:    constant.EntityTypeProject,
		action:        constant.AuditActionUpdate,
		changes:       map[string]any{"removedUserId": userId},
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Project, error) {
			project, err := ps.repo.Project.GetById(ctx, tx, projectId)
			if err != nil {
				return nil, err
			}
			if project.OwnerID == userId {
				return nil, fieldError("userId", "The project owner cannot be removed")
			}
			if err := ps.repo.Project.RemoveMember(ctx, tx, projectId, userId); err != nil {
				return nil, err
			}
			return ps.repo.Project.GetById(ctx, tx, projectId)
		},
		entityID:    func(p *model.Project) string { return p.ID },
		paths:       projectPaths,
		failMessage: "Failed to remove project member",
	})
}

// Projects the actor owns or is a member of
func (ps ProjectService) GetProjects(ctx context.Context, rc *auth.RequestContext, search string, page, pageSize uint) (Page[model.Project], error) {
	return read(ps.baseService, rc, "Failed to fetch projects", func() (Page[model.Project], error) {
		page, pageSize := util.NormalizePage(page, pageSize)
		projects, total, err := ps.repo.Project.ListForUser(ctx, nil, rc.ActorID, search, page, pageSize)
		if err != nil {
			return Page[model.Project]{}, err
		}
		return newPage(projects, total, page, pageSize), nil
	})
}

// Columns and their tasks, both ordered by order
func (ps ProjectService) GetProjectBoard(ctx context.Context, rc *auth.RequestContext, projectId string) (*model.Project, error) {
	return read(ps.baseService, rc, "Failed to fetch project", func() (*model.Project, error) {
		return ps.repo.Project.GetBoard(ctx, nil, projectId)
	})
}

// Appended after the last column of the project
func (ps ProjectService) CreateColumn(ctx context.Context, rc *auth.RequestContext, projectId string, in ColumnInput) (*model.Column, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Column]{
		entityType:    constant.EntityTypeColumn,
		action:        constant.AuditActionCreate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Column, error) {
			if _, err := ps.repo.Project.GetById(ctx, tx, projectId); err != nil {
				return nil, err
			}
			order, err := ps.repo.Column.NextOrder(ctx, tx, projectId)
			if err != nil {
				return nil, err
			}
			return ps.repo.Column.Create(ctx, tx, &model.Column{ProjectID: projectId, Title: in.Title, Order: order})
		},
		entityID:    func(c *model.Column) string { return c.ID },
		metadata:    func(c *model.Column) any { return map[string]any{"projectId": c.ProjectID} },
		paths:       projectPaths,
		failMessage: "Failed to create column",
	})
}

func (ps ProjectService) UpdateColumn(ctx context.Context, rc *auth.RequestContext, columnId string, in ColumnUpdateInput) (*model.Column, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Column]{
		entityType:    constant.EntityTypeColumn,
		action:        constant.AuditActionUpdate,
		input:         in,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Column, error) {
			values := map[string]any{"title": in.Title}
			if in.Order != nil {
				values["position"] = *in.Order
			}
			if err := ps.repo.Column.Update(ctx, tx, columnId, values); err != nil {
				return nil, err
			}
			return ps.repo.Column.GetById(ctx, tx, columnId)
		},
		entityID:    func(c *model.Column) string { return c.ID },
		paths:       projectPaths,
		failMessage: "Failed to update column",
	})
}

// Tasks in the column are deleted with it
func (ps ProjectService) DeleteColumn(ctx context.Context, rc *auth.RequestContext, columnId string) (*model.Column, error) {
	return runMutation(ctx, ps.baseService, rc, mutation[*model.Column]{
		entityType:    constant.EntityTypeColumn,
		action:        constant.AuditActionDelete,
		transactional: true,
		persist: func(ctx context.Context, tx *gorm.DB) (*model.Column, error) {
			column, err := ps.repo.Column.GetById(ctx, tx, columnId)
			if err != nil {
				return nil, err
			}
			return column, ps.repo.Column.Delete(ctx, tx, columnId)
		},
		entityID:    func(c *model.Column) string { return c.ID },
		metadata:    func(c *model.Column) any { return map[string]any{"projectId": c.ProjectID, "title": c.Title} },
		paths:       projectPaths,
		failMessage: "Failed to delete column",
	})
}
