package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	*baseController
}

type GetProjectsRequest struct {
	Search string `json:"search" form:"search" binding:"omitempty"`
}

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	var body service.ProjectInput
	if !pc.bind(ctx, &body) {
		return
	}

	project, err := pc.app.Service.Project.CreateProject(ctx, pc.requestContext(ctx), body)
	pc.respond(ctx, "project", project, err)
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	var body service.ProjectUpdateInput
	if !pc.bind(ctx, &body) {
		return
	}

	project, err := pc.app.Service.Project.UpdateProject(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"), body)
	pc.respond(ctx, "project", project, err)
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	project, err := pc.app.Service.Project.DeleteProject(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"))
	pc.respond(ctx, "project", project, err)
}

func (pc ProjectController) GetProjects(ctx *gin.Context) {
	var page PageRequest
	var params GetProjectsRequest
	if !pc.bindQuery(ctx, &page, &params) {
		return
	}

	projects, err := pc.app.Service.Project.GetProjects(ctx, pc.requestContext(ctx), params.Search, page.Page, page.PageSize)
	respondPage(pc.baseController, ctx, "projects", projects, err)
}

// Project with its columns and their tasks in board order
func (pc ProjectController) GetProjectBoard(ctx *gin.Context) {
	project, err := pc.app.Service.Project.GetProjectBoard(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"))
	pc.respond(ctx, "project", project, err)
}

func (pc ProjectController) AddProjectMember(ctx *gin.Context) {
	var body service.ProjectMemberInput
	if !pc.bind(ctx, &body) {
		return
	}

	member, err := pc.app.Service.Project.AddProjectMember(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"), body)
	pc.respond(ctx, "member", member, err)
}

func (pc ProjectController) RemoveProjectMember(ctx *gin.Context) {
	project, err := pc.app.Service.Project.RemoveProjectMember(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"), ctx.Params.ByName("userId"))
	pc.respond(ctx, "project", project, err)
}

func (pc ProjectController) CreateColumn(ctx *gin.Context) {
	var body service.ColumnInput
	if !pc.bind(ctx, &body) {
		return
	}

	column, err := pc.app.Service.Project.CreateColumn(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"), body)
	pc.respond(ctx, "column", column, err)
}

func (pc ProjectController) UpdateColumn(ctx *gin.Context) {
	var body service.ColumnUpdateInput
	if !pc.bind(ctx, &body) {
		return
	}

	column, err := pc.app.Service.Project.UpdateColumn(ctx, pc.requestContext(ctx), ctx.Params.ByName("columnId"), body)
	pc.respond(ctx, "column", column, err)
}

func (pc ProjectController) DeleteColumn(ctx *gin.Context) {
	column, err := pc.app.Service.Project.DeleteColumn(ctx, pc.requestContext(ctx), ctx.Params.ByName("columnId"))
	pc.respond(ctx, "column", column, err)
}

// Applies a batch of kanban moves; all of them land or none do
func (pc ProjectController) UpdateTaskOrder(ctx *gin.Context) {
	var body service.TaskOrderInput
	if !pc.bind(ctx, &body) {
		return
	}

	positions, err := pc.app.Service.Task.UpdateTaskOrder(ctx, pc.requestContext(ctx), ctx.Params.ByName("projectId"), body)
	pc.respond(ctx, "tasks", positions, err)
}
