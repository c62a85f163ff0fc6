package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type TaskController struct {
	*baseController
}

func (tc TaskController) CreateTask(ctx *gin.Context) {
	var body service.TaskInput
	if !tc.bind(ctx, &body) {
		return
	}

	task, err := tc.app.Service.Task.CreateTask(ctx, tc.requestContext(ctx), body)
	tc.respond(ctx, "task", task, err)
}

func (tc TaskController) UpdateTask(ctx *gin.Context) {
	var body service.TaskUpdateInput
	if !tc.bind(ctx, &body) {
		return
	}

	task, err := tc.app.Service.Task.UpdateTask(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), body)
	tc.respond(ctx, "task", task, err)
}

func (tc TaskController) AssignTask(ctx *gin.Context) {
	var body service.AssignTaskInput
	if !tc.bind(ctx, &body) {
		return
	}

	task, err := tc.app.Service.Task.AssignTask(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), body)
	tc.respond(ctx, "task", task, err)
}

func (tc TaskController) DeleteTask(ctx *gin.Context) {
	task, err := tc.app.Service.Task.DeleteTask(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"))
	tc.respond(ctx, "task", task, err)
}

func (tc TaskController) GetTaskById(ctx *gin.Context) {
	task, err := tc.app.Service.Task.GetTaskByID(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"))
	tc.respond(ctx, "task", task, err)
}

func (tc TaskController) GetTaskActivities(ctx *gin.Context) {
	activities, err := tc.app.Service.Task.GetTaskActivities(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"))
	tc.respond(ctx, "activities", activities, err)
}

func (tc TaskController) AddTaskComment(ctx *gin.Context) {
	var body service.TaskCommentInput
	if !tc.bind(ctx, &body) {
		return
	}

	comment, err := tc.app.Service.Task.AddTaskComment(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), body)
	tc.respond(ctx, "comment", comment, err)
}

func (tc TaskController) AddTaskAttachment(ctx *gin.Context) {
	var body service.TaskAttachmentInput
	if !tc.bind(ctx, &body) {
		return
	}

	attachment, err := tc.app.Service.Task.AddTaskAttachment(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), body)
	tc.respond(ctx, "attachment", attachment, err)
}

func (tc TaskController) AddTaskLabel(ctx *gin.Context) {
	var body service.TaskLabelInput
	if !tc.bind(ctx, &body) {
		return
	}

	label, err := tc.app.Service.Task.AddTaskLabel(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), body)
	tc.respond(ctx, "label", label, err)
}

func (tc TaskController) RemoveTaskLabel(ctx *gin.Context) {
	task, err := tc.app.Service.Task.RemoveTaskLabel(ctx, tc.requestContext(ctx), ctx.Params.ByName("taskId"), ctx.Params.ByName("name"))
	tc.respond(ctx, "task", task, err)
}
