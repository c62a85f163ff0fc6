package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	*baseController
}

func (mc MaintenanceController) CreateMaintenanceRequest(ctx *gin.Context) {
	var body service.MaintenanceInput
	if !mc.bind(ctx, &body) {
		return
	}

	request, err := mc.app.Service.Maintenance.CreateMaintenanceRequest(ctx, mc.requestContext(ctx), body)
	mc.respond(ctx, "maintenanceRequest", request, err)
}

func (mc MaintenanceController) UpdateMaintenanceRequest(ctx *gin.Context) {
	var body service.MaintenanceInput
	if !mc.bind(ctx, &body) {
		return
	}

	request, err := mc.app.Service.Maintenance.UpdateMaintenanceRequest(ctx, mc.requestContext(ctx), ctx.Params.ByName("requestId"), body)
	mc.respond(ctx, "maintenanceRequest", request, err)
}

func (mc MaintenanceController) UpdateMaintenanceStatus(ctx *gin.Context) {
	var body service.MaintenanceStatusInput
	if !mc.bind(ctx, &body) {
		return
	}

	request, err := mc.app.Service.Maintenance.UpdateMaintenanceStatus(ctx, mc.requestContext(ctx), ctx.Params.ByName("requestId"), body)
	mc.respond(ctx, "maintenanceRequest", request, err)
}

func (mc MaintenanceController) DeleteMaintenanceRequest(ctx *gin.Context) {
	request, err := mc.app.Service.Maintenance.DeleteMaintenanceRequest(ctx, mc.requestContext(ctx), ctx.Params.ByName("requestId"))
	mc.respond(ctx, "maintenanceRequest", request, err)
}

func (mc MaintenanceController) GetMaintenanceRequests(ctx *gin.Context) {
	var page PageRequest
	var filter service.MaintenanceFilter
	if !mc.bindQuery(ctx, &page, &filter) {
		return
	}

	requests, err := mc.app.Service.Maintenance.GetMaintenanceRequests(ctx, mc.requestContext(ctx), filter, page.Page, page.PageSize)
	respondPage(mc.baseController, ctx, "maintenanceRequests", requests, err)
}

func (mc MaintenanceController) GetMaintenanceRequestById(ctx *gin.Context) {
	request, err := mc.app.Service.Maintenance.GetMaintenanceRequestByID(ctx, mc.requestContext(ctx), ctx.Params.ByName("requestId"))
	mc.respond(ctx, "maintenanceRequest", request, err)
}
