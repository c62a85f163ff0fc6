package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type PropertyController struct {
	*baseController
}

type GetPropertiesRequest struct {
	Search string `json:"search" form:"search" binding:"omitempty"`
}

func (pc PropertyController) CreateProperty(ctx *gin.Context) {
	var body service.PropertyInput
	if !pc.bind(ctx, &body) {
		return
	}

	property, err := pc.app.Service.Property.CreateProperty(ctx, pc.requestContext(ctx), body)
	pc.respond(ctx, "property", property, err)
}

func (pc PropertyController) UpdateProperty(ctx *gin.Context) {
	var body service.PropertyInput
	if !pc.bind(ctx, &body) {
		return
	}

	property, err := pc.app.Service.Property.UpdateProperty(ctx, pc.requestContext(ctx), ctx.Params.ByName("propertyId"), body)
	pc.respond(ctx, "property", property, err)
}

func (pc PropertyController) DeleteProperty(ctx *gin.Context) {
	property, err := pc.app.Service.Property.DeleteProperty(ctx, pc.requestContext(ctx), ctx.Params.ByName("propertyId"))
	pc.respond(ctx, "property", property, err)
}

func (pc PropertyController) GetProperties(ctx *gin.Context) {
	var page PageRequest
	var params GetPropertiesRequest
	if !pc.bindQuery(ctx, &page, &params) {
		return
	}

	properties, err := pc.app.Service.Property.GetProperties(ctx, pc.requestContext(ctx), params.Search, page.Page, page.PageSize)
	respondPage(pc.baseController, ctx, "properties", properties, err)
}

func (pc PropertyController) GetPropertyById(ctx *gin.Context) {
	property, err := pc.app.Service.Property.GetPropertyByID(ctx, pc.requestContext(ctx), ctx.Params.ByName("propertyId"))
	pc.respond(ctx, "property", property, err)
}
