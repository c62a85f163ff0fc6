package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

type UnitController struct {
	*baseController
}

// The property in the path wins over any propertyId in the body
func (uc UnitController) CreateUnit(ctx *gin.Context) {
	var body service.UnitInput
	if !uc.bind(ctx, &body) {
		return
	}
	body.PropertyID = ctx.Params.ByName("propertyId")

	unit, err := uc.app.Service.Unit.CreateUnit(ctx, uc.requestContext(ctx), body)
	uc.respond(ctx, "unit", unit, err)
}

func (uc UnitController) UpdateUnit(ctx *gin.Context) {
	var body service.UnitInput
	if !uc.bind(ctx, &body) {
		return
	}

	unit, err := uc.app.Service.Unit.UpdateUnit(ctx, uc.requestContext(ctx), ctx.Params.ByName("unitId"), body)
	uc.respond(ctx, "unit", unit, err)
}

func (uc UnitController) UpdateUnitStatus(ctx *gin.Context) {
	var body service.UnitStatusInput
	if !uc.bind(ctx, &body) {
		return
	}

	unit, err := uc.app.Service.Unit.UpdateUnitStatus(ctx, uc.requestContext(ctx), ctx.Params.ByName("unitId"), body)
	uc.respond(ctx, "unit", unit, err)
}

func (uc UnitController) DeleteUnit(ctx *gin.Context) {
	unit, err := uc.app.Service.Unit.DeleteUnit(ctx, uc.requestContext(ctx), ctx.Params.ByName("unitId"))
	uc.respond(ctx, "unit", unit, err)
}

func (uc UnitController) GetUnitsByProperty(ctx *gin.Context) {
	units, err := uc.app.Service.Unit.GetUnitsByProperty(ctx, uc.requestContext(ctx), ctx.Params.ByName("propertyId"))
	uc.respond(ctx, "units", units, err)
}

func (uc UnitController) GetUnitById(ctx *gin.Context) {
	unit, err := uc.app.Service.Unit.GetUnitByID(ctx, uc.requestContext(ctx), ctx.Params.ByName("unitId"))
	uc.respond(ctx, "unit", unit, err)
}
