package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/gin-gonic/gin"
)

// ExpenseController serves property taxes and utility bills
type ExpenseController struct {
	*baseController
}

func (ec ExpenseController) CreatePropertyTax(ctx *gin.Context) {
	var body service.PropertyTaxInput
	if !ec.bind(ctx, &body) {
		return
	}

	tax, err := ec.app.Service.PropertyTax.CreatePropertyTax(ctx, ec.requestContext(ctx), body)
	ec.respond(ctx, "propertyTax", tax, err)
}

func (ec ExpenseController) UpdatePropertyTax(ctx *gin.Context) {
	var body service.PropertyTaxInput
	if !ec.bind(ctx, &body) {
		return
	}

	tax, err := ec.app.Service.PropertyTax.UpdatePropertyTax(ctx, ec.requestContext(ctx), ctx.Params.ByName("taxId"), body)
	ec.respond(ctx, "propertyTax", tax, err)
}

func (ec ExpenseController) UpdatePropertyTaxStatus(ctx *gin.Context) {
	var body service.PaidStatusInput
	if !ec.bind(ctx, &body) {
		return
	}

	tax, err := ec.app.Service.PropertyTax.UpdatePropertyTaxStatus(ctx, ec.requestContext(ctx), ctx.Params.ByName("taxId"), body)
	ec.respond(ctx, "propertyTax", tax, err)
}

func (ec ExpenseController) DeletePropertyTax(ctx *gin.Context) {
	tax, err := ec.app.Service.PropertyTax.DeletePropertyTax(ctx, ec.requestContext(ctx), ctx.Params.ByName("taxId"))
	ec.respond(ctx, "propertyTax", tax, err)
}

func (ec ExpenseController) GetPropertyTaxes(ctx *gin.Context) {
	var filter service.ExpenseFilter
	if !ec.bindQuery(ctx, &filter) {
		return
	}

	taxes, err := ec.app.Service.PropertyTax.GetPropertyTaxes(ctx, ec.requestContext(ctx), filter)
	ec.respond(ctx, "propertyTaxes", taxes, err)
}

func (ec ExpenseController) CreateUtility(ctx *gin.Context) {
	var body service.UtilityInput
	if !ec.bind(ctx, &body) {
		return
	}

	utility, err := ec.app.Service.Utility.CreateUtility(ctx, ec.requestContext(ctx), body)
	ec.respond(ctx, "utility", utility, err)
}

func (ec ExpenseController) UpdateUtility(ctx *gin.Context) {
	var body service.UtilityInput
	if !ec.bind(ctx, &body) {
		return
	}

	utility, err := ec.app.Service.Utility.UpdateUtility(ctx, ec.requestContext(ctx), ctx.Params.ByName("utilityId"), body)
	ec.respond(ctx, "utility", utility, err)
}

func (ec ExpenseController) UpdateUtilityStatus(ctx *gin.Context) {
	var body service.PaidStatusInput
	if !ec.bind(ctx, &body) {
		return
	}

	utility, err := ec.app.Service.Utility.UpdateUtilityStatus(ctx, ec.requestContext(ctx), ctx.Params.ByName("utilityId"), body)
	ec.respond(ctx, "utility", utility, err)
}

func (ec ExpenseController) DeleteUtility(ctx *gin.Context) {
	utility, err := ec.app.Service.Utility.DeleteUtility(ctx, ec.requestContext(ctx), ctx.Params.ByName("utilityId"))
	ec.respond(ctx, "utility", utility, err)
}

func (ec ExpenseController) GetUtilities(ctx *gin.Context) {
	var filter service.ExpenseFilter
	if !ec.bindQuery(ctx, &filter) {
		return
	}

	utilities, err := ec.app.Service.Utility.GetUtilities(ctx, ec.requestContext(ctx), filter)
	ec.respond(ctx, "utilities", utilities, err)
}
