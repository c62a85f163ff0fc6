package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_PropertyTaxes(r *gin.RouterGroup, ec *controller.ExpenseController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/property-taxes")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, ec.GetPropertyTaxes)
		v1.POST("", ec.CreatePropertyTax)
		v1.PUT("/:taxId", ec.UpdatePropertyTax)
		v1.PATCH("/:taxId/status", ec.UpdatePropertyTaxStatus)
		v1.DELETE("/:taxId", ec.DeletePropertyTax)
	}
}

func V1_Utilities(r *gin.RouterGroup, ec *controller.ExpenseController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/utilities")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, ec.GetUtilities)
		v1.POST("", ec.CreateUtility)
		v1.PUT("/:utilityId", ec.UpdateUtility)
		v1.PATCH("/:utilityId/status", ec.UpdateUtilityStatus)
		v1.DELETE("/:utilityId", ec.DeleteUtility)
	}
}
