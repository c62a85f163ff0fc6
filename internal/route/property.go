package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Properties(r *gin.RouterGroup, pc *controller.PropertyController, uc *controller.UnitController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/properties")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, pc.GetProperties)
		v1.POST("", pc.CreateProperty)
		v1.GET("/:propertyId", cachePage, pc.GetPropertyById)
		v1.PUT("/:propertyId", pc.UpdateProperty)
		v1.DELETE("/:propertyId", pc.DeleteProperty)
		v1.GET("/:propertyId/units", cachePage, uc.GetUnitsByProperty)
		v1.POST("/:propertyId/units", uc.CreateUnit)
	}
}

// Unit pages are not cached, their changes revalidate the property pages only
func V1_Units(r *gin.RouterGroup, uc *controller.UnitController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/units")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/:unitId", uc.GetUnitById)
		v1.PUT("/:unitId", uc.UpdateUnit)
		v1.PATCH("/:unitId/status", uc.UpdateUnitStatus)
		v1.DELETE("/:unitId", uc.DeleteUnit)
	}
}
