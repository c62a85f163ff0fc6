package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_MaintenanceRequests(r *gin.RouterGroup, mc *controller.MaintenanceController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/maintenance-requests")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, mc.GetMaintenanceRequests)
		v1.POST("", mc.CreateMaintenanceRequest)
		v1.GET("/:requestId", cachePage, mc.GetMaintenanceRequestById)
		v1.PUT("/:requestId", mc.UpdateMaintenanceRequest)
		v1.PATCH("/:requestId/status", mc.UpdateMaintenanceStatus)
		v1.DELETE("/:requestId", mc.DeleteMaintenanceRequest)
	}
}
