package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Tenants(r *gin.RouterGroup, tc *controller.TenantController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/tenants")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", cachePage, tc.GetTenants)
		v1.POST("", tc.CreateTenant)
		v1.POST("/import", tc.ImportTenants)
		v1.POST("/bulk-delete", tc.BulkDeleteTenants)
		v1.GET("/:tenantId", cachePage, tc.GetTenantById)
		v1.PUT("/:tenantId", tc.UpdateTenant)
		v1.DELETE("/:tenantId", tc.DeleteTenant)
	}
}
