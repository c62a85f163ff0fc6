package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Reports are computed on every request
func V1_Reports(r *gin.RouterGroup, rc *controller.ReportController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/reports")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/financial", rc.GetFinancialReports)
		v1.GET("/financial/export", rc.ExportFinancialReport)
		v1.POST("/financial/archive", rc.ArchiveFinancialReport)
		v1.GET("/properties", rc.GetPropertiesReport)
		v1.GET("/dashboard", rc.GetDashboardStats)
	}
}
