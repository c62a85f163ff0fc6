package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// The project list depends on the caller and is never cached
func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/projects")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", pc.GetProjects)
		v1.POST("", pc.CreateProject)
		v1.GET("/:projectId", cachePage, pc.GetProjectBoard)
		v1.PUT("/:projectId", pc.UpdateProject)
		v1.DELETE("/:projectId", pc.DeleteProject)
		v1.POST("/:projectId/members", pc.AddProjectMember)
		v1.DELETE("/:projectId/members/:userId", pc.RemoveProjectMember)
		v1.POST("/:projectId/columns", pc.CreateColumn)
		v1.PATCH("/:projectId/tasks/order", pc.UpdateTaskOrder)
	}

	columns := r.Group("/v1/columns")
	columns.Use(middleware.AuthMiddleware)
	{
		columns.PUT("/:columnId", pc.UpdateColumn)
		columns.DELETE("/:columnId", pc.DeleteColumn)
	}
}
