package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Tasks(r *gin.RouterGroup, tc *controller.TaskController, middleware *middleware.Middleware, cachePage gin.HandlerFunc) {
	v1 := r.Group("/v1/tasks")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", tc.CreateTask)
		v1.GET("/:taskId", cachePage, tc.GetTaskById)
		v1.PUT("/:taskId", tc.UpdateTask)
		v1.PATCH("/:taskId/assign", tc.AssignTask)
		v1.DELETE("/:taskId", tc.DeleteTask)
		v1.GET("/:taskId/activities", cachePage, tc.GetTaskActivities)
		v1.POST("/:taskId/comments", tc.AddTaskComment)
		v1.POST("/:taskId/attachments", tc.AddTaskAttachment)
		v1.POST("/:taskId/labels", tc.AddTaskLabel)
		v1.DELETE("/:taskId/labels/:name", tc.RemoveTaskLabel)
	}
}
