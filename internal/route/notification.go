package route

import (
	"github.com/SeakMengs/PropDesk/internal/controller"
	"github.com/SeakMengs/PropDesk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Notifications belong to the caller, so none of these pages are shared through the cache
func V1_Notifications(r *gin.RouterGroup, nc *controller.NotificationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/notifications")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", nc.GetNotifications)
		v1.GET("/unread-count", nc.CountUnreadNotifications)
		v1.PATCH("/read-all", nc.MarkAllNotificationsRead)
		v1.PATCH("/:notificationId/read", nc.MarkNotificationRead)
	}
}

func V1_AuditLogs(r *gin.RouterGroup, ac *controller.AuditLogController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/audit-logs")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("", ac.GetAuditLogs)
	}
}
