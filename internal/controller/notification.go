package controller

import (
	"github.com/SeakMengs/PropDesk/internal/service"
	"github.com/SeakMengs/PropDesk/internal/util"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	*baseController
}

type GetNotificationsRequest struct {
	UnreadOnly bool `json:"unreadOnly" form:"unreadOnly" binding:"omitempty"`
}

func (nc NotificationController) GetNotifications(ctx *gin.Context) {
	var page PageRequest
	var params GetNotificationsRequest
	if !nc.bindQuery(ctx, &page, &params) {
		return
	}

	notifications, err := nc.app.Service.Notification.GetNotifications(ctx, nc.requestContext(ctx), params.UnreadOnly, page.Page, page.PageSize)
	respondPage(nc.baseController, ctx, "notifications", notifications, err)
}

func (nc NotificationController) CountUnreadNotifications(ctx *gin.Context) {
	count, err := nc.app.Service.Notification.CountUnreadNotifications(ctx, nc.requestContext(ctx))
	nc.respond(ctx, "count", count, err)
}

func (nc NotificationController) MarkNotificationRead(ctx *gin.Context) {
	id, err := nc.app.Service.Notification.MarkNotificationRead(ctx, nc.requestContext(ctx), ctx.Params.ByName("notificationId"))
	if err != nil {
		nc.respondError(ctx, err)
		return
	}
	util.ResponseSuccess(ctx, gin.H{"id": id})
}

func (nc NotificationController) MarkAllNotificationsRead(ctx *gin.Context) {
	result, err := nc.app.Service.Notification.MarkAllNotificationsRead(ctx, nc.requestContext(ctx))
	nc.respond(ctx, "result", result, err)
}

type AuditLogController struct {
	*baseController
}

func (ac AuditLogController) GetAuditLogs(ctx *gin.Context) {
	var page PageRequest
	var filter service.AuditLogFilter
	if !ac.bindQuery(ctx, &page, &filter) {
		return
	}

	logs, err := ac.app.Service.AuditLog.GetAuditLogs(ctx, ac.requestContext(ctx), filter, page.Page, page.PageSize)
	respondPage(ac.baseController, ctx, "auditLogs", logs, err)
}
